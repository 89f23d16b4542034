// Copyright (c) 2026 GVDB. All rights reserved.

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gvdb/pkg/query"
)

func TestStrings(t *testing.T) {
	assert.Nil(t, query.Strings(""))
	assert.Equal(t, []string{"Acme", "Globex"}, query.Strings("Acme,Globex"))
	assert.Equal(t, []string{"Acme"}, query.Strings(" Acme , , "))
}

func TestInts(t *testing.T) {
	ids, err := query.Ints("1,2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	ids, err = query.Ints("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	// Malformed identifiers are rejected, never silently dropped.
	_, err = query.Ints("1,abc,3")
	assert.Error(t, err)
}
