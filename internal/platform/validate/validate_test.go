// Copyright (c) 2026 GVDB. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gvdb/internal/platform/apperr"
	"gvdb/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "code", "ACM-01", false},
		{"empty_string", "code", "", true},
		{"whitespace_only", "code", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

func TestValidator_DateYM(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid", "2024.03", true},
		{"iso_date", "2024-03", false},
		{"full_date", "2024.03.15", false},
		{"missing_month", "2024.", false},
		{"letters", "20x4.03", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.DateYM("release_date", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("type", "single").
		OneOf("type", "single", "single", "album", "segment").
		MaxLen("code", "ACM-01", 64).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("code", "").                            // Fails
		OneOf("type", "mixtape", "single", "album").     // Fails
		Custom("release_date", true, "Must be present"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
