// Copyright (c) 2026 GVDB. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"gvdb/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 30},
		{"explicit", "page=3&per_page=50", 3, 50},
		{"zero_page", "page=0", 1, 30},
		{"negative_page", "page=-2", 1, 30},
		{"zero_limit", "per_page=0", 1, 30},
		{"excessive_limit", "per_page=5000", 1, 30},
		{"garbage", "page=abc&per_page=xyz", 1, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/search?"+tt.query, nil)
			p := pagination.FromRequest(r, 30)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 30}.Offset())
	assert.Equal(t, 30, pagination.Params{Page: 2, Limit: 30}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 30}.Offset())
}

func TestNewMeta_TotalPages(t *testing.T) {
	tests := []struct {
		total, limit, wantPages int
	}{
		{0, 30, 0},
		{1, 30, 1},
		{30, 30, 1},
		{31, 30, 2},
		{61, 30, 3},
	}

	for _, tt := range tests {
		meta := pagination.NewMeta(1, tt.limit, tt.total)
		assert.Equal(t, tt.wantPages, meta.TotalPages, "total=%d", tt.total)
	}
}
