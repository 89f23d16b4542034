// Copyright (c) 2026 GVDB. All rights reserved.

package production

import (
	"strings"

	"gvdb/internal/platform/database/schema"
)

// DefaultSort is the sort parameter applied when the client sends none.
const DefaultSort = "studio_asc,code_asc,title_asc,date_asc"

// sortFields whitelists the public sort tokens and their view columns.
var sortFields = map[string]string{
	"studio":  schema.SearchView.Studio,
	"code":    schema.SearchView.Code,
	"title":   schema.SearchView.Title,
	"date":    schema.SearchView.ReleaseDate,
	"updated": schema.SearchView.UpdatedAt,
}

// defaultOrder is the fixed fallback ordering when no valid token survives.
var defaultOrder = strings.Join([]string{
	schema.SearchView.Studio,
	schema.SearchView.Code,
	schema.SearchView.Title,
	schema.SearchView.ReleaseDate,
}, ", ")

/*
CompileSort compiles a comma-separated list of "field_asc" / "field_desc"
tokens into an ORDER BY body.

Tokens naming a non-whitelisted field, or malformed in any way, are
silently dropped; they never error. Valid tokens compose as a multi-key
ordering in the order given. If nothing survives, the fixed default
ordering applies. This whitelist-then-ignore policy is deliberately looser
than the filter policy (see [CompileFilter]).
*/
func CompileSort(param string) string {
	var parts []string

	for _, token := range strings.Split(param, ",") {
		token = strings.TrimSpace(token)

		sep := strings.LastIndex(token, "_")
		if sep < 0 {
			continue
		}

		field, direction := token[:sep], token[sep+1:]
		column, ok := sortFields[field]
		if !ok || (direction != "asc" && direction != "desc") {
			continue
		}

		parts = append(parts, column+" "+strings.ToUpper(direction))
	}

	if len(parts) == 0 {
		return defaultOrder
	}
	return strings.Join(parts, ", ")
}
