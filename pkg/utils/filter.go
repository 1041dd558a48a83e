package utils

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Stevensbe/system-procon-sub001/pkg/types"
)

// ParseFilterFromQuery monta um types.Filter a partir da query string:
// ?search=...&sort[created_at]=desc&filter[status]=EM_ANALISE&limit=10&page=2
func ParseFilterFromQuery(values url.Values) types.Filter {
	filter := types.Filter{
		Sort:   map[string]string{},
		Filter: map[string]interface{}{},
		Limit:  20,
		Page:   1,
	}

	if s := values.Get("search"); s != "" {
		filter.Search = s
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 && l <= 200 {
		filter.Limit = l
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		filter.Page = p
	}
	filter.Offset = (filter.Page - 1) * filter.Limit
	filter.WithPagination = values.Get("withPagination") == "true"

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			col := key[len("sort[") : len(key)-1]
			dir := strings.ToLower(vals[0])
			if dir == "asc" || dir == "desc" {
				filter.Sort[col] = dir
			}
		}
		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			col := key[len("filter[") : len(key)-1]
			filter.Filter[col] = vals[0]
		}
	}

	return filter
}
