package repo

import (
	"testing"

	dom "todoapi/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	for name, tc := range map[string]struct {
		page dom.SearchPage
		want string
	}{
		"no sort field": {
			page: dom.SearchPage{},
			want: "",
		},
		"id ascending by default": {
			page: dom.SearchPage{SortField: "id"},
			want: " ORDER BY id ASC",
		},
		"camelCase field maps to column": {
			page: dom.SearchPage{SortField: "creationTime", SortOrder: "DESC"},
			want: " ORDER BY creation_time DESC",
		},
		"snake_case accepted too": {
			page: dom.SearchPage{SortField: "modification_time"},
			want: " ORDER BY modification_time ASC",
		},
		"order is case-insensitive": {
			page: dom.SearchPage{SortField: "title", SortOrder: "desc"},
			want: " ORDER BY title DESC",
		},
		"unknown field leaves result unsorted": {
			page: dom.SearchPage{SortField: "id; DROP TABLE todos"},
			want: "",
		},
		"unknown order falls back to ASC": {
			page: dom.SearchPage{SortField: "id", SortOrder: "sideways"},
			want: " ORDER BY id ASC",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, orderClause(tc.page))
		})
	}
}

func TestSearchPageOffset(t *testing.T) {
	p := dom.SearchPage{PageNumber: 3, PageSize: 10}
	assert.Equal(t, 30, p.Offset())

	p = dom.SearchPage{PageNumber: 0, PageSize: 10}
	assert.Equal(t, 0, p.Offset())
}
