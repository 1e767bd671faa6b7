package domain

import "time"

// Todo is the domain entity. It does not depend on Gin or Postgres.
type Todo struct {
	ID          int64
	Title       string
	Description string

	CreationTime     time.Time
	ModificationTime time.Time
}

// SearchPage carries paging and sorting for a search query.
// SortField/SortOrder may be empty, in which case the result order
// is whatever the storage returns.
type SearchPage struct {
	PageNumber int
	PageSize   int
	SortField  string
	SortOrder  string
}

// Offset is the row offset corresponding to PageNumber.
func (p SearchPage) Offset() int {
	return p.PageNumber * p.PageSize
}
