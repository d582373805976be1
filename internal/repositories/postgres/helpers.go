package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// applySort appends an ORDER BY clause, falling back to created_at desc.
// Column names are checked against allowed so request parameters cannot
// inject SQL.
func applySort(query *gorm.DB, sortBy, sortOrder string, allowed map[string]bool) *gorm.DB {
	if sortBy == "" || !allowed[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))
}

// applyPagination appends LIMIT/OFFSET with a sane default page size.
func applyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return query.Limit(limit).Offset(offset)
}
