package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultPageSize = 10

// ListQuery is the query-object contract shared by every paginated list
// endpoint: 1-based page, page size, sort column/direction and a
// case-insensitive substring search term.
type ListQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

func (q ListQuery) pageSize() int {
	if q.Limit > 0 {
		return q.Limit
	}
	return defaultPageSize
}

func (q ListQuery) offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.pageSize()
}

// scope applies pagination and ordering. Search is applied separately since
// the searchable column differs per entity.
func (q ListQuery) scope(db *gorm.DB) *gorm.DB {
	tx := db.Offset(q.offset()).Limit(q.pageSize())
	if q.SortBy != "" {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.SortBy},
			Desc:   strings.EqualFold(q.SortOrder, "desc"),
		})
	}
	return tx
}

// searchOn builds a case-insensitive substring match on the given column.
func searchOn(column, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}
