// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"strings"

	"gorm.io/gorm"

	"classicmodels/internal/shared/query"
)

// Paginate is a GORM scope applying the offset and limit of a page request.
//
// Example usage:
//
//	db.Model(&models.OrderModel{}).Scopes(db.Paginate(req)).Find(&rows)
func Paginate(req query.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit())
	}
}

// Limit is a GORM scope capping the result to n rows. Non-positive n is a no-op.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}

// CaseInsensitiveIn matches column against any of values ignoring case. Both
// sides are lower-cased by the store, so the comparison follows the store's
// own folding rules.
func CaseInsensitiveIn(column string, values []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 1 {
			return db.Where("LOWER("+column+") = LOWER(?)", values[0])
		}
		placeholders := strings.TrimSuffix(strings.Repeat("LOWER(?), ", len(values)), ", ")
		args := make([]interface{}, len(values))
		for i, v := range values {
			args[i] = v
		}
		return db.Where("LOWER("+column+") IN ("+placeholders+")", args...)
	}
}
