// Package query holds store-agnostic paging and sorting primitives shared by
// every repository.
package query

import (
	"fmt"
	"math"
	"strings"

	"classicmodels/internal/shared/constants"
	"classicmodels/internal/shared/errors"
)

// PageRequest addresses one zero-based page of a result set.
type PageRequest struct {
	Number int
	Size   int
}

// NewPageRequest validates page parameters. Negative page numbers and sizes
// below one are rejected; sizes above MaxPageSize are capped.
func NewPageRequest(number, size int) (PageRequest, error) {
	if number < 0 {
		return PageRequest{}, errors.NewValidationError(
			"invalid page number",
			fmt.Sprintf("pageNumber must be >= 0, got %d", number),
		)
	}
	if size < 1 {
		return PageRequest{}, errors.NewValidationError(
			"invalid page size",
			fmt.Sprintf("perPage must be >= 1, got %d", size),
		)
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}
	return PageRequest{Number: number, Size: size}, nil
}

// Offset returns the number of rows preceding the page. It saturates at
// math.MaxInt instead of wrapping, so a far-away page stays past the end.
func (p PageRequest) Offset() int {
	if p.Number <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Limit returns the maximum number of rows on the page.
func (p PageRequest) Limit() int {
	return p.Size
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts "asc"/"desc" in any case; empty means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return Asc, nil
	case "DESC":
		return Desc, nil
	default:
		return "", errors.NewValidationError("invalid sort direction", s)
	}
}

// Sort orders results by a logical field name. Repositories translate the
// field to a column through a whitelist.
type Sort struct {
	Field     string
	Direction Direction
}

// IsZero reports whether no ordering was requested.
func (s Sort) IsZero() bool {
	return s.Field == ""
}

// IsDescending reports whether the sort is descending.
func (s Sort) IsDescending() bool {
	return s.Direction == Desc
}

// By builds an ascending sort on field.
func By(field string) Sort {
	return Sort{Field: field, Direction: Asc}
}

// ByDesc builds a descending sort on field.
func ByDesc(field string) Sort {
	return Sort{Field: field, Direction: Desc}
}

// OrderClause resolves the sort against a field-to-column whitelist.
// An empty sort falls back to fallbackColumn ascending.
func (s Sort) OrderClause(allowed map[string]string, fallbackColumn string) (string, error) {
	if s.IsZero() {
		return fallbackColumn + " ASC", nil
	}
	column, ok := allowed[s.Field]
	if !ok {
		return "", errors.NewValidationError("unsupported sort field", s.Field)
	}
	dir := Asc
	if s.IsDescending() {
		dir = Desc
	}
	return column + " " + string(dir), nil
}
