// Package mappers converts between persistence models and domain entities.
package mappers

import (
	"time"

	"gorm.io/datatypes"

	"classicmodels/internal/shared/mapper"
)

func datePtr(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// mapRows converts a slice of rows through a pointer-taking converter,
// naming the failing row by key.
func mapRows[M any, D any, K any](rows []M, convert func(*M) (D, error), key func(*M) K) ([]D, error) {
	ptrs := make([]*M, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	return mapper.MapSliceWithKey(ptrs, convert, key)
}
