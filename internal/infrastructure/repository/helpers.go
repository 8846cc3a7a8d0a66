// Package repository implements the domain repositories on top of GORM.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"classicmodels/internal/shared/db"
	apperrors "classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

// notFoundOrUnavailable classifies a single-row lookup failure.
func notFoundOrUnavailable(err error, entity, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(entity+" not found", key)
	}
	return unavailable(err, "failed to load "+entity)
}

// unavailable wraps a store failure. Application errors pass through.
func unavailable(err error, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.NewStoreUnavailableError(message, err)
}

// fetchPage counts the rows matched by base, then loads one page of them in
// the given order. base must return a fresh statement on every call.
func fetchPage[M any, D any](
	base func() *gorm.DB,
	order string,
	page query.PageRequest,
	convert func([]M) ([]D, error),
	entity string,
) (*query.Page[D], error) {
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, unavailable(err, fmt.Sprintf("failed to count %s", entity))
	}

	if int64(page.Offset()) >= total {
		return query.NewPage([]D{}, page, total), nil
	}

	var rows []M
	if err := base().
		Order(order).
		Scopes(db.Paginate(page)).
		Find(&rows).Error; err != nil {
		return nil, unavailable(err, fmt.Sprintf("failed to list %s", entity))
	}

	content, err := convert(rows)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to map "+entity, err.Error())
	}
	return query.NewPage(content, page, total), nil
}
