package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classicmodels/internal/shared/errors"
)

type sampleQuery struct {
	Customer string `form:"customer" validate:"required"`
	Mode     string `form:"mode" validate:"omitempty,oneof=orm native"`
	Limit    int    `form:"limit" validate:"gte=1,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sampleQuery{Customer: "Euro+ Shopping Channel", Limit: 5}))
	})

	t.Run("reports query parameter names", func(t *testing.T) {
		err := ValidateStruct(sampleQuery{Mode: "jdbc", Limit: 0})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "customer is required")
		assert.Contains(t, appErr.Details, "mode must be one of [orm native]")
		assert.Contains(t, appErr.Details, "limit must be greater than or equal to 1")
	})
}

func TestBindingError(t *testing.T) {
	_, parseErr := strconv.Atoi("ten")

	err := BindingError(parseErr)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, `"ten" is not a valid number`)

	notFound := errors.NewNotFoundError("order not found")
	assert.Same(t, notFound, BindingError(notFound))
	assert.NoError(t, BindingError(nil))
}
