package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"classicmodels/internal/shared/errors"
)

// ParseInt64Param parses a numeric identifier from a URL path parameter.
// entityName is used in error messages (e.g., "order", "customer").
func ParseInt64Param(c *gin.Context, paramName, entityName string) (int64, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("invalid "+entityName+" ID", raw+" is not a number")
	}
	return id, nil
}

// ParseStringParam returns a trimmed, non-empty path parameter.
func ParseStringParam(c *gin.Context, paramName, entityName string) (string, error) {
	raw := strings.TrimSpace(c.Param(paramName))
	if raw == "" {
		return "", errors.NewValidationError(entityName + " is required")
	}
	return raw, nil
}

// SplitCSV splits a comma-delimited value, trimming whitespace and dropping
// empty elements.
func SplitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
