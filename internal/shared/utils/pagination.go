package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"classicmodels/internal/shared/constants"
	"classicmodels/internal/shared/errors"
	"classicmodels/internal/shared/query"
)

// ParsePageRequest reads pageNumber (default 0) and perPage (default 10)
// from the query string. Non-numeric or out-of-range values are rejected.
func ParsePageRequest(c *gin.Context) (query.PageRequest, error) {
	number, err := parseQueryInt(c, constants.QueryPageNumber, constants.DefaultPageNumber)
	if err != nil {
		return query.PageRequest{}, err
	}
	size, err := parseQueryInt(c, constants.QueryPerPage, constants.DefaultPerPage)
	if err != nil {
		return query.PageRequest{}, err
	}
	return query.NewPageRequest(number, size)
}

// ParseQueryInt parses an integer query parameter with a default value.
func ParseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	return parseQueryInt(c, key, defaultVal)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val, ok := c.GetQuery(key)
	if !ok || val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.NewValidationError("invalid "+key, key+" must be an integer")
	}
	return n, nil
}
