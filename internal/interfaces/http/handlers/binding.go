package handlers

import (
	"github.com/gin-gonic/gin"

	"classicmodels/internal/shared/utils"
)

// bindQuery decodes the query string into target and runs its validate tags.
func bindQuery(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindQuery(target); err != nil {
		return utils.BindingError(err)
	}
	return utils.ValidateStruct(target)
}
