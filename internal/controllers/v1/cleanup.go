package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/models"
)

const cleanupConfirmation = "yes-please-delete-everything"

// @Summary		Delete everything
// @Description	Permanently deletes all budget years, categories, plans, transactions and settings
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != cleanupConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Models referencing others come first
	resources := []any{
		models.Transaction{},
		models.Plan{},
		models.Category{},
		models.BudgetYear{},
		models.Setting{},
	}

	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	err = tx.Commit().Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
