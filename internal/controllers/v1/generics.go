package v1

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/httputil"
	"github.com/sikuang/backend/internal/models"
	"gorm.io/gorm"
)

type resource interface {
	models.BudgetYear | models.Category | models.Plan | models.Transaction
}

// withCategory preloads the category of plans.
func withCategory(db *gorm.DB) *gorm.DB {
	return db.Preload("Category")
}

// getResource loads the resource with the ID from the request path.
func getResource[R resource](c *gin.Context, scopes ...func(*gorm.DB) *gorm.DB) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = models.DB.Scopes(scopes...).First(&r, uri.ID.UUID).Error
	return r, err
}

// deleteResource deletes the resource with the ID from the request path.
// On failure, the error response is written and ok is false.
func deleteResource[R resource](c *gin.Context) (R, bool) {
	r, err := getResource[R](c)
	if err == nil {
		err = models.DB.Delete(&r).Error
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return r, false
	}

	return r, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	_, err := getResource[R](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// bindEkuivalen binds a plan or transaction body. Quantities and unit prices
// are read leniently, the remaining fields as with httputil.BindData.
func bindEkuivalen(c *gin.Context, data any) error {
	body, err := c.GetRawData()
	if err != nil {
		return httputil.ErrInvalidBody
	}

	// Broken JSON is reported by BindData
	if normalized, err := finance.NormalizeJSON(body); err == nil {
		body = normalized
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return httputil.BindData(c, data)
}
