package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string       `json:"name" example:"Konsumsi" default:""`               // Name of the category
	Description string       `json:"description" example:"Makan dan minum" default:""` // Description of the category
	Kind        finance.Kind `json:"kind" example:"expense" enums:"income,expense"`    // Income or expense
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Description: editable.Description,
		Kind:        editable.Kind,
	}
}

func (editable CategoryEditable) apply(model *models.Category) {
	model.Name = editable.Name
	model.Description = editable.Description
	model.Kind = editable.Kind
}

type CategoryLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`      // The category itself
	Plans string `json:"plans" example:"https://example.com/api/v1/plans?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Plans in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Description: model.Description,
			Kind:        model.Kind,
		},
		Links: CategoryLinks{
			Self:  fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Plans: fmt.Sprintf("%s/v1/plans?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name        string       `form:"name" filterField:"false"`        // By name
	Description string       `form:"description" filterField:"false"` // By description
	Kind        finance.Kind `form:"kind"`                            // By kind
	Search      string       `form:"search" filterField:"false"`      // By string in name or description
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first Category returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	if f.Kind != "" && !f.Kind.Valid() {
		return models.Category{}, errKindInvalid
	}

	return models.Category{
		Kind: f.Kind,
	}, nil
}
