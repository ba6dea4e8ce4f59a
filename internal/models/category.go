package models

import (
	"strings"

	"github.com/sikuang/backend/internal/finance"
	"gorm.io/gorm"
)

// Category classifies plans as income or expense.
type Category struct {
	DefaultModel
	Name        string `gorm:"uniqueIndex:category_name"`
	Description string
	Kind        finance.Kind
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	if !c.Kind.Valid() {
		return ErrCategoryKindInvalid
	}

	return nil
}

// Finance returns the representation used for computations.
func (c Category) Finance() finance.Category {
	return finance.Category{
		ID:   c.ID,
		Name: c.Name,
		Kind: c.Kind,
	}
}
