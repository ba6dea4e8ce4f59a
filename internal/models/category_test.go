package models_test

import (
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryKind() {
	tests := []struct {
		kind finance.Kind
		err  error
	}{
		{finance.KindIncome, nil},
		{finance.KindExpense, nil},
		{finance.Kind("transfer"), models.ErrCategoryKindInvalid},
		{finance.Kind(""), models.ErrCategoryKindInvalid},
	}

	for _, tt := range tests {
		err := models.DB.Create(&models.Category{Name: string(tt.kind) + "-category", Kind: tt.kind}).Error
		if tt.err == nil {
			assert.Nil(suite.T(), err)
			continue
		}
		assert.ErrorIs(suite.T(), err, tt.err)
	}
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	_ = suite.createTestCategory(models.Category{Name: "Konsumsi"})

	err := models.DB.Create(&models.Category{Name: "Konsumsi", Kind: finance.KindExpense}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryFinance() {
	c := suite.createTestCategory(models.Category{Name: "Donasi", Kind: finance.KindIncome})

	assert.Equal(suite.T(), finance.Category{ID: c.ID, Name: "Donasi", Kind: finance.KindIncome}, c.Finance())
}
