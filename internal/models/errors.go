package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrBudgetYearNameNotUnique = errors.New("the budget year name must be unique")
	ErrBudgetYearDateRange     = errors.New("the end date of a budget year must not be before its start date")
)

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrCategoryKindInvalid   = errors.New("the category kind must be either 'income' or 'expense'")
)

var (
	ErrQuantityRequired  = errors.New("quantity1 must be larger than zero")
	ErrUnitPriceRequired = errors.New("unitPrice must be larger than zero")
	ErrPlanDateRange     = errors.New("the end date of a plan must not be before its start date")
)

var ErrTransactionTypeInvalid = errors.New("the transaction type must be either 'income' or 'expense'")

var ErrSettingKeyUnknown = errors.New("this setting key is unknown")
