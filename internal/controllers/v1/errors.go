package v1

import (
	"errors"
	"net/http"

	"github.com/sikuang/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errKindInvalid   = errors.New("the kind must be either 'income' or 'expense'")
	errFormatInvalid = errors.New("the format must be one of 'json', 'xlsx' or 'pdf'")

	errBudgetYearRequired = errors.New("a budget year must be selected when no budget year is active")

	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
