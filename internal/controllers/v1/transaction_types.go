package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikuang/backend/internal/finance"
	"github.com/sikuang/backend/internal/models"
	"github.com/sikuang/backend/internal/types"
	sk_uuid "github.com/sikuang/backend/internal/uuid"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	PlanID      *uuid.UUID   `json:"planId" example:"0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`                // ID of the plan the transaction realizes. Transactions without a plan are allowed
	Date        types.Date   `json:"date" example:"2024-03-01"`                                            // Date of the transaction. Defaults to today
	Description string       `json:"description" example:"Snack rapat koordinasi" default:""`              // Description of the transaction
	Type        finance.Kind `json:"type" example:"expense" enums:"income,expense"`                        // Income or expense
	EvidenceURL string       `json:"evidenceUrl" example:"https://example.com/receipts/42.jpg" default:""` // Link to the receipt
	finance.Ekuivalen
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		PlanID:      editable.PlanID,
		Date:        editable.Date,
		Description: editable.Description,
		Type:        editable.Type,
		EvidenceURL: editable.EvidenceURL,
		Ekuivalen:   editable.Ekuivalen,
	}
}

func (editable TransactionEditable) apply(model *models.Transaction) {
	model.PlanID = editable.PlanID
	model.Date = editable.Date
	model.Description = editable.Description
	model.Type = editable.Type
	model.EvidenceURL = editable.EvidenceURL
	model.Ekuivalen = editable.Ekuivalen
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/7f1e2f3a-4b5c-4d6e-8f90-a1b2c3d4e5f6"` // The transaction itself
	Plan string `json:"plan" example:"https://example.com/api/v1/plans/0c3e9ab6-3f0d-4c38-a0e2-6b6f7f4f0d1c"`        // The plan of the transaction. Empty for transactions without a plan
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// These fields are computed
	Amount    decimal.Decimal `json:"amount" example:"250000"`                  // Amount, computed from the ekuivalen
	Breakdown string          `json:"breakdown" example:"5 paket × @ Rp50.000"` // Human readable ekuivalen
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			PlanID:      model.PlanID,
			Date:        model.Date,
			Description: model.Description,
			Type:        model.Type,
			EvidenceURL: model.EvidenceURL,
			Ekuivalen:   model.Ekuivalen,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
		Amount:    model.Amount,
		Breakdown: finance.FormatBreakdown(model.Ekuivalen),
	}

	if model.PlanID != nil {
		t.Links.Plan = fmt.Sprintf("%s/v1/plans/%s", url, *model.PlanID)
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if one occurred
}

type TransactionQueryFilter struct {
	PlanID      sk_uuid.UUID `form:"plan"`                            // By ID of the plan. An empty value selects transactions without a plan
	Type        finance.Kind `form:"type"`                            // By type
	FromDate    types.Date   `form:"fromDate" filterField:"false"`    // Transactions at and after this date
	UntilDate   types.Date   `form:"untilDate" filterField:"false"`   // Transactions before and at this date
	Description string       `form:"description" filterField:"false"` // By description, supports glob patterns with "*"
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() (models.Transaction, error) {
	if f.Type != "" && !f.Type.Valid() {
		return models.Transaction{}, errKindInvalid
	}

	return models.Transaction{
		PlanID: f.PlanID.Ptr(),
		Type:   f.Type,
	}, nil
}
