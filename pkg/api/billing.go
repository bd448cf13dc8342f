package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddTransactionRequest struct {
	StudentID   string          `json:"studentId" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=tuition misc lab payment adjustment"`
	Amount      decimal.Decimal `json:"amount" validate:"nonzero_decimal"`
	Description string          `json:"description" validate:"required,notblank"`

	// Date defaults to now.
	Date *time.Time `json:"date,omitempty"`
}

type AddTransactionResponse struct {
	Transaction *Transaction    `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type RequestVoidRequest struct {
	StudentID     string `json:"studentId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

type RequestVoidResponse struct {
	Transaction *Transaction    `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type ApproveVoidRequest struct {
	StudentID     string `json:"studentId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

type ApproveVoidResponse struct {
	Transaction *Transaction    `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type GetLedgerRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

type GetLedgerResponse struct {
	// Entries are most recent first.
	Entries []LedgerEntry   `json:"entries"`
	Balance decimal.Decimal `json:"balance"`
}

type GetAssessmentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

type GetAssessmentResponse struct {
	Assessment *Assessment `json:"assessment"`
}

type ListTransactionLogsRequest struct {
	Query string `json:"query"`
}

type ListTransactionLogsResponse struct {
	Entries []LogEntry `json:"entries"`
}

type ListVoidRequestsRequest struct{}

type ListVoidRequestsResponse struct {
	Entries []LogEntry `json:"entries"`
}

type AnalyzeAccountRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

type AnalyzeAccountResponse struct {
	Summary string `json:"summary"`
}
