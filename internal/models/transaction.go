package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxTuition    TransactionType = "tuition"
	TxMisc       TransactionType = "misc"
	TxLab        TransactionType = "lab"
	TxPayment    TransactionType = "payment"
	TxAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TxTuition, TxMisc, TxLab, TxPayment, TxAdjustment:
		return true
	}
	return false
}

// TransactionStatus tracks the void workflow of a ledger entry.
type TransactionStatus string

const (
	StatusPosted        TransactionStatus = "posted"
	StatusVoidRequested TransactionStatus = "void_requested"
	StatusVoided        TransactionStatus = "voided"
)

// Transaction represents one entry on a student's billing ledger.
// Transactions are appended and never deleted; only Status changes after insert.
type Transaction struct {
	// ID is the unique identifier (e.g. "TRX-1A2B3C4D").
	ID string `json:"id"`

	// Date is when the entry takes effect. Ledger views order by it.
	Date time.Time `json:"date"`

	// Amount is stored as entered. Payments are usually negative and
	// charges positive, but the ledger rule does not rely on that.
	Amount decimal.Decimal `json:"amount"`

	// Type decides how Amount contributes to the balance.
	Type TransactionType `json:"type"`

	// Description is free text shown on statements.
	Description string `json:"description"`

	// RecordedBy is the ID of the actor who posted the entry, or "system".
	RecordedBy string `json:"recordedBy"`

	// Status is posted, void_requested or voided.
	Status TransactionStatus `json:"status"`
}
