// Package ledger implements the billing rules for student accounts: how each
// transaction contributes to the balance, the running-balance statement, and
// the void workflow.
package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/models"
)

var (
	// ErrInvalidTransition is returned when a status change is not part of the
	// void workflow.
	ErrInvalidTransition = errors.New("invalid transaction status transition")

	// ErrUnknownType is returned for transaction types outside the ledger's vocabulary.
	ErrUnknownType = errors.New("unknown transaction type")

	// ErrZeroAmount is returned when a new transaction has no amount.
	ErrZeroAmount = errors.New("transaction amount must be non-zero")
)

// Entry is a transaction with the account balance right after it.
type Entry struct {
	models.Transaction
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// Contribution returns how much t moves the balance.
//
//   - voided: 0
//   - payment: -|amount|
//   - adjustment: amount, sign preserved
//   - tuition, misc, lab: +|amount|
//
// Payments and charges ignore the entered sign so that "-14500" and "14500"
// post the same payment.
func Contribution(t models.Transaction) decimal.Decimal {
	if t.Status == models.StatusVoided {
		return decimal.Zero
	}
	switch t.Type {
	case models.TxPayment:
		return t.Amount.Abs().Neg()
	case models.TxAdjustment:
		return t.Amount
	case models.TxTuition, models.TxMisc, models.TxLab:
		return t.Amount.Abs()
	default:
		return decimal.Zero
	}
}

// Balance folds Contribution over ts. A negative result is a credit.
func Balance(ts []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ts {
		total = total.Add(Contribution(t))
	}
	return total
}

// Running returns the account statement, most recent first.
//
// Transactions are stable-sorted by date ascending so that same-day entries
// keep their posting order, walked forward to accumulate the balance, and then
// reversed. Voided entries are kept and carry the previous balance.
func Running(ts []models.Transaction) []Entry {
	sorted := slices.Clone(ts)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	entries := make([]Entry, len(sorted))
	balance := decimal.Zero
	for i, t := range sorted {
		balance = balance.Add(Contribution(t))
		entries[i] = Entry{Transaction: t, BalanceAfter: balance}
	}

	slices.Reverse(entries)
	return entries
}

// Transition validates a status change. Only posted -> void_requested and
// void_requested -> voided are allowed.
func Transition(from, to models.TransactionStatus) error {
	switch {
	case from == models.StatusPosted && to == models.StatusVoidRequested:
		return nil
	case from == models.StatusVoidRequested && to == models.StatusVoided:
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Validate checks a transaction about to be appended.
func Validate(t models.Transaction) error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
	if t.Amount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

// NewID returns a transaction ID such as "TRX-9F1C2A7B".
func NewID() string {
	return "TRX-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
