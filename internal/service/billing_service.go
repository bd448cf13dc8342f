package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/enrollment"
	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/metrics"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api"
)

// AccountAnalyzer writes a short summary of a student's account.
type AccountAnalyzer interface {
	Summarize(ctx context.Context, s *models.Student) string
}

// BillingService implements the BillingService RPC interface.
type BillingService struct {
	store    storage.Store
	analyzer AccountAnalyzer
	now      func() time.Time
}

// NewBillingService creates a new BillingService.
func NewBillingService(store storage.Store, analyzer AccountAnalyzer) *BillingService {
	return &BillingService{store: store, analyzer: analyzer, now: time.Now}
}

// ledgerReaders may read any student's ledger; students read their own.
var ledgerReaders = []models.Role{models.RoleFinance, models.RoleSuperAdmin, models.RoleRegistrar, models.RoleStudent}

// AddTransaction posts a new charge, payment or adjustment to a student's ledger.
func (s *BillingService) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	a, err := requireRole(ctx, models.RoleFinance, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	date := s.now().UTC()
	if req.Msg.Date != nil && !req.Msg.Date.IsZero() {
		date = req.Msg.Date.UTC()
	}
	tx := models.Transaction{
		ID:          ledger.NewID(),
		Date:        date,
		Amount:      req.Msg.Amount,
		Type:        models.TransactionType(req.Msg.Type),
		Description: strings.TrimSpace(req.Msg.Description),
		RecordedBy:  a.ID,
		Status:      models.StatusPosted,
	}
	if err := ledger.Validate(tx); err != nil {
		return nil, toConnectError(err)
	}

	student, err := s.store.UpdateStudent(ctx, req.Msg.StudentID, func(st *models.Student) error {
		st.Transactions = append(st.Transactions, tx)
		return nil
	})
	if err != nil {
		slog.Error("Failed to post transaction", "student_id", req.Msg.StudentID, "error", err)
		return nil, toConnectError(err)
	}
	metrics.LedgerTransactions.WithLabelValues(string(tx.Type)).Inc()

	slog.Info("Posted transaction",
		"student_id", student.ID, "transaction_id", tx.ID, "type", tx.Type,
		"amount", tx.Amount.String(), "balance", student.Balance.String())

	t := toAPITransaction(tx)
	return connect.NewResponse(&api.AddTransactionResponse{Transaction: &t, Balance: student.Balance}), nil
}

// RequestVoid marks a posted transaction for voiding. The balance is unchanged
// until a super admin approves.
func (s *BillingService) RequestVoid(ctx context.Context, req *connect.Request[api.RequestVoidRequest]) (*connect.Response[api.RequestVoidResponse], error) {
	a, err := requireRole(ctx, models.RoleFinance, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	tx, balance, err := s.transition(ctx, req.Msg.StudentID, req.Msg.TransactionID, models.StatusVoidRequested)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Void requested", "student_id", req.Msg.StudentID, "transaction_id", tx.ID, "by", a.ID)
	t := toAPITransaction(tx)
	return connect.NewResponse(&api.RequestVoidResponse{Transaction: &t, Balance: balance}), nil
}

// ApproveVoid voids a transaction awaiting approval, removing its effect on the balance.
func (s *BillingService) ApproveVoid(ctx context.Context, req *connect.Request[api.ApproveVoidRequest]) (*connect.Response[api.ApproveVoidResponse], error) {
	a, err := requireRole(ctx, models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	tx, balance, err := s.transition(ctx, req.Msg.StudentID, req.Msg.TransactionID, models.StatusVoided)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Void approved", "student_id", req.Msg.StudentID, "transaction_id", tx.ID, "by", a.ID,
		"balance", balance.String())
	t := toAPITransaction(tx)
	return connect.NewResponse(&api.ApproveVoidResponse{Transaction: &t, Balance: balance}), nil
}

func (s *BillingService) transition(ctx context.Context, studentID, txID string, to models.TransactionStatus) (models.Transaction, decimal.Decimal, error) {
	var moved models.Transaction
	student, err := s.store.UpdateStudent(ctx, studentID, func(st *models.Student) error {
		i := st.FindTransaction(txID)
		if i < 0 {
			return fmt.Errorf("transaction %s: %w", txID, storage.ErrNotFound)
		}
		if err := ledger.Transition(st.Transactions[i].Status, to); err != nil {
			return fmt.Errorf("transaction %s: %w", txID, err)
		}
		st.Transactions[i].Status = to
		moved = st.Transactions[i]
		return nil
	})
	if err != nil {
		return moved, decimal.Zero, err
	}
	metrics.VoidTransitions.WithLabelValues(string(to)).Inc()
	return moved, student.Balance, nil
}

// GetLedger returns the student's transactions, most recent first, each with
// the balance right after it.
func (s *BillingService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	a, err := requireRole(ctx, ledgerReaders...)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	st, err := loadVisibleStudent(ctx, s.store, a, req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetLedgerResponse{
		Entries: toAPILedger(ledger.Running(st.Transactions)),
		Balance: ledger.Balance(st.Transactions),
	}), nil
}

// GetAssessment breaks down the current-term tuition of a student.
func (s *BillingService) GetAssessment(ctx context.Context, req *connect.Request[api.GetAssessmentRequest]) (*connect.Response[api.GetAssessmentResponse], error) {
	a, err := requireRole(ctx, ledgerReaders...)
	if err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	st, err := loadVisibleStudent(ctx, s.store, a, req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	course, err := s.store.GetCourse(ctx, st.CourseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetAssessmentResponse{
		Assessment: toAPIAssessment(enrollment.CurrentAssessment(st, course)),
	}), nil
}

// ListTransactionLogs searches every student's transactions, newest first.
func (s *BillingService) ListTransactionLogs(ctx context.Context, req *connect.Request[api.ListTransactionLogsRequest]) (*connect.Response[api.ListTransactionLogsResponse], error) {
	if _, err := requireRole(ctx, models.RoleFinance, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListTransactionLogsResponse{
		Entries: toAPILogEntries(reports.TransactionLogs(students, req.Msg.Query)),
	}), nil
}

// ListVoidRequests returns every transaction awaiting void approval.
func (s *BillingService) ListVoidRequests(ctx context.Context, req *connect.Request[api.ListVoidRequestsRequest]) (*connect.Response[api.ListVoidRequestsResponse], error) {
	if _, err := requireRole(ctx, models.RoleFinance, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.ListVoidRequestsResponse{
		Entries: toAPILogEntries(reports.VoidRequests(students)),
	}), nil
}

// AnalyzeAccount asks the analyzer for a summary of a student's account. It
// always succeeds once the student is found; analyzer failures come back as
// a fixed message.
func (s *BillingService) AnalyzeAccount(ctx context.Context, req *connect.Request[api.AnalyzeAccountRequest]) (*connect.Response[api.AnalyzeAccountResponse], error) {
	if _, err := requireRole(ctx, models.RoleFinance, models.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if err := validateMsg(req.Msg); err != nil {
		return nil, err
	}

	st, err := s.store.GetStudent(ctx, req.Msg.StudentID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AnalyzeAccountResponse{Summary: s.analyzer.Summarize(ctx, st)}), nil
}
