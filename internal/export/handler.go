package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/reports"
	"github.com/cosca/portal/internal/seed"
	"github.com/cosca/portal/internal/storage"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// maxImportBytes caps the size of an uploaded students snapshot.
	maxImportBytes = 32 << 20
)

// ImportResult is the response body of a students import.
type ImportResult struct {
	Received int    `json:"received"`
	Created  int    `json:"created"`
	Error    string `json:"error,omitempty"`
}

// StudentLister is the part of the store the exports read.
type StudentLister interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
}

// TransactionsHandler serves the transaction log as XLSX. The optional "q"
// query parameter filters like the in-app search.
func TransactionsHandler(store StudentLister) http.Handler {
	return download(store, "transactions.xlsx", xlsxContentType, func(w io.Writer, r *http.Request, students []*models.Student) error {
		return Write(w, TransactionLogSheet(reports.TransactionLogs(students, r.URL.Query().Get("q"))))
	})
}

// AccountsHandler serves every student account with its balance as XLSX.
func AccountsHandler(store StudentLister) http.Handler {
	return download(store, "accounts.xlsx", xlsxContentType, func(w io.Writer, _ *http.Request, students []*models.Student) error {
		return Write(w, AccountsSheet(students))
	})
}

// StudentsJSONHandler serves the students collection as a JSON array,
// without password hashes.
func StudentsJSONHandler(store StudentLister) http.Handler {
	return download(store, "students.json", "application/json", func(w io.Writer, _ *http.Request, students []*models.Student) error {
		return seed.WriteStudents(w, students)
	})
}

// StudentsImportHandler accepts a students snapshot as a JSON array (POST) and
// creates every student that does not exist yet. Plaintext passwords in the
// snapshot are hashed. Students created before a failing record are kept.
func StudentsImportHandler(store storage.StudentStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		records, err := seed.ReadStudents(http.MaxBytesReader(w, r.Body, maxImportBytes))
		if err != nil {
			writeImportResult(w, http.StatusBadRequest, ImportResult{Error: err.Error()})
			return
		}

		created, err := seed.ImportStudents(r.Context(), store, records)
		res := ImportResult{Received: len(records), Created: created}
		if err != nil {
			res.Error = err.Error()
			status := http.StatusInternalServerError
			if invalidSnapshot(err) {
				status = http.StatusBadRequest
			} else {
				slog.Error("Import failed", "created", created, "error", err)
			}
			writeImportResult(w, status, res)
			return
		}

		slog.Info("Imported students", "received", res.Received, "created", res.Created)
		writeImportResult(w, http.StatusOK, res)
	})
}

// invalidSnapshot reports whether err comes from the snapshot's content
// rather than from the store.
func invalidSnapshot(err error) bool {
	for _, target := range []error{
		ledger.ErrUnknownType, ledger.ErrZeroAmount, ledger.ErrInvalidTransition,
		storage.ErrLedgerRewrite, storage.ErrAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeImportResult(w http.ResponseWriter, status int, res ImportResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func download(store StudentLister, filename, contentType string, render func(io.Writer, *http.Request, []*models.Student) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		students, err := store.ListStudents(r.Context())
		if err != nil {
			slog.Error("Export failed", "export", filename, "error", err)
			http.Error(w, "failed to load students", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := render(&buf, r, students); err != nil {
			slog.Error("Export failed", "export", filename, "error", err)
			http.Error(w, "failed to render export", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = buf.WriteTo(w)
	})
}
