package export

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage/sqlite"
)

type fakeLister struct {
	students []*models.Student
	err      error
}

func (f fakeLister) ListStudents(context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func demoStudents() []*models.Student {
	return []*models.Student{{
		ID: "2024-001", FirstName: "Alice", LastName: "Rivera", CourseID: "BSCS",
		PasswordHash: "$2a$10$secret", Balance: decimal.NewFromInt(5500),
		EnrollmentStatus: models.EnrollmentEnrolled,
	}}
}

func TestAccountsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	AccountsHandler(fakeLister{students: demoStudents()}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/accounts.xlsx", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("content type: got %q", got)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "accounts.xlsx") {
		t.Errorf("disposition: got %q", rec.Header().Get("Content-Disposition"))
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()
	if len(f.GetSheetList()) != 1 {
		t.Errorf("expected one sheet, got %v", f.GetSheetList())
	}
}

func TestStudentsJSONHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	StudentsJSONHandler(fakeLister{students: demoStudents()}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/students.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Error("password hash leaked into the export")
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 1 || out[0]["id"] != "2024-001" {
		t.Errorf("unexpected export %v", out)
	}
}

func TestHandler_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	TransactionsHandler(fakeLister{err: errors.New("db down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/transactions.xlsx", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: expected 500, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	TransactionsHandler(fakeLister{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/export/transactions.xlsx", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: expected 405, got %d", rec.Code)
	}
}

const importBody = `[
  {"id": "2024-001", "firstName": "Alice", "lastName": "Rivera", "email": "alice.r@crimson.edu",
   "password": "tempPassword123", "isPasswordChanged": true, "type": "college", "courseId": "BSCS",
   "yearLevel": 1, "enrollmentStatus": "enrolled", "balance": 5500,
   "transactions": [
     {"id": "t1", "date": "2024-01-15", "amount": 20000, "type": "tuition", "description": "Tuition Assessment", "recordedBy": "system", "status": "posted"},
     {"id": "t2", "date": "2024-02-01", "amount": -14500, "type": "payment", "description": "Partial Payment", "recordedBy": "finance_admin"}
   ],
   "academicRecords": [{"code": "CS101", "name": "Intro to Computing", "units": 3, "grade": 1.5, "status": "completed"}],
   "documents": []},
  {"id": "2024-002", "firstName": "John", "lastName": "Doe", "email": "john.doe@crimson.edu",
   "password": "password", "type": "highschool", "courseId": "G12", "yearLevel": 12,
   "enrollmentStatus": "pending", "balance": 15500,
   "transactions": [{"id": "t1", "date": "2024-08-01", "amount": 15500, "type": "tuition", "description": "Annual School Fees", "recordedBy": "system", "status": "posted"}],
   "academicRecords": [], "documents": []}
]`

func TestStudentsImportHandler(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "import.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()
	h := StudentsImportHandler(store)

	post := func(body string) (int, ImportResult) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/import/students.json", strings.NewReader(body)))
		var res ImportResult
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
		}
		return rec.Code, res
	}

	code, res := post(importBody)
	if code != http.StatusOK || res.Received != 2 || res.Created != 2 {
		t.Fatalf("import = %d %+v, want 200 with 2 created", code, res)
	}

	alice, err := store.GetStudent(context.Background(), "2024-001")
	if err != nil {
		t.Fatalf("GetStudent failed: %v", err)
	}
	if !alice.Balance.Equal(decimal.NewFromInt(5500)) {
		t.Errorf("alice balance = %s, want 5500", alice.Balance)
	}
	if !auth.CheckPassword(alice.PasswordHash, "tempPassword123") {
		t.Error("imported password was not hashed")
	}
	john, err := store.GetStudent(context.Background(), "2024-002")
	if err != nil {
		t.Fatalf("GetStudent failed: %v", err)
	}
	if len(john.Transactions) != 1 || !john.Balance.Equal(decimal.NewFromInt(15500)) {
		t.Errorf("john = %+v", john)
	}

	t.Run("existing students are skipped", func(t *testing.T) {
		code, res := post(importBody)
		if code != http.StatusOK || res.Created != 0 {
			t.Errorf("re-import = %d %+v, want 200 with 0 created", code, res)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if code, _ := post(`{"not": "an array"}`); code != http.StatusBadRequest {
			t.Errorf("status: expected 400, got %d", code)
		}
	})

	t.Run("invalid ledger", func(t *testing.T) {
		body := `[{"id": "2024-009", "firstName": "Zed", "lastName": "Zero", "type": "college", "courseId": "BSCS",
			"enrollmentStatus": "enrolled",
			"transactions": [{"id": "t1", "date": "2024-01-15", "amount": 0, "type": "tuition"}]}]`
		code, res := post(body)
		if code != http.StatusBadRequest || res.Created != 0 || res.Error == "" {
			t.Errorf("import = %d %+v, want 400 with an error", code, res)
		}
	})

	t.Run("GET is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/import/students.json", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status: expected 405, got %d", rec.Code)
		}
	})
}
