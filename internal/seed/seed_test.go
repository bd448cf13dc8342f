package seed

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage/sqlite"
)

func TestDemo(t *testing.T) {
	snap, err := Demo()
	if err != nil {
		t.Fatalf("Demo failed: %v", err)
	}
	if len(snap.Courses) != 4 || len(snap.Users) != 5 || len(snap.Students) != 2 {
		t.Fatalf("counts = %d courses, %d users, %d students", len(snap.Courses), len(snap.Users), len(snap.Students))
	}

	// cached balances in the demo data must agree with the ledger
	for _, s := range snap.Students {
		if !s.Balance.Equal(ledger.Balance(s.Transactions)) {
			t.Errorf("%s: Balance = %s, ledger says %s", s.ID, s.Balance, ledger.Balance(s.Transactions))
		}
	}
	if got := snap.Config.Term(); got != "1st Semester 2024-2025" {
		t.Errorf("Term() = %q", got)
	}
}

func TestLoadIfEmpty(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	loaded, err := LoadIfEmpty(ctx, store)
	if err != nil || !loaded {
		t.Fatalf("LoadIfEmpty = %v, %v; want true", loaded, err)
	}

	alice, err := store.GetStudent(ctx, "2024-001")
	if err != nil {
		t.Fatalf("GetStudent failed: %v", err)
	}
	if !alice.Balance.Equal(decimal.NewFromInt(5500)) {
		t.Errorf("Balance = %s, want 5500", alice.Balance)
	}
	if !auth.CheckPassword(alice.PasswordHash, "tempPassword123") {
		t.Error("seed password was not hashed")
	}

	loaded, err = LoadIfEmpty(ctx, store)
	if err != nil || loaded {
		t.Errorf("second LoadIfEmpty = %v, %v; want false", loaded, err)
	}
}

func TestWriteAndReadStudents(t *testing.T) {
	snap, err := Demo()
	if err != nil {
		t.Fatalf("Demo failed: %v", err)
	}
	alice := snap.Students[0].Student
	alice.PasswordHash = "secret-hash"

	var buf bytes.Buffer
	if err := WriteStudents(&buf, []*models.Student{&alice}); err != nil {
		t.Fatalf("WriteStudents failed: %v", err)
	}
	if strings.Contains(buf.String(), "secret-hash") {
		t.Error("export leaked the password hash")
	}

	records, err := ReadStudents(&buf)
	if err != nil {
		t.Fatalf("ReadStudents failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "2024-001" || len(records[0].Transactions) != 2 {
		t.Errorf("records = %+v", records)
	}
}

// originalSnapshot is the students collection as the portal front end stores
// it: calendar dates, numeric amounts and grades, optional statuses and
// transaction IDs that repeat across students.
const originalSnapshot = `[
  {
    "id": "2024-001", "firstName": "Alice", "lastName": "Rivera", "email": "alice.r@crimson.edu",
    "contactNumber": "0917-123-4567", "password": "tempPassword123", "isPasswordChanged": true,
    "type": "college", "courseId": "BSCS", "yearLevel": 1, "enrollmentStatus": "enrolled", "balance": 5500,
    "transactions": [
      { "id": "t1", "date": "2024-01-15", "amount": 20000, "type": "tuition", "description": "Tuition Assessment", "recordedBy": "system", "status": "posted" },
      { "id": "t2", "date": "2024-02-01", "amount": -14500, "type": "payment", "description": "Partial Payment", "recordedBy": "finance_admin" }
    ],
    "academicRecords": [
      { "code": "CS101", "name": "Intro to Computing", "units": 3, "grade": 1.5, "status": "completed", "term": "1st Sem 2023", "instructor": "Mr. Keating" },
      { "code": "CS103", "name": "Data Structures", "units": 3, "grade": "", "status": "enrolled", "term": "2nd Sem 2024" }
    ],
    "documents": [
      { "id": "d1", "name": "Form 137.pdf", "type": "application/pdf", "uploadDate": "2024-01-10", "url": "", "status": "approved" }
    ]
  },
  {
    "id": "2024-002", "firstName": "John", "lastName": "Doe", "email": "john.doe@crimson.edu",
    "password": "password", "isPasswordChanged": false,
    "type": "highschool", "courseId": "G12", "yearLevel": 12, "enrollmentStatus": "pending", "balance": 15500,
    "transactions": [
      { "id": "t1", "date": "2024-08-01", "amount": 15500, "type": "tuition", "description": "Annual School Fees", "recordedBy": "system", "status": "posted" }
    ],
    "academicRecords": [
      { "code": "G12-M2", "name": "Statistics & Probability", "units": 1, "status": "enrolled" }
    ],
    "documents": []
  }
]`

func TestReadStudents_OriginalFormat(t *testing.T) {
	records, err := ReadStudents(strings.NewReader(originalSnapshot))
	if err != nil {
		t.Fatalf("ReadStudents failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	alice := records[0]
	if alice.Password != "tempPassword123" {
		t.Errorf("Password = %q", alice.Password)
	}
	if !alice.Transactions[0].Date.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, want 2024-01-15", alice.Transactions[0].Date)
	}
	if alice.Transactions[1].Status != models.StatusPosted {
		t.Errorf("missing status decoded as %q, want posted", alice.Transactions[1].Status)
	}
	if !alice.Transactions[1].Amount.Equal(decimal.NewFromInt(-14500)) {
		t.Errorf("amount = %s", alice.Transactions[1].Amount)
	}
	if alice.AcademicRecords[0].Grade != "1.5" || alice.AcademicRecords[1].Grade != "" {
		t.Errorf("grades = %q, %q", alice.AcademicRecords[0].Grade, alice.AcademicRecords[1].Grade)
	}
	if alice.AcademicRecords[0].Instructor != "Mr. Keating" || alice.AcademicRecords[0].Units != 3 {
		t.Errorf("record = %+v", alice.AcademicRecords[0])
	}
}

func TestImportStudents_OriginalFormat(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "import.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	records, err := ReadStudents(strings.NewReader(originalSnapshot))
	if err != nil {
		t.Fatalf("ReadStudents failed: %v", err)
	}
	created, err := ImportStudents(ctx, store, records)
	if err != nil || created != 2 {
		t.Fatalf("ImportStudents = %d, %v; want 2", created, err)
	}

	tests := []struct {
		id      string
		txs     int
		balance int64
	}{
		{id: "2024-001", txs: 2, balance: 5500},
		{id: "2024-002", txs: 1, balance: 15500},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := store.GetStudent(ctx, tt.id)
			if err != nil {
				t.Fatalf("GetStudent failed: %v", err)
			}
			if len(s.Transactions) != tt.txs || s.Transactions[0].ID != "t1" {
				t.Fatalf("Transactions = %+v", s.Transactions)
			}
			if !s.Balance.Equal(decimal.NewFromInt(tt.balance)) {
				t.Errorf("Balance = %s, want %d", s.Balance, tt.balance)
			}
		})
	}

	// a second import of the same snapshot changes nothing
	created, err = ImportStudents(ctx, store, records)
	if err != nil || created != 0 {
		t.Errorf("re-import = %d, %v; want 0", created, err)
	}
	alice, _ := store.GetStudent(ctx, "2024-001")
	if !alice.Balance.Equal(decimal.NewFromInt(5500)) {
		t.Errorf("alice balance after re-import = %s", alice.Balance)
	}
}
