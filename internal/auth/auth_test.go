package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
)

type fakeAccounts struct {
	users    []*models.User
	students []*models.Student
}

func (f *fakeAccounts) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeAccounts) FindStudentsByFirstName(_ context.Context, name string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if strings.EqualFold(s.FirstName, name) {
			out = append(out, s)
		}
	}
	return out, nil
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return h
}

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	accounts := &fakeAccounts{
		users: []*models.User{{ID: "u2", Username: "finance", Role: models.RoleFinance, Name: "Fiona Cash"}},
		students: []*models.Student{
			{ID: "2024-001", FirstName: "Alice", LastName: "Rivera", PasswordHash: mustHash(t, "tempPassword123"), IsPasswordChanged: true},
			{ID: "2024-002", FirstName: "John", LastName: "Doe", PasswordHash: mustHash(t, "password")},
		},
	}

	tests := []struct {
		name     string
		strict   bool
		username string
		password string
		wantID   string
		wantErr  error
	}{
		{name: "staff by username, any password", username: "finance", password: "whatever", wantID: "u2"},
		{name: "staff username is exact", username: "FINANCE", wantErr: ErrInvalidCredentials},
		{name: "student with password", username: "alice", password: "tempPassword123", wantID: "2024-001"},
		{name: "student wrong password", username: "Alice", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "student empty password bypass", username: "JOHN", wantID: "2024-002"},
		{name: "strict rejects empty password", strict: true, username: "john", wantErr: ErrInvalidCredentials},
		{name: "strict accepts correct password", strict: true, username: "john", password: "password", wantID: "2024-002"},
		{name: "unknown", username: "nobody", wantErr: ErrInvalidCredentials},
		{name: "empty username", username: "", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewPasswordAuthenticator(accounts, tt.strict)
			id, err := a.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate failed: %v", err)
			}
			if id.UserID != tt.wantID {
				t.Errorf("UserID = %s, want %s", id.UserID, tt.wantID)
			}
		})
	}
}

func TestPasswordAuthenticator_StudentIdentity(t *testing.T) {
	accounts := &fakeAccounts{students: []*models.Student{{ID: "2024-002", FirstName: "John", LastName: "Doe"}}}
	id, err := NewPasswordAuthenticator(accounts, false).Authenticate(context.Background(), "john", "")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if id.Role != models.RoleStudent || id.Name != "John Doe" || id.PasswordChanged {
		t.Errorf("identity = %+v", id)
	}
}

func TestValidateCredential(t *testing.T) {
	a := NewPasswordAuthenticator(&fakeAccounts{}, false)
	if err := a.ValidateCredential("12345"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("5 chars: err = %v, want ErrWeakPassword", err)
	}
	if err := a.ValidateCredential("123456"); err != nil {
		t.Errorf("6 chars: err = %v, want nil", err)
	}
}

func TestGeneratePassword(t *testing.T) {
	for range 20 {
		pw := GeneratePassword()
		if len(pw) != 8 || strings.ToUpper(pw) != pw {
			t.Fatalf("GeneratePassword() = %q, want 8 uppercase characters", pw)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	h := mustHash(t, "secret1")
	if !CheckPassword(h, "secret1") {
		t.Error("correct password rejected")
	}
	if CheckPassword(h, "secret2") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", "") {
		t.Error("empty hash must never match")
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate(&Identity{UserID: "u4", Role: models.RoleSuperAdmin, Name: "System Administrator"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "u4" || claims.Role != models.RoleSuperAdmin || claims.Name != "System Administrator" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := NewJWTManager("other-secret", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}

	expired, _ := NewJWTManager("test-secret", -time.Minute).Generate(&Identity{UserID: "u4", Role: models.RoleSuperAdmin})
	if _, err := m.Validate(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired: err = %v, want ErrInvalidToken", err)
	}
}
