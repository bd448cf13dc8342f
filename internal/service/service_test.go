package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/seed"
	"github.com/cosca/portal/internal/storage/sqlite"
	"github.com/cosca/portal/pkg/api"
	"github.com/cosca/portal/pkg/api/apiconnect"
)

// stubAnalyzer echoes the student ID instead of calling a model.
type stubAnalyzer struct{}

func (stubAnalyzer) Summarize(_ context.Context, s *models.Student) string {
	return "summary for " + s.ID
}

type testServer struct {
	url   string
	store *sqlite.SQLiteStore
}

// clients is one caller's view of the server.
type clients struct {
	token     string
	auth      apiconnect.AuthServiceClient
	nav       apiconnect.NavigationServiceClient
	students  apiconnect.StudentServiceClient
	billing   apiconnect.BillingServiceClient
	admin     apiconnect.AdminServiceClient
	dashboard apiconnect.DashboardServiceClient
}

// setupTestServer starts every service over a temp database loaded with the
// demo data.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if _, err := seed.LoadIfEmpty(context.Background(), store); err != nil {
		store.Close()
		t.Fatalf("failed to seed store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svcs := &Services{
		Auth:       NewAuthService(auth.NewPasswordAuthenticator(store, false), jwtManager, store, logger),
		Navigation: NewNavigationService(store),
		Students:   NewStudentService(store),
		Billing:    NewBillingService(store, stubAnalyzer{}),
		Admin:      NewAdminService(store),
		Dashboard:  NewDashboardService(store),
	}

	mux := http.NewServeMux()
	svcs.Register(mux, Interceptors(jwtManager, store))
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return &testServer{url: server.URL, store: store}
}

func withToken(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

func (s *testServer) clients(token string) *clients {
	opt := connect.WithInterceptors(withToken(token))
	return &clients{
		token:     token,
		auth:      apiconnect.NewAuthServiceClient(http.DefaultClient, s.url, opt),
		nav:       apiconnect.NewNavigationServiceClient(http.DefaultClient, s.url, opt),
		students:  apiconnect.NewStudentServiceClient(http.DefaultClient, s.url, opt),
		billing:   apiconnect.NewBillingServiceClient(http.DefaultClient, s.url, opt),
		admin:     apiconnect.NewAdminServiceClient(http.DefaultClient, s.url, opt),
		dashboard: apiconnect.NewDashboardServiceClient(http.DefaultClient, s.url, opt),
	}
}

func (s *testServer) anonymous() *clients {
	return s.clients("")
}

// login signs in and returns clients carrying the session token.
func (s *testServer) login(t *testing.T, username, password string) *clients {
	t.Helper()
	resp, err := s.anonymous().auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Username: username,
		Password: password,
	}))
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", username, err)
	}
	return s.clients(resp.Msg.Token)
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("code: expected %v, got %v (%v)", want, got, err)
	}
}
