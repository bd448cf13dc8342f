package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/middleware"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/pkg/api/apiconnect"
)

// publicProcedures can be called without a session.
var publicProcedures = []string{
	apiconnect.AuthServiceLoginProcedure,
	apiconnect.AuthServiceRequestPasswordResetProcedure,
	apiconnect.NavigationServiceNavigateProcedure,
}

// gateExempt stays reachable for students who must still change their password.
var gateExempt = append([]string{
	apiconnect.AuthServiceGetSessionProcedure,
	apiconnect.AuthServiceChangePasswordProcedure,
}, publicProcedures...)

// Services bundles the RPC implementations served by the portal.
type Services struct {
	Auth       *AuthService
	Navigation *NavigationService
	Students   *StudentService
	Billing    *BillingService
	Admin      *AdminService
	Dashboard  *DashboardService
}

// Interceptors returns the handler chain shared by every service: token
// check, RPC logging and metrics, then the student password gate.
func Interceptors(jwtManager *auth.JWTManager, store storage.StudentStore) connect.HandlerOption {
	return connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, publicProcedures...),
		middleware.LoggingInterceptor(),
		middleware.PasswordGate(store, gateExempt...),
	)
}

// Register mounts every service on mux.
func (s *Services) Register(mux *http.ServeMux, opts ...connect.HandlerOption) {
	mux.Handle(apiconnect.NewAuthServiceHandler(s.Auth, opts...))
	mux.Handle(apiconnect.NewNavigationServiceHandler(s.Navigation, opts...))
	mux.Handle(apiconnect.NewStudentServiceHandler(s.Students, opts...))
	mux.Handle(apiconnect.NewBillingServiceHandler(s.Billing, opts...))
	mux.Handle(apiconnect.NewAdminServiceHandler(s.Admin, opts...))
	mux.Handle(apiconnect.NewDashboardServiceHandler(s.Dashboard, opts...))
}
