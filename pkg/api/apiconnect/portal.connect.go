// Package apiconnect wires the portal messages in package api to Connect
// handlers and clients.
package apiconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	api "github.com/cosca/portal/pkg/api"
)

const (
	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "portal.v1.AuthService"
	// NavigationServiceName is the fully-qualified name of the NavigationService service.
	NavigationServiceName = "portal.v1.NavigationService"
	// StudentServiceName is the fully-qualified name of the StudentService service.
	StudentServiceName = "portal.v1.StudentService"
	// BillingServiceName is the fully-qualified name of the BillingService service.
	BillingServiceName = "portal.v1.BillingService"
	// AdminServiceName is the fully-qualified name of the AdminService service.
	AdminServiceName = "portal.v1.AdminService"
	// DashboardServiceName is the fully-qualified name of the DashboardService service.
	DashboardServiceName = "portal.v1.DashboardService"
)

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	AuthServiceLoginProcedure                   = "/portal.v1.AuthService/Login"
	AuthServiceGetSessionProcedure              = "/portal.v1.AuthService/GetSession"
	AuthServiceChangePasswordProcedure          = "/portal.v1.AuthService/ChangePassword"
	AuthServiceRequestPasswordResetProcedure    = "/portal.v1.AuthService/RequestPasswordReset"
	NavigationServiceNavigateProcedure          = "/portal.v1.NavigationService/Navigate"
	StudentServiceListStudentsProcedure         = "/portal.v1.StudentService/ListStudents"
	StudentServiceGetStudentProcedure           = "/portal.v1.StudentService/GetStudent"
	StudentServiceCreateStudentProcedure        = "/portal.v1.StudentService/CreateStudent"
	StudentServiceUpdateStudentProcedure        = "/portal.v1.StudentService/UpdateStudent"
	StudentServiceAddSubjectProcedure           = "/portal.v1.StudentService/AddSubject"
	StudentServicePostGradeProcedure            = "/portal.v1.StudentService/PostGrade"
	StudentServiceUploadDocumentProcedure       = "/portal.v1.StudentService/UploadDocument"
	StudentServiceReviewDocumentProcedure       = "/portal.v1.StudentService/ReviewDocument"
	BillingServiceAddTransactionProcedure       = "/portal.v1.BillingService/AddTransaction"
	BillingServiceRequestVoidProcedure          = "/portal.v1.BillingService/RequestVoid"
	BillingServiceApproveVoidProcedure          = "/portal.v1.BillingService/ApproveVoid"
	BillingServiceGetLedgerProcedure            = "/portal.v1.BillingService/GetLedger"
	BillingServiceGetAssessmentProcedure        = "/portal.v1.BillingService/GetAssessment"
	BillingServiceListTransactionLogsProcedure  = "/portal.v1.BillingService/ListTransactionLogs"
	BillingServiceListVoidRequestsProcedure     = "/portal.v1.BillingService/ListVoidRequests"
	BillingServiceAnalyzeAccountProcedure       = "/portal.v1.BillingService/AnalyzeAccount"
	AdminServiceListUsersProcedure              = "/portal.v1.AdminService/ListUsers"
	AdminServiceCreateUserProcedure             = "/portal.v1.AdminService/CreateUser"
	AdminServiceUpdateUserProcedure             = "/portal.v1.AdminService/UpdateUser"
	AdminServiceListCoursesProcedure            = "/portal.v1.AdminService/ListCourses"
	AdminServiceSaveCourseProcedure             = "/portal.v1.AdminService/SaveCourse"
	AdminServiceGetSystemConfigProcedure        = "/portal.v1.AdminService/GetSystemConfig"
	AdminServiceUpdateSystemConfigProcedure     = "/portal.v1.AdminService/UpdateSystemConfig"
	AdminServiceListPasswordRequestsProcedure   = "/portal.v1.AdminService/ListPasswordRequests"
	AdminServiceResolvePasswordRequestProcedure = "/portal.v1.AdminService/ResolvePasswordRequest"
	DashboardServiceGetDashboardProcedure       = "/portal.v1.DashboardService/GetDashboard"
)

// AuthServiceClient is a client for the portal.v1.AuthService service.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetSession(context.Context, *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	RequestPasswordReset(context.Context, *connect.Request[api.RequestPasswordResetRequest]) (*connect.Response[api.RequestPasswordResetResponse], error)
}

// NewAuthServiceClient constructs a client for the portal.v1.AuthService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &authServiceClient{
		login:                connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getSession:           connect.NewClient[api.GetSessionRequest, api.GetSessionResponse](httpClient, baseURL+AuthServiceGetSessionProcedure, opts...),
		changePassword:       connect.NewClient[api.ChangePasswordRequest, api.ChangePasswordResponse](httpClient, baseURL+AuthServiceChangePasswordProcedure, opts...),
		requestPasswordReset: connect.NewClient[api.RequestPasswordResetRequest, api.RequestPasswordResetResponse](httpClient, baseURL+AuthServiceRequestPasswordResetProcedure, opts...),
	}
}

type authServiceClient struct {
	login                *connect.Client[api.LoginRequest, api.LoginResponse]
	getSession           *connect.Client[api.GetSessionRequest, api.GetSessionResponse]
	changePassword       *connect.Client[api.ChangePasswordRequest, api.ChangePasswordResponse]
	requestPasswordReset *connect.Client[api.RequestPasswordResetRequest, api.RequestPasswordResetResponse]
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *authServiceClient) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

func (c *authServiceClient) RequestPasswordReset(ctx context.Context, req *connect.Request[api.RequestPasswordResetRequest]) (*connect.Response[api.RequestPasswordResetResponse], error) {
	return c.requestPasswordReset.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the portal.v1.AuthService service.
// AuthService issues and inspects sessions.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetSession(context.Context, *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	RequestPasswordReset(context.Context, *connect.Request[api.RequestPasswordResetRequest]) (*connect.Response[api.RequestPasswordResetResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	loginHandler := connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...)
	getSessionHandler := connect.NewUnaryHandler(AuthServiceGetSessionProcedure, svc.GetSession, opts...)
	changePasswordHandler := connect.NewUnaryHandler(AuthServiceChangePasswordProcedure, svc.ChangePassword, opts...)
	requestPasswordResetHandler := connect.NewUnaryHandler(AuthServiceRequestPasswordResetProcedure, svc.RequestPasswordReset, opts...)
	return "/portal.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceLoginProcedure:
			loginHandler.ServeHTTP(w, r)
		case AuthServiceGetSessionProcedure:
			getSessionHandler.ServeHTTP(w, r)
		case AuthServiceChangePasswordProcedure:
			changePasswordHandler.ServeHTTP(w, r)
		case AuthServiceRequestPasswordResetProcedure:
			requestPasswordResetHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// NavigationServiceClient is a client for the portal.v1.NavigationService service.
type NavigationServiceClient interface {
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error)
}

// NewNavigationServiceClient constructs a client for the portal.v1.NavigationService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewNavigationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NavigationServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &navigationServiceClient{
		navigate: connect.NewClient[api.NavigateRequest, api.NavigateResponse](httpClient, baseURL+NavigationServiceNavigateProcedure, opts...),
	}
}

type navigationServiceClient struct {
	navigate *connect.Client[api.NavigateRequest, api.NavigateResponse]
}

func (c *navigationServiceClient) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error) {
	return c.navigate.CallUnary(ctx, req)
}

// NavigationServiceHandler is an implementation of the portal.v1.NavigationService service.
// NavigationService resolves which screen a session may see.
type NavigationServiceHandler interface {
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error)
}

// NewNavigationServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewNavigationServiceHandler(svc NavigationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	navigateHandler := connect.NewUnaryHandler(NavigationServiceNavigateProcedure, svc.Navigate, opts...)
	return "/portal.v1.NavigationService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case NavigationServiceNavigateProcedure:
			navigateHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// StudentServiceClient is a client for the portal.v1.StudentService service.
type StudentServiceClient interface {
	ListStudents(context.Context, *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error)
	GetStudent(context.Context, *connect.Request[api.GetStudentRequest]) (*connect.Response[api.GetStudentResponse], error)
	CreateStudent(context.Context, *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.CreateStudentResponse], error)
	UpdateStudent(context.Context, *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.UpdateStudentResponse], error)
	AddSubject(context.Context, *connect.Request[api.AddSubjectRequest]) (*connect.Response[api.AddSubjectResponse], error)
	PostGrade(context.Context, *connect.Request[api.PostGradeRequest]) (*connect.Response[api.PostGradeResponse], error)
	UploadDocument(context.Context, *connect.Request[api.UploadDocumentRequest]) (*connect.Response[api.UploadDocumentResponse], error)
	ReviewDocument(context.Context, *connect.Request[api.ReviewDocumentRequest]) (*connect.Response[api.ReviewDocumentResponse], error)
}

// NewStudentServiceClient constructs a client for the portal.v1.StudentService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewStudentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StudentServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &studentServiceClient{
		listStudents:   connect.NewClient[api.ListStudentsRequest, api.ListStudentsResponse](httpClient, baseURL+StudentServiceListStudentsProcedure, opts...),
		getStudent:     connect.NewClient[api.GetStudentRequest, api.GetStudentResponse](httpClient, baseURL+StudentServiceGetStudentProcedure, opts...),
		createStudent:  connect.NewClient[api.CreateStudentRequest, api.CreateStudentResponse](httpClient, baseURL+StudentServiceCreateStudentProcedure, opts...),
		updateStudent:  connect.NewClient[api.UpdateStudentRequest, api.UpdateStudentResponse](httpClient, baseURL+StudentServiceUpdateStudentProcedure, opts...),
		addSubject:     connect.NewClient[api.AddSubjectRequest, api.AddSubjectResponse](httpClient, baseURL+StudentServiceAddSubjectProcedure, opts...),
		postGrade:      connect.NewClient[api.PostGradeRequest, api.PostGradeResponse](httpClient, baseURL+StudentServicePostGradeProcedure, opts...),
		uploadDocument: connect.NewClient[api.UploadDocumentRequest, api.UploadDocumentResponse](httpClient, baseURL+StudentServiceUploadDocumentProcedure, opts...),
		reviewDocument: connect.NewClient[api.ReviewDocumentRequest, api.ReviewDocumentResponse](httpClient, baseURL+StudentServiceReviewDocumentProcedure, opts...),
	}
}

type studentServiceClient struct {
	listStudents   *connect.Client[api.ListStudentsRequest, api.ListStudentsResponse]
	getStudent     *connect.Client[api.GetStudentRequest, api.GetStudentResponse]
	createStudent  *connect.Client[api.CreateStudentRequest, api.CreateStudentResponse]
	updateStudent  *connect.Client[api.UpdateStudentRequest, api.UpdateStudentResponse]
	addSubject     *connect.Client[api.AddSubjectRequest, api.AddSubjectResponse]
	postGrade      *connect.Client[api.PostGradeRequest, api.PostGradeResponse]
	uploadDocument *connect.Client[api.UploadDocumentRequest, api.UploadDocumentResponse]
	reviewDocument *connect.Client[api.ReviewDocumentRequest, api.ReviewDocumentResponse]
}

func (c *studentServiceClient) ListStudents(ctx context.Context, req *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error) {
	return c.listStudents.CallUnary(ctx, req)
}

func (c *studentServiceClient) GetStudent(ctx context.Context, req *connect.Request[api.GetStudentRequest]) (*connect.Response[api.GetStudentResponse], error) {
	return c.getStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) CreateStudent(ctx context.Context, req *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.CreateStudentResponse], error) {
	return c.createStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) UpdateStudent(ctx context.Context, req *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.UpdateStudentResponse], error) {
	return c.updateStudent.CallUnary(ctx, req)
}

func (c *studentServiceClient) AddSubject(ctx context.Context, req *connect.Request[api.AddSubjectRequest]) (*connect.Response[api.AddSubjectResponse], error) {
	return c.addSubject.CallUnary(ctx, req)
}

func (c *studentServiceClient) PostGrade(ctx context.Context, req *connect.Request[api.PostGradeRequest]) (*connect.Response[api.PostGradeResponse], error) {
	return c.postGrade.CallUnary(ctx, req)
}

func (c *studentServiceClient) UploadDocument(ctx context.Context, req *connect.Request[api.UploadDocumentRequest]) (*connect.Response[api.UploadDocumentResponse], error) {
	return c.uploadDocument.CallUnary(ctx, req)
}

func (c *studentServiceClient) ReviewDocument(ctx context.Context, req *connect.Request[api.ReviewDocumentRequest]) (*connect.Response[api.ReviewDocumentResponse], error) {
	return c.reviewDocument.CallUnary(ctx, req)
}

// StudentServiceHandler is an implementation of the portal.v1.StudentService service.
// StudentService manages student records and enrollment.
type StudentServiceHandler interface {
	ListStudents(context.Context, *connect.Request[api.ListStudentsRequest]) (*connect.Response[api.ListStudentsResponse], error)
	GetStudent(context.Context, *connect.Request[api.GetStudentRequest]) (*connect.Response[api.GetStudentResponse], error)
	CreateStudent(context.Context, *connect.Request[api.CreateStudentRequest]) (*connect.Response[api.CreateStudentResponse], error)
	UpdateStudent(context.Context, *connect.Request[api.UpdateStudentRequest]) (*connect.Response[api.UpdateStudentResponse], error)
	AddSubject(context.Context, *connect.Request[api.AddSubjectRequest]) (*connect.Response[api.AddSubjectResponse], error)
	PostGrade(context.Context, *connect.Request[api.PostGradeRequest]) (*connect.Response[api.PostGradeResponse], error)
	UploadDocument(context.Context, *connect.Request[api.UploadDocumentRequest]) (*connect.Response[api.UploadDocumentResponse], error)
	ReviewDocument(context.Context, *connect.Request[api.ReviewDocumentRequest]) (*connect.Response[api.ReviewDocumentResponse], error)
}

// NewStudentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewStudentServiceHandler(svc StudentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	listStudentsHandler := connect.NewUnaryHandler(StudentServiceListStudentsProcedure, svc.ListStudents, opts...)
	getStudentHandler := connect.NewUnaryHandler(StudentServiceGetStudentProcedure, svc.GetStudent, opts...)
	createStudentHandler := connect.NewUnaryHandler(StudentServiceCreateStudentProcedure, svc.CreateStudent, opts...)
	updateStudentHandler := connect.NewUnaryHandler(StudentServiceUpdateStudentProcedure, svc.UpdateStudent, opts...)
	addSubjectHandler := connect.NewUnaryHandler(StudentServiceAddSubjectProcedure, svc.AddSubject, opts...)
	postGradeHandler := connect.NewUnaryHandler(StudentServicePostGradeProcedure, svc.PostGrade, opts...)
	uploadDocumentHandler := connect.NewUnaryHandler(StudentServiceUploadDocumentProcedure, svc.UploadDocument, opts...)
	reviewDocumentHandler := connect.NewUnaryHandler(StudentServiceReviewDocumentProcedure, svc.ReviewDocument, opts...)
	return "/portal.v1.StudentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case StudentServiceListStudentsProcedure:
			listStudentsHandler.ServeHTTP(w, r)
		case StudentServiceGetStudentProcedure:
			getStudentHandler.ServeHTTP(w, r)
		case StudentServiceCreateStudentProcedure:
			createStudentHandler.ServeHTTP(w, r)
		case StudentServiceUpdateStudentProcedure:
			updateStudentHandler.ServeHTTP(w, r)
		case StudentServiceAddSubjectProcedure:
			addSubjectHandler.ServeHTTP(w, r)
		case StudentServicePostGradeProcedure:
			postGradeHandler.ServeHTTP(w, r)
		case StudentServiceUploadDocumentProcedure:
			uploadDocumentHandler.ServeHTTP(w, r)
		case StudentServiceReviewDocumentProcedure:
			reviewDocumentHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// BillingServiceClient is a client for the portal.v1.BillingService service.
type BillingServiceClient interface {
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	RequestVoid(context.Context, *connect.Request[api.RequestVoidRequest]) (*connect.Response[api.RequestVoidResponse], error)
	ApproveVoid(context.Context, *connect.Request[api.ApproveVoidRequest]) (*connect.Response[api.ApproveVoidResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	GetAssessment(context.Context, *connect.Request[api.GetAssessmentRequest]) (*connect.Response[api.GetAssessmentResponse], error)
	ListTransactionLogs(context.Context, *connect.Request[api.ListTransactionLogsRequest]) (*connect.Response[api.ListTransactionLogsResponse], error)
	ListVoidRequests(context.Context, *connect.Request[api.ListVoidRequestsRequest]) (*connect.Response[api.ListVoidRequestsResponse], error)
	AnalyzeAccount(context.Context, *connect.Request[api.AnalyzeAccountRequest]) (*connect.Response[api.AnalyzeAccountResponse], error)
}

// NewBillingServiceClient constructs a client for the portal.v1.BillingService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewBillingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillingServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &billingServiceClient{
		addTransaction:      connect.NewClient[api.AddTransactionRequest, api.AddTransactionResponse](httpClient, baseURL+BillingServiceAddTransactionProcedure, opts...),
		requestVoid:         connect.NewClient[api.RequestVoidRequest, api.RequestVoidResponse](httpClient, baseURL+BillingServiceRequestVoidProcedure, opts...),
		approveVoid:         connect.NewClient[api.ApproveVoidRequest, api.ApproveVoidResponse](httpClient, baseURL+BillingServiceApproveVoidProcedure, opts...),
		getLedger:           connect.NewClient[api.GetLedgerRequest, api.GetLedgerResponse](httpClient, baseURL+BillingServiceGetLedgerProcedure, opts...),
		getAssessment:       connect.NewClient[api.GetAssessmentRequest, api.GetAssessmentResponse](httpClient, baseURL+BillingServiceGetAssessmentProcedure, opts...),
		listTransactionLogs: connect.NewClient[api.ListTransactionLogsRequest, api.ListTransactionLogsResponse](httpClient, baseURL+BillingServiceListTransactionLogsProcedure, opts...),
		listVoidRequests:    connect.NewClient[api.ListVoidRequestsRequest, api.ListVoidRequestsResponse](httpClient, baseURL+BillingServiceListVoidRequestsProcedure, opts...),
		analyzeAccount:      connect.NewClient[api.AnalyzeAccountRequest, api.AnalyzeAccountResponse](httpClient, baseURL+BillingServiceAnalyzeAccountProcedure, opts...),
	}
}

type billingServiceClient struct {
	addTransaction      *connect.Client[api.AddTransactionRequest, api.AddTransactionResponse]
	requestVoid         *connect.Client[api.RequestVoidRequest, api.RequestVoidResponse]
	approveVoid         *connect.Client[api.ApproveVoidRequest, api.ApproveVoidResponse]
	getLedger           *connect.Client[api.GetLedgerRequest, api.GetLedgerResponse]
	getAssessment       *connect.Client[api.GetAssessmentRequest, api.GetAssessmentResponse]
	listTransactionLogs *connect.Client[api.ListTransactionLogsRequest, api.ListTransactionLogsResponse]
	listVoidRequests    *connect.Client[api.ListVoidRequestsRequest, api.ListVoidRequestsResponse]
	analyzeAccount      *connect.Client[api.AnalyzeAccountRequest, api.AnalyzeAccountResponse]
}

func (c *billingServiceClient) AddTransaction(ctx context.Context, req *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error) {
	return c.addTransaction.CallUnary(ctx, req)
}

func (c *billingServiceClient) RequestVoid(ctx context.Context, req *connect.Request[api.RequestVoidRequest]) (*connect.Response[api.RequestVoidResponse], error) {
	return c.requestVoid.CallUnary(ctx, req)
}

func (c *billingServiceClient) ApproveVoid(ctx context.Context, req *connect.Request[api.ApproveVoidRequest]) (*connect.Response[api.ApproveVoidResponse], error) {
	return c.approveVoid.CallUnary(ctx, req)
}

func (c *billingServiceClient) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *billingServiceClient) GetAssessment(ctx context.Context, req *connect.Request[api.GetAssessmentRequest]) (*connect.Response[api.GetAssessmentResponse], error) {
	return c.getAssessment.CallUnary(ctx, req)
}

func (c *billingServiceClient) ListTransactionLogs(ctx context.Context, req *connect.Request[api.ListTransactionLogsRequest]) (*connect.Response[api.ListTransactionLogsResponse], error) {
	return c.listTransactionLogs.CallUnary(ctx, req)
}

func (c *billingServiceClient) ListVoidRequests(ctx context.Context, req *connect.Request[api.ListVoidRequestsRequest]) (*connect.Response[api.ListVoidRequestsResponse], error) {
	return c.listVoidRequests.CallUnary(ctx, req)
}

func (c *billingServiceClient) AnalyzeAccount(ctx context.Context, req *connect.Request[api.AnalyzeAccountRequest]) (*connect.Response[api.AnalyzeAccountResponse], error) {
	return c.analyzeAccount.CallUnary(ctx, req)
}

// BillingServiceHandler is an implementation of the portal.v1.BillingService service.
// BillingService manages student ledgers and the void workflow.
type BillingServiceHandler interface {
	AddTransaction(context.Context, *connect.Request[api.AddTransactionRequest]) (*connect.Response[api.AddTransactionResponse], error)
	RequestVoid(context.Context, *connect.Request[api.RequestVoidRequest]) (*connect.Response[api.RequestVoidResponse], error)
	ApproveVoid(context.Context, *connect.Request[api.ApproveVoidRequest]) (*connect.Response[api.ApproveVoidResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	GetAssessment(context.Context, *connect.Request[api.GetAssessmentRequest]) (*connect.Response[api.GetAssessmentResponse], error)
	ListTransactionLogs(context.Context, *connect.Request[api.ListTransactionLogsRequest]) (*connect.Response[api.ListTransactionLogsResponse], error)
	ListVoidRequests(context.Context, *connect.Request[api.ListVoidRequestsRequest]) (*connect.Response[api.ListVoidRequestsResponse], error)
	AnalyzeAccount(context.Context, *connect.Request[api.AnalyzeAccountRequest]) (*connect.Response[api.AnalyzeAccountResponse], error)
}

// NewBillingServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewBillingServiceHandler(svc BillingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	addTransactionHandler := connect.NewUnaryHandler(BillingServiceAddTransactionProcedure, svc.AddTransaction, opts...)
	requestVoidHandler := connect.NewUnaryHandler(BillingServiceRequestVoidProcedure, svc.RequestVoid, opts...)
	approveVoidHandler := connect.NewUnaryHandler(BillingServiceApproveVoidProcedure, svc.ApproveVoid, opts...)
	getLedgerHandler := connect.NewUnaryHandler(BillingServiceGetLedgerProcedure, svc.GetLedger, opts...)
	getAssessmentHandler := connect.NewUnaryHandler(BillingServiceGetAssessmentProcedure, svc.GetAssessment, opts...)
	listTransactionLogsHandler := connect.NewUnaryHandler(BillingServiceListTransactionLogsProcedure, svc.ListTransactionLogs, opts...)
	listVoidRequestsHandler := connect.NewUnaryHandler(BillingServiceListVoidRequestsProcedure, svc.ListVoidRequests, opts...)
	analyzeAccountHandler := connect.NewUnaryHandler(BillingServiceAnalyzeAccountProcedure, svc.AnalyzeAccount, opts...)
	return "/portal.v1.BillingService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillingServiceAddTransactionProcedure:
			addTransactionHandler.ServeHTTP(w, r)
		case BillingServiceRequestVoidProcedure:
			requestVoidHandler.ServeHTTP(w, r)
		case BillingServiceApproveVoidProcedure:
			approveVoidHandler.ServeHTTP(w, r)
		case BillingServiceGetLedgerProcedure:
			getLedgerHandler.ServeHTTP(w, r)
		case BillingServiceGetAssessmentProcedure:
			getAssessmentHandler.ServeHTTP(w, r)
		case BillingServiceListTransactionLogsProcedure:
			listTransactionLogsHandler.ServeHTTP(w, r)
		case BillingServiceListVoidRequestsProcedure:
			listVoidRequestsHandler.ServeHTTP(w, r)
		case BillingServiceAnalyzeAccountProcedure:
			analyzeAccountHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AdminServiceClient is a client for the portal.v1.AdminService service.
type AdminServiceClient interface {
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	UpdateUser(context.Context, *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UpdateUserResponse], error)
	ListCourses(context.Context, *connect.Request[api.ListCoursesRequest]) (*connect.Response[api.ListCoursesResponse], error)
	SaveCourse(context.Context, *connect.Request[api.SaveCourseRequest]) (*connect.Response[api.SaveCourseResponse], error)
	GetSystemConfig(context.Context, *connect.Request[api.GetSystemConfigRequest]) (*connect.Response[api.GetSystemConfigResponse], error)
	UpdateSystemConfig(context.Context, *connect.Request[api.UpdateSystemConfigRequest]) (*connect.Response[api.UpdateSystemConfigResponse], error)
	ListPasswordRequests(context.Context, *connect.Request[api.ListPasswordRequestsRequest]) (*connect.Response[api.ListPasswordRequestsResponse], error)
	ResolvePasswordRequest(context.Context, *connect.Request[api.ResolvePasswordRequestRequest]) (*connect.Response[api.ResolvePasswordRequestResponse], error)
}

// NewAdminServiceClient constructs a client for the portal.v1.AdminService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewAdminServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AdminServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &adminServiceClient{
		listUsers:              connect.NewClient[api.ListUsersRequest, api.ListUsersResponse](httpClient, baseURL+AdminServiceListUsersProcedure, opts...),
		createUser:             connect.NewClient[api.CreateUserRequest, api.CreateUserResponse](httpClient, baseURL+AdminServiceCreateUserProcedure, opts...),
		updateUser:             connect.NewClient[api.UpdateUserRequest, api.UpdateUserResponse](httpClient, baseURL+AdminServiceUpdateUserProcedure, opts...),
		listCourses:            connect.NewClient[api.ListCoursesRequest, api.ListCoursesResponse](httpClient, baseURL+AdminServiceListCoursesProcedure, opts...),
		saveCourse:             connect.NewClient[api.SaveCourseRequest, api.SaveCourseResponse](httpClient, baseURL+AdminServiceSaveCourseProcedure, opts...),
		getSystemConfig:        connect.NewClient[api.GetSystemConfigRequest, api.GetSystemConfigResponse](httpClient, baseURL+AdminServiceGetSystemConfigProcedure, opts...),
		updateSystemConfig:     connect.NewClient[api.UpdateSystemConfigRequest, api.UpdateSystemConfigResponse](httpClient, baseURL+AdminServiceUpdateSystemConfigProcedure, opts...),
		listPasswordRequests:   connect.NewClient[api.ListPasswordRequestsRequest, api.ListPasswordRequestsResponse](httpClient, baseURL+AdminServiceListPasswordRequestsProcedure, opts...),
		resolvePasswordRequest: connect.NewClient[api.ResolvePasswordRequestRequest, api.ResolvePasswordRequestResponse](httpClient, baseURL+AdminServiceResolvePasswordRequestProcedure, opts...),
	}
}

type adminServiceClient struct {
	listUsers              *connect.Client[api.ListUsersRequest, api.ListUsersResponse]
	createUser             *connect.Client[api.CreateUserRequest, api.CreateUserResponse]
	updateUser             *connect.Client[api.UpdateUserRequest, api.UpdateUserResponse]
	listCourses            *connect.Client[api.ListCoursesRequest, api.ListCoursesResponse]
	saveCourse             *connect.Client[api.SaveCourseRequest, api.SaveCourseResponse]
	getSystemConfig        *connect.Client[api.GetSystemConfigRequest, api.GetSystemConfigResponse]
	updateSystemConfig     *connect.Client[api.UpdateSystemConfigRequest, api.UpdateSystemConfigResponse]
	listPasswordRequests   *connect.Client[api.ListPasswordRequestsRequest, api.ListPasswordRequestsResponse]
	resolvePasswordRequest *connect.Client[api.ResolvePasswordRequestRequest, api.ResolvePasswordRequestResponse]
}

func (c *adminServiceClient) ListUsers(ctx context.Context, req *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *adminServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *adminServiceClient) UpdateUser(ctx context.Context, req *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UpdateUserResponse], error) {
	return c.updateUser.CallUnary(ctx, req)
}

func (c *adminServiceClient) ListCourses(ctx context.Context, req *connect.Request[api.ListCoursesRequest]) (*connect.Response[api.ListCoursesResponse], error) {
	return c.listCourses.CallUnary(ctx, req)
}

func (c *adminServiceClient) SaveCourse(ctx context.Context, req *connect.Request[api.SaveCourseRequest]) (*connect.Response[api.SaveCourseResponse], error) {
	return c.saveCourse.CallUnary(ctx, req)
}

func (c *adminServiceClient) GetSystemConfig(ctx context.Context, req *connect.Request[api.GetSystemConfigRequest]) (*connect.Response[api.GetSystemConfigResponse], error) {
	return c.getSystemConfig.CallUnary(ctx, req)
}

func (c *adminServiceClient) UpdateSystemConfig(ctx context.Context, req *connect.Request[api.UpdateSystemConfigRequest]) (*connect.Response[api.UpdateSystemConfigResponse], error) {
	return c.updateSystemConfig.CallUnary(ctx, req)
}

func (c *adminServiceClient) ListPasswordRequests(ctx context.Context, req *connect.Request[api.ListPasswordRequestsRequest]) (*connect.Response[api.ListPasswordRequestsResponse], error) {
	return c.listPasswordRequests.CallUnary(ctx, req)
}

func (c *adminServiceClient) ResolvePasswordRequest(ctx context.Context, req *connect.Request[api.ResolvePasswordRequestRequest]) (*connect.Response[api.ResolvePasswordRequestResponse], error) {
	return c.resolvePasswordRequest.CallUnary(ctx, req)
}

// AdminServiceHandler is an implementation of the portal.v1.AdminService service.
// AdminService manages staff, courses, system settings and password resets.
type AdminServiceHandler interface {
	ListUsers(context.Context, *connect.Request[api.ListUsersRequest]) (*connect.Response[api.ListUsersResponse], error)
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	UpdateUser(context.Context, *connect.Request[api.UpdateUserRequest]) (*connect.Response[api.UpdateUserResponse], error)
	ListCourses(context.Context, *connect.Request[api.ListCoursesRequest]) (*connect.Response[api.ListCoursesResponse], error)
	SaveCourse(context.Context, *connect.Request[api.SaveCourseRequest]) (*connect.Response[api.SaveCourseResponse], error)
	GetSystemConfig(context.Context, *connect.Request[api.GetSystemConfigRequest]) (*connect.Response[api.GetSystemConfigResponse], error)
	UpdateSystemConfig(context.Context, *connect.Request[api.UpdateSystemConfigRequest]) (*connect.Response[api.UpdateSystemConfigResponse], error)
	ListPasswordRequests(context.Context, *connect.Request[api.ListPasswordRequestsRequest]) (*connect.Response[api.ListPasswordRequestsResponse], error)
	ResolvePasswordRequest(context.Context, *connect.Request[api.ResolvePasswordRequestRequest]) (*connect.Response[api.ResolvePasswordRequestResponse], error)
}

// NewAdminServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAdminServiceHandler(svc AdminServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	listUsersHandler := connect.NewUnaryHandler(AdminServiceListUsersProcedure, svc.ListUsers, opts...)
	createUserHandler := connect.NewUnaryHandler(AdminServiceCreateUserProcedure, svc.CreateUser, opts...)
	updateUserHandler := connect.NewUnaryHandler(AdminServiceUpdateUserProcedure, svc.UpdateUser, opts...)
	listCoursesHandler := connect.NewUnaryHandler(AdminServiceListCoursesProcedure, svc.ListCourses, opts...)
	saveCourseHandler := connect.NewUnaryHandler(AdminServiceSaveCourseProcedure, svc.SaveCourse, opts...)
	getSystemConfigHandler := connect.NewUnaryHandler(AdminServiceGetSystemConfigProcedure, svc.GetSystemConfig, opts...)
	updateSystemConfigHandler := connect.NewUnaryHandler(AdminServiceUpdateSystemConfigProcedure, svc.UpdateSystemConfig, opts...)
	listPasswordRequestsHandler := connect.NewUnaryHandler(AdminServiceListPasswordRequestsProcedure, svc.ListPasswordRequests, opts...)
	resolvePasswordRequestHandler := connect.NewUnaryHandler(AdminServiceResolvePasswordRequestProcedure, svc.ResolvePasswordRequest, opts...)
	return "/portal.v1.AdminService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AdminServiceListUsersProcedure:
			listUsersHandler.ServeHTTP(w, r)
		case AdminServiceCreateUserProcedure:
			createUserHandler.ServeHTTP(w, r)
		case AdminServiceUpdateUserProcedure:
			updateUserHandler.ServeHTTP(w, r)
		case AdminServiceListCoursesProcedure:
			listCoursesHandler.ServeHTTP(w, r)
		case AdminServiceSaveCourseProcedure:
			saveCourseHandler.ServeHTTP(w, r)
		case AdminServiceGetSystemConfigProcedure:
			getSystemConfigHandler.ServeHTTP(w, r)
		case AdminServiceUpdateSystemConfigProcedure:
			updateSystemConfigHandler.ServeHTTP(w, r)
		case AdminServiceListPasswordRequestsProcedure:
			listPasswordRequestsHandler.ServeHTTP(w, r)
		case AdminServiceResolvePasswordRequestProcedure:
			resolvePasswordRequestHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// DashboardServiceClient is a client for the portal.v1.DashboardService service.
type DashboardServiceClient interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewDashboardServiceClient constructs a client for the portal.v1.DashboardService service.
// Requests are sent as JSON. The URL should be the base URL of the server,
// e.g. http://localhost:8080.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &dashboardServiceClient{
		getDashboard: connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+DashboardServiceGetDashboardProcedure, opts...),
	}
}

type dashboardServiceClient struct {
	getDashboard *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

// DashboardServiceHandler is an implementation of the portal.v1.DashboardService service.
// DashboardService returns the caller's dashboard figures.
type DashboardServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
	getDashboardHandler := connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...)
	return "/portal.v1.DashboardService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case DashboardServiceGetDashboardProcedure:
			getDashboardHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
