package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/auth"
	"github.com/cosca/portal/internal/enrollment"
	"github.com/cosca/portal/internal/ledger"
	"github.com/cosca/portal/internal/observability"
	"github.com/cosca/portal/internal/storage"
)

// toConnectError maps domain errors to Connect codes. Errors that are already
// *connect.Error pass through. Anything unrecognized is reported to Sentry and
// returned as Internal.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists),
		errors.Is(err, enrollment.ErrAlreadyEnrolled):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, ledger.ErrInvalidTransition),
		errors.Is(err, storage.ErrLedgerRewrite):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ledger.ErrUnknownType),
		errors.Is(err, ledger.ErrZeroAmount),
		errors.Is(err, enrollment.ErrSubjectNotInCurriculum),
		errors.Is(err, auth.ErrWeakPassword):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		observability.CaptureErr(err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
