package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/cosca/portal/internal/models"
	"github.com/cosca/portal/internal/storage"
	"github.com/cosca/portal/internal/views"
	"github.com/cosca/portal/pkg/api"
)

// NavigationService tells the client which screen and sidebar to render.
type NavigationService struct {
	store storage.StudentStore
}

func NewNavigationService(store storage.StudentStore) *NavigationService {
	return &NavigationService{store: store}
}

// Navigate resolves the requested page for the caller. Calls without a
// session land on the login view.
func (s *NavigationService) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error) {
	a, err := currentActor(ctx)
	if err != nil {
		return connect.NewResponse(&api.NavigateResponse{View: string(views.Login), Items: []api.NavItem{}}), nil
	}

	session := &views.Session{Role: a.Role, PasswordChanged: true}
	if a.Role == models.RoleStudent {
		st, err := s.store.GetStudent(ctx, a.ID)
		if err != nil {
			return nil, toConnectError(err)
		}
		session.PasswordChanged = st.IsPasswordChanged
	}

	view := views.Resolve(session, req.Msg.Page)
	items := []api.NavItem{}
	if view != views.ChangePassword && view != views.AccessDenied {
		items = toAPINavItems(views.NavItems(a.Role))
	}
	return connect.NewResponse(&api.NavigateResponse{View: string(view), Items: items}), nil
}
