package client

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrStoreNotInitialized is returned by login operations when no gateway has
// been configured.
var ErrStoreNotInitialized = errors.New("store is not initialized")

// Login authenticates a user against the gateway and redirects by role. When
// remote login fails it attempts to create the user, then retries.
type Login struct {
	Store   Store
	Session SessionStore
	Nav     *Navigation
	Logger  *zap.Logger
}

// HandleSubmitEmployee logs the employee in and navigates to the bills page.
func (l *Login) HandleSubmitEmployee(ctx context.Context, email, password string) error {
	user := &SessionUser{
		Type:     UserTypeEmployee,
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
		Status:   "connected",
	}
	return l.submit(ctx, user, RouteBills)
}

// HandleSubmitAdmin logs the administrator in and navigates to the dashboard.
func (l *Login) HandleSubmitAdmin(ctx context.Context, email, password string) error {
	user := &SessionUser{
		Type:     UserTypeAdmin,
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
		Status:   "connected",
	}
	return l.submit(ctx, user, RouteDashboard)
}

func (l *Login) submit(ctx context.Context, user *SessionUser, route string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	l.Session.SetItem(SessionKeyUser, string(raw))

	if err := l.login(ctx, user); err != nil {
		l.log().Warn("login failed, attempting to create user",
			zap.String("email", user.Email),
			zap.Error(err),
		)
		if err := l.createUser(ctx, user); err != nil {
			l.log().Error("user creation failed", zap.Error(err))
			return err
		}
	}

	l.Nav.Go(route)
	return nil
}

// CheckAuth navigates straight to the role's landing page when the session
// already holds a user and a token. Reports whether it navigated.
func (l *Login) CheckAuth() bool {
	raw := l.Session.GetItem(SessionKeyUser)
	if raw == "" {
		return false
	}
	var user SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return false
	}
	if l.Session.GetItem(SessionKeyJWT) == "" {
		return false
	}

	switch user.Type {
	case UserTypeEmployee:
		l.Nav.Go(RouteBills)
	case UserTypeAdmin:
		l.Nav.Go(RouteDashboard)
	default:
		return false
	}
	return true
}

func (l *Login) login(ctx context.Context, user *SessionUser) error {
	if l.Store == nil {
		return ErrStoreNotInitialized
	}
	resp, err := l.Store.Login(ctx, Credentials{Email: user.Email, Password: user.Password})
	if err != nil {
		return err
	}
	l.Session.SetItem(SessionKeyJWT, resp.JWT)
	return nil
}

// createUser registers the user with the gateway, deriving the display name
// from the email's local part, then logs in again.
func (l *Login) createUser(ctx context.Context, user *SessionUser) error {
	if l.Store == nil {
		return ErrStoreNotInitialized
	}

	name := user.Email
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	payload := &CreateUserPayload{
		Type:     user.Type,
		Name:     name,
		Email:    user.Email,
		Password: user.Password,
	}
	if err := l.Store.Users().Create(ctx, payload); err != nil {
		return err
	}
	l.log().Info("user created", zap.String("email", user.Email))
	return l.login(ctx, user)
}

func (l *Login) log() *zap.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return zap.NewNop()
}

// Logout clears the session and returns to the login page.
type Logout struct {
	Session SessionStore
	Nav     *Navigation
}

func (l *Logout) HandleClick() {
	l.Session.Clear()
	l.Nav.Go(RouteLogin)
}
