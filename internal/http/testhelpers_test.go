package httpx

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// fakeAuthService is a configurable test double for AuthServiceInterface.
// Unset hooks fall back to simple deterministic behavior.
type fakeAuthService struct {
	beginLoginFunc func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	completeFunc   func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	guestFunc      func(ctx context.Context) (*service.CompleteLoginResult, error)
	signUpFunc     func(ctx context.Context, input service.SignUpInput) (*model.Profile, error)
	signInFunc     func(ctx context.Context, email, password string) (*service.CompleteLoginResult, error)
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc     func(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*fakeAuthService)(nil)

func (f *fakeAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if f.beginLoginFunc != nil {
		return f.beginLoginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://idp.example.com/authorize",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (f *fakeAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if f.completeFunc != nil {
		return f.completeFunc(ctx, input)
	}
	return &service.CompleteLoginResult{Session: testSession("sess-complete", domainauth.RoleUser)}, nil
}

func (f *fakeAuthService) LoginAsGuest(ctx context.Context) (*service.CompleteLoginResult, error) {
	if f.guestFunc != nil {
		return f.guestFunc(ctx)
	}
	sess := testSession("sess-guest", domainauth.RoleGuest)
	sess.UserID = domainauth.GuestUserID
	sess.Name = domainauth.GuestName
	return &service.CompleteLoginResult{Session: sess}, nil
}

func (f *fakeAuthService) SignUp(ctx context.Context, input service.SignUpInput) (*model.Profile, error) {
	if f.signUpFunc != nil {
		return f.signUpFunc(ctx, input)
	}
	return nil, errors.New("not implemented")
}

func (f *fakeAuthService) SignInWithPassword(ctx context.Context, email, password string) (*service.CompleteLoginResult, error) {
	if f.signInFunc != nil {
		return f.signInFunc(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (f *fakeAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if f.getSessionFunc != nil {
		return f.getSessionFunc(ctx, sessionID)
	}
	sess := testSession(sessionID, domainauth.RoleUser)
	return &sess, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	if f.logoutFunc != nil {
		return f.logoutFunc(ctx, sessionID)
	}
	return nil
}

// testSession builds a valid session with the given ID and role.
func testSession(id string, role domainauth.Role) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "test-user",
		Name:      "Test User",
		Email:     "test@example.com",
		Picture:   "https://example.com/p.png",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// authServiceForRole returns a fakeAuthService whose every session carries the role.
func authServiceForRole(role domainauth.Role) *fakeAuthService {
	return &fakeAuthService{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			sess := testSession(sessionID, role)
			return &sess, nil
		},
	}
}
