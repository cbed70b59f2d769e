package httpx

import (
	"context"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
)

// sessionKey keys the resolved session in a request context. Unexported so
// only this package can attach or read it.
type sessionKey struct{}

// SetSessionInContext attaches a resolved session to ctx. A nil session
// leaves ctx untouched.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the session attached by RequireAuth,
// RequireRole, or OptionalAuth, with ok reporting presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext is the nil-on-absence variant for call sites that run
// strictly behind RequireAuth.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// IsGuestUser treats an absent session the same as a guest session: both get
// read-only access.
func IsGuestUser(ctx context.Context) bool {
	s, ok := GetUserSessionFromContext(ctx)
	if !ok {
		return true
	}
	return s.IsGuest()
}
