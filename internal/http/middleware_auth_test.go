package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
)

func TestRequireAuth_Success(t *testing.T) {
	mockSvc := &fakeAuthService{}
	middleware := RequireAuth(mockSvc)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetSessionFromContext(r.Context())
		assert.NotNil(t, session)
		assert.Equal(t, "test-session-id", session.ID)
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware(testHandler)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session-id"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	handler := RequireAuth(&fakeAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication_required")
}

func TestRequireAuth_InvalidSession(t *testing.T) {
	mockSvc := &fakeAuthService{
		getSessionFunc: func(_ context.Context, _ string) (*domainauth.Session, error) {
			return nil, errors.New("session expired")
		},
	}
	handler := RequireAuth(mockSvc)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "stale"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		sessionRole  domainauth.Role
		requiredRole domainauth.Role
		wantStatus   int
	}{
		{"admin passes admin gate", domainauth.RoleAdmin, domainauth.RoleAdmin, http.StatusOK},
		{"user fails admin gate", domainauth.RoleUser, domainauth.RoleAdmin, http.StatusForbidden},
		{"guest fails admin gate", domainauth.RoleGuest, domainauth.RoleAdmin, http.StatusForbidden},
		{"unknown role fails admin gate", domainauth.Role("superuser"), domainauth.RoleAdmin, http.StatusForbidden},
		{"guest fails user gate", domainauth.RoleGuest, domainauth.RoleUser, http.StatusForbidden},
		{"user passes user gate", domainauth.RoleUser, domainauth.RoleUser, http.StatusOK},
		{"admin passes user gate", domainauth.RoleAdmin, domainauth.RoleUser, http.StatusOK},
		{"guest passes guest gate", domainauth.RoleGuest, domainauth.RoleGuest, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(authServiceForRole(tt.sessionRole), tt.requiredRole)(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

			req := httptest.NewRequest(http.MethodGet, "/gated", nil)
			req.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole_Unauthenticated(t *testing.T) {
	handler := RequireRole(&fakeAuthService{}, domainauth.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Fatal("handler should not be reached")
		}))

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		handler := OptionalAuth(&fakeAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetUserSessionFromContext(r.Context())
			assert.True(t, ok)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "s"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without session", func(t *testing.T) {
		handler := OptionalAuth(&fakeAuthService{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetUserSessionFromContext(r.Context())
			assert.False(t, ok)
			assert.True(t, IsGuestUser(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
