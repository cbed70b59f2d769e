package bootstrap

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/disabledauth"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildAuthServiceDegradesWithoutRedis(t *testing.T) {
	svc := BuildAuthService(AuthBuildConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeMock,
			DevAuth: config.DevAuthConfig{
				UserID: "dev-user",
				Name:   "Dev User",
				Email:  "dev@example.com",
			},
		},
		RedisClient: nil,
		Logger:      testLogger(),
	})
	if svc == nil {
		t.Fatal("BuildAuthService() = nil, want degraded service")
	}

	// Sessions fall back to the in-memory store.
	ctx := t.Context()
	res, err := svc.LoginAsGuest(ctx)
	if err != nil {
		t.Fatalf("LoginAsGuest() error = %v", err)
	}
	got, err := svc.GetSession(ctx, res.Session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.UserID != domainauth.GuestUserID {
		t.Fatalf("GetSession() user = %q, want %q", got.UserID, domainauth.GuestUserID)
	}
}

func TestBuildAuthServiceDisablesSignInWithoutOAuthConfig(t *testing.T) {
	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "oauth mode with no client credentials",
			auth: config.AuthConfig{
				Mode: config.AuthModeOAuth,
				OAuth: config.OAuthConfig{
					RedirectURL: "https://app.example.com/auth/callback",
					Scope:       "openid",
				},
			},
		},
		{
			name: "unknown mode",
			auth: config.AuthConfig{Mode: config.AuthMode("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := BuildAuthService(AuthBuildConfig{
				Auth:   tt.auth,
				Logger: testLogger(),
			})
			if svc == nil {
				t.Fatal("BuildAuthService() = nil, want disabled service")
			}

			_, err := svc.BeginLogin(t.Context(), "/")
			if !errors.Is(err, disabledauth.ErrProviderDisabled) {
				t.Fatalf("BeginLogin() error = %v, want ErrProviderDisabled", err)
			}
		})
	}
}
