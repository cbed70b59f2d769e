package bootstrap

import (
	"errors"
	"testing"

	"github.com/ArturCreativeLab/studio-api/config"
	"github.com/ArturCreativeLab/studio-api/internal/adapters/disabledauth"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

func TestBuildServicesWithoutDatabase(t *testing.T) {
	container := BuildServices(BuildServicesConfig{
		Config: &config.AppConfig{},
		DB:     nil,
		Logger: testLogger(),
	})

	if container.Auth == nil {
		t.Fatal("Auth = nil, want degraded auth service")
	}
	if container.Profiles != nil {
		t.Fatalf("Profiles = %v, want nil without a database", container.Profiles)
	}
	if container.Projects != nil || container.Offerings != nil || container.Resources != nil ||
		container.Research != nil || container.Briefings != nil || container.Dashboard != nil {
		t.Fatal("content services should be nil without a database")
	}

	// Guest access still works; real sign-in methods are disabled.
	ctx := t.Context()
	if _, err := container.Auth.LoginAsGuest(ctx); err != nil {
		t.Fatalf("LoginAsGuest() error = %v", err)
	}
	if _, err := container.Auth.BeginLogin(ctx, "/"); !errors.Is(err, disabledauth.ErrProviderDisabled) {
		t.Fatalf("BeginLogin() error = %v, want ErrProviderDisabled", err)
	}
	if _, err := container.Auth.SignUp(ctx, service.SignUpInput{
		Email:    "someone@example.com",
		Password: "password123",
		FullName: "Someone",
	}); !errors.Is(err, service.ErrPasswordAuthUnavailable) {
		t.Fatalf("SignUp() error = %v, want ErrPasswordAuthUnavailable", err)
	}
}
