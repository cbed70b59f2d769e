package auth

import (
	"testing"
	"time"
)

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(RoleAdmin) {
		t.Fatalf("expected admin")
	}
	if IsAdmin(RoleUser) || IsAdmin(RoleGuest) || IsAdmin(Role("")) {
		t.Fatalf("only the admin role is admin")
	}
}

func TestParseRole_ClampsToUser(t *testing.T) {
	if got := ParseRole("admin"); got != RoleAdmin {
		t.Fatalf("expected admin, got %q", got)
	}
	for _, s := range []string{"user", "guest", "Admin", "ADMIN", "superadmin", ""} {
		if got := ParseRole(s); got != RoleUser {
			t.Fatalf("ParseRole(%q) = %q, expected user", s, got)
		}
	}
}

func TestSession_IsGuest(t *testing.T) {
	s := Session{Role: RoleGuest}
	if !s.IsGuest() {
		t.Fatalf("expected guest")
	}
	if (Session{Role: RoleUser}).IsGuest() {
		t.Fatalf("did not expect guest")
	}
}

func TestIdentity_SimpleFields(t *testing.T) {
	id := Identity{UserID: "u", Email: "e", ExpiresAt: time.Now().Add(time.Hour)}
	if id.UserID != "u" || id.Email != "e" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAvatarURL_DefaultSeed(t *testing.T) {
	if got := AvatarURL(""); got != "https://api.dicebear.com/8.x/initials/svg?seed=User" {
		t.Fatalf("unexpected avatar URL: %s", got)
	}
}
