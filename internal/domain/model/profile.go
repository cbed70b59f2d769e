//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	"github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// Profile is the durable account record backing a signed-in user.
// Role here is the source of truth; session roles are snapshots of it.
type Profile struct {
	ID             string    `json:"id"               db:"id"`
	Email          string    `json:"email"            db:"email"`
	FullName       string    `json:"full_name"        db:"full_name"`
	Picture        string    `json:"picture"          db:"picture"`
	Role           auth.Role `json:"role"             db:"role"`
	Orcid          *string   `json:"orcid,omitempty"  db:"orcid"`
	EmailConfirmed bool      `json:"email_confirmed"  db:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"       db:"updated_at"`
}

// UpsertProfileRequest carries the display attributes captured at login.
// Role is intentionally absent: logins never change roles.
type UpsertProfileRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Picture  string `json:"picture"`
}

// Validate validates UpsertProfileRequest.
func (r *UpsertProfileRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return apperrors.ValidationField("id", "id is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	return nil
}

// SetRoleRequest is the direct role-change mutation payload.
// Only admin and user are assignable; guest is a local-only role.
type SetRoleRequest struct {
	TargetUserID string    `json:"targetUserId"`
	NewRole      auth.Role `json:"newRole"`
}

// Validate validates SetRoleRequest.
func (r *SetRoleRequest) Validate() error {
	if strings.TrimSpace(r.TargetUserID) == "" {
		return apperrors.ValidationField("targetUserId", "targetUserId is required")
	}
	if r.NewRole != auth.RoleAdmin && r.NewRole != auth.RoleUser {
		return apperrors.ValidationField("newRole", "newRole must be admin or user")
	}
	return nil
}

// UpdateProfileRequest is the profile-edit mutation payload (orcid only).
type UpdateProfileRequest struct {
	TargetUserID string `json:"targetUserId"`
	Orcid        string `json:"orcid"`
}

// Validate validates UpdateProfileRequest.
func (r *UpdateProfileRequest) Validate() error {
	if strings.TrimSpace(r.TargetUserID) == "" {
		return apperrors.ValidationField("targetUserId", "targetUserId is required")
	}
	return nil
}
