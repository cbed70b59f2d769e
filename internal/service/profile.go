package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/ports"
)

// ErrPartialUpdate signals that the profile write succeeded but the follow-up
// admin grant failed. Callers must surface this distinctly from full success
// and full failure; the profile write is NOT rolled back.
var ErrPartialUpdate = errors.New("profile updated but role grant failed")

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Profiles core.ProfileRepository
	Verifier ports.Verifier
	// AdminOrcid is the identifier that triggers admin elevation during a
	// profile edit. Empty disables elevation entirely.
	AdminOrcid string
	Logger     *slog.Logger // optional
}

// ProfileService manages profile listings, role changes, and researcher
// identity verification.
type ProfileService struct {
	profiles   core.ProfileRepository
	verifier   ports.Verifier
	adminOrcid string
	logger     *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	if opts.Profiles == nil {
		panic("ProfileRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		profiles:   opts.Profiles,
		verifier:   opts.Verifier,
		adminOrcid: opts.AdminOrcid,
		logger:     logger,
	}
}

// List returns all profiles ordered by creation time.
func (s *ProfileService) List(ctx context.Context) ([]*model.Profile, error) {
	return s.profiles.List(ctx)
}

// GetByID returns a single profile.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, apperrors.ValidationField("id", "profile ID is required")
	}
	return s.profiles.GetByID(ctx, id)
}

// SetRole changes a user's role. Only admin and user are assignable; the
// guest role is session-local and never persisted. The change becomes
// visible in new sessions; existing session snapshots are not touched.
func (s *ProfileService) SetRole(ctx context.Context, targetUserID string, newRole domainauth.Role) error {
	if targetUserID == "" {
		return apperrors.ValidationField("user_id", "target user ID is required")
	}
	if newRole != domainauth.RoleAdmin && newRole != domainauth.RoleUser {
		return apperrors.ValidationField("role", "role must be admin or user")
	}

	err := s.profiles.SetRole(ctx, core.SetRoleParams{
		TargetUserID: targetUserID,
		NewRole:      newRole,
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "role changed", "target_user_id", targetUserID, "new_role", newRole)
	return nil
}

// UpdateProfile persists a user's ORCID iD and, when it matches the
// configured admin identifier, additionally grants the admin role. The two
// writes are deliberately separate: a role-grant failure after a successful
// profile write returns ErrPartialUpdate and leaves the profile write intact.
func (s *ProfileService) UpdateProfile(ctx context.Context, targetUserID, orcid string) error {
	if targetUserID == "" {
		return apperrors.ValidationField("user_id", "target user ID is required")
	}

	err := s.profiles.SetOrcid(ctx, core.SetOrcidParams{
		TargetUserID: targetUserID,
		Orcid:        orcid,
	})
	if err != nil {
		return err
	}

	if s.adminOrcid == "" || orcid != s.adminOrcid {
		return nil
	}

	roleErr := s.profiles.SetRole(ctx, core.SetRoleParams{
		TargetUserID: targetUserID,
		NewRole:      domainauth.RoleAdmin,
	})
	if roleErr != nil {
		s.logger.ErrorContext(ctx, "admin grant failed after profile update",
			"target_user_id", targetUserID, "err", roleErr)
		return apperrors.Partial("profile updated but role grant failed",
			errors.Join(ErrPartialUpdate, roleErr))
	}

	s.logger.InfoContext(ctx, "admin role granted via profile update", "target_user_id", targetUserID)
	return nil
}

// VerifyResearcher resolves an ORCID iD to a researcher name. Verification
// outcomes are ephemeral and never persisted.
func (s *ProfileService) VerifyResearcher(ctx context.Context, orcid string) ports.VerificationResult {
	if s.verifier == nil {
		return ports.VerificationResult{Err: "Verification is not available."}
	}
	return s.verifier.Verify(ctx, orcid)
}
