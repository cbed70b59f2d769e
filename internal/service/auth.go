package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/ports"
)

// AccountDeps groups the account-side repositories used by AuthService.
// Both are nil in degraded (guest-only) deployments.
type AccountDeps struct {
	Profiles    core.ProfileRepository
	Credentials core.CredentialRepository
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider        ports.AuthProvider
	Sessions        ports.SessionStore
	Accounts        AccountDeps
	SessionDuration time.Duration // default 8h when zero
	Logger          *slog.Logger  // optional
}

// AuthService orchestrates authentication flows by coordinating the provider,
// profile-backed role resolution, and session persistence.
type AuthService struct {
	provider        ports.AuthProvider
	sessions        ports.SessionStore
	profiles        core.ProfileRepository
	credentials     core.CredentialRepository
	sessionDuration time.Duration
	logger          *slog.Logger
}

var (
	errSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials is returned on any email/password mismatch.
	// It deliberately does not distinguish unknown accounts from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotConfirmed is returned when password sign-in is attempted
	// before the account's email has been confirmed.
	ErrEmailNotConfirmed = errors.New("email address not confirmed")

	// ErrPasswordAuthUnavailable is returned when no credential backend is configured.
	ErrPasswordAuthUnavailable = errors.New("password authentication is unavailable")
)

const minPasswordLen = 8

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		panic("AuthProvider is required")
	}
	if opts.Sessions == nil {
		panic("SessionStore is required")
	}
	dur := opts.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider:        opts.Provider,
		sessions:        opts.Sessions,
		profiles:        opts.Accounts.Profiles,
		credentials:     opts.Accounts.Credentials,
		sessionDuration: dur,
		logger:          logger,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	input := ports.BeginInput{RedirectURL: redirectURL}
	authURL, state, nonce, err := s.provider.Begin(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session
}

// CompleteLogin completes an authentication flow by exchanging the code for an
// identity, syncing the profile record, and persisting a session. The session
// role is read from the profile; when the profile lookup fails the login still
// succeeds with the default user role.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	exchangeInput := ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	}
	identity, err := s.provider.Exchange(ctx, exchangeInput)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = "User"
	}
	picture := identity.Picture
	if picture == "" {
		picture = domainauth.AvatarURL(name)
	}

	role := s.resolveRole(ctx, identity, name, picture)

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		Name:      name,
		Email:     identity.Email,
		Picture:   picture,
		Role:      role,
		ExpiresAt: identity.ExpiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// resolveRole syncs the durable profile and reads the role from it.
// Any failure degrades to the default user role rather than failing the login.
func (s *AuthService) resolveRole(
	ctx context.Context,
	identity domainauth.Identity,
	name, picture string,
) domainauth.Role {
	if s.profiles == nil {
		return domainauth.RoleUser
	}

	profile, err := s.profiles.Upsert(ctx, &model.UpsertProfileRequest{
		ID:       identity.UserID,
		Email:    identity.Email,
		FullName: name,
		Picture:  picture,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "profile sync failed, defaulting role",
			"user_id", identity.UserID, "err", err)
		return domainauth.RoleUser
	}
	return profile.Role
}

// LoginAsGuest creates a read-only guest session without touching any provider.
func (s *AuthService) LoginAsGuest(ctx context.Context) (*CompleteLoginResult, error) {
	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    domainauth.GuestUserID,
		Name:      domainauth.GuestName,
		Email:     domainauth.GuestEmail,
		Picture:   domainauth.AvatarURL("Guest"),
		Role:      domainauth.RoleGuest,
		ExpiresAt: time.Now().Add(s.sessionDuration),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save guest session: %w", err)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// SignUpInput groups parameters for password account creation.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// SignUp registers a password-backed account. The account stays unconfirmed
// until email confirmation, so no session is issued here.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*model.Profile, error) {
	if s.profiles == nil || s.credentials == nil {
		return nil, ErrPasswordAuthUnavailable
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if len(input.Password) < minPasswordLen {
		return nil, apperrors.ValidationField("password", fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		name = "User"
	}

	profile, err := s.profiles.Upsert(ctx, &model.UpsertProfileRequest{
		ID:       uuid.New().String(),
		Email:    email,
		FullName: name,
		Picture:  domainauth.AvatarURL(name),
	})
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if setErr := s.credentials.SetPassword(ctx, profile.ID, string(hash)); setErr != nil {
		return nil, fmt.Errorf("store credentials: %w", setErr)
	}

	return profile, nil
}

// SignInWithPassword authenticates against stored credentials and issues a session.
func (s *AuthService) SignInWithPassword(ctx context.Context, email, password string) (*CompleteLoginResult, error) {
	if s.profiles == nil || s.credentials == nil {
		return nil, ErrPasswordAuthUnavailable
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	userID, hash, confirmed, err := s.credentials.GetPasswordHash(ctx, email)
	if err != nil {
		s.logger.DebugContext(ctx, "credential lookup failed", "err", err)
		return nil, ErrInvalidCredentials
	}
	if compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	if !confirmed {
		return nil, ErrEmailNotConfirmed
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    profile.ID,
		Name:      profile.FullName,
		Email:     profile.Email,
		Picture:   profile.Picture,
		Role:      profile.Role,
		ExpiresAt: time.Now().Add(s.sessionDuration),
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// GetSession retrieves a session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	// Use UUID for session ID - it's URL-safe and has good entropy
	id := uuid.New()
	return id.String()
}
