package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	"github.com/ArturCreativeLab/studio-api/internal/mocks"
	mockauth "github.com/ArturCreativeLab/studio-api/internal/mocks/auth"
	"github.com/ArturCreativeLab/studio-api/internal/ports"
)

func newTestAuthService(t *testing.T, profiles *mocks.MockProfileRepository) (*AuthService, *mockauth.MockAuthProvider, *mockauth.MemorySessionStore) {
	t.Helper()
	provider := mockauth.NewMockAuthProvider()
	sessions := mockauth.NewMemorySessionStore()
	opts := AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
	}
	if profiles != nil {
		opts.Accounts = AccountDeps{Profiles: profiles}
	}
	svc := NewAuthService(opts)
	return svc, provider, sessions
}

func TestAuthService_BeginLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t, nil)

	result, err := svc.BeginLogin(context.Background(), "https://app.example.com/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)
}

func TestAuthService_BeginLogin_EmptyRedirectURL(t *testing.T) {
	svc, _, _ := newTestAuthService(t, nil)

	_, err := svc.BeginLogin(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect URL")
}

func TestAuthService_CompleteLogin_RoleFromProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	svc, provider, sessions := newTestAuthService(t, profiles)

	profiles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.UpsertProfileRequest) (*model.Profile, error) {
			assert.Equal(t, provider.DefaultUser.UserID, req.ID)
			assert.Equal(t, provider.DefaultUser.Email, req.Email)
			return &model.Profile{
				ID:    req.ID,
				Email: req.Email,
				Role:  domainauth.RoleAdmin,
			}, nil
		})

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	assert.Equal(t, provider.DefaultUser.UserID, result.Session.UserID)
	assert.NotEmpty(t, result.Session.ID)

	stored, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, stored.Role)
}

func TestAuthService_CompleteLogin_ProfileSyncFailureStillSignsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	svc, _, _ := newTestAuthService(t, profiles)

	profiles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "state-1", Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)
}

func TestAuthService_CompleteLogin_NameAndPictureDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	svc, provider, _ := newTestAuthService(t, profiles)

	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{
			UserID:    "user-42",
			Email:     "user42@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	profiles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.UpsertProfileRequest) (*model.Profile, error) {
			assert.Equal(t, "User", req.FullName)
			assert.Equal(t, domainauth.AvatarURL("User"), req.Picture)
			return &model.Profile{ID: req.ID, Role: domainauth.RoleUser}, nil
		})

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "s", Nonce: "n",
	})
	require.NoError(t, err)
	assert.Equal(t, "User", result.Session.Name)
	assert.Equal(t, domainauth.AvatarURL("User"), result.Session.Picture)
}

func TestAuthService_CompleteLogin_ValidationErrors(t *testing.T) {
	svc, _, _ := newTestAuthService(t, nil)

	tests := []struct {
		name  string
		input CompleteLoginInput
		want  string
	}{
		{"missing code", CompleteLoginInput{State: "s", Nonce: "n"}, "authorization code"},
		{"missing state", CompleteLoginInput{Code: "c", Nonce: "n"}, "state parameter"},
		{"missing nonce", CompleteLoginInput{Code: "c", State: "s"}, "nonce parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteLogin(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAuthService_CompleteLogin_ExchangeFailure(t *testing.T) {
	svc, provider, _ := newTestAuthService(t, nil)
	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("idp unreachable")
	}

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code: "code", State: "s", Nonce: "n",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange authorization code")
}

func TestAuthService_LoginAsGuest(t *testing.T) {
	svc, _, sessions := newTestAuthService(t, nil)

	result, err := svc.LoginAsGuest(context.Background())
	require.NoError(t, err)

	sess := result.Session
	assert.Equal(t, domainauth.GuestUserID, sess.UserID)
	assert.Equal(t, domainauth.GuestName, sess.Name)
	assert.Equal(t, domainauth.GuestEmail, sess.Email)
	assert.Equal(t, domainauth.RoleGuest, sess.Role)
	assert.Equal(t, domainauth.AvatarURL("Guest"), sess.Picture)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), sess.ExpiresAt, time.Minute)

	_, err = sessions.Get(context.Background(), sess.ID)
	require.NoError(t, err)
}

func TestAuthService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	credentials := mocks.NewMockCredentialRepository(ctrl)

	svc := NewAuthService(AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
		Accounts: AccountDeps{Profiles: profiles, Credentials: credentials},
	})

	var storedHash string
	profiles.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.UpsertProfileRequest) (*model.Profile, error) {
			assert.Equal(t, "new.user@example.com", req.Email)
			assert.Equal(t, "New User", req.FullName)
			assert.NotEmpty(t, req.ID)
			return &model.Profile{ID: req.ID, Email: req.Email, FullName: req.FullName}, nil
		})
	credentials.EXPECT().
		SetPassword(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, hash string) error {
			storedHash = hash
			return nil
		})

	profile, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    " New.User@Example.com ",
		Password: "correct horse battery",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", profile.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("correct horse battery")))
}

func TestAuthService_SignUp_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	credentials := mocks.NewMockCredentialRepository(ctrl)

	svc := NewAuthService(AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: mockauth.NewMemorySessionStore(),
		Accounts: AccountDeps{Profiles: profiles, Credentials: credentials},
	})

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "a@b.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least")
}

func TestAuthService_SignUp_Unavailable(t *testing.T) {
	svc, _, _ := newTestAuthService(t, nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "a@b.com",
		Password: "long enough password",
	})
	assert.ErrorIs(t, err, ErrPasswordAuthUnavailable)
}

func TestAuthService_SignInWithPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileRepository(ctrl)
	credentials := mocks.NewMockCredentialRepository(ctrl)

	sessions := mockauth.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: sessions,
		Accounts: AccountDeps{Profiles: profiles, Credentials: credentials},
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("super secret pw"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		credentials.EXPECT().
			GetPasswordHash(gomock.Any(), "arturo@example.com").
			Return("user-7", string(hash), true, nil)
		profiles.EXPECT().
			GetByID(gomock.Any(), "user-7").
			Return(&model.Profile{
				ID:       "user-7",
				Email:    "arturo@example.com",
				FullName: "Arturo",
				Role:     domainauth.RoleAdmin,
			}, nil)

		result, signErr := svc.SignInWithPassword(context.Background(), "Arturo@Example.com", "super secret pw")
		require.NoError(t, signErr)
		assert.Equal(t, "user-7", result.Session.UserID)
		assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)

		_, getErr := sessions.Get(context.Background(), result.Session.ID)
		require.NoError(t, getErr)
	})

	t.Run("wrong password", func(t *testing.T) {
		credentials.EXPECT().
			GetPasswordHash(gomock.Any(), "arturo@example.com").
			Return("user-7", string(hash), true, nil)

		_, signErr := svc.SignInWithPassword(context.Background(), "arturo@example.com", "nope")
		assert.ErrorIs(t, signErr, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		credentials.EXPECT().
			GetPasswordHash(gomock.Any(), "ghost@example.com").
			Return("", "", false, errors.New("profile not found"))

		_, signErr := svc.SignInWithPassword(context.Background(), "ghost@example.com", "whatever pw")
		assert.ErrorIs(t, signErr, ErrInvalidCredentials)
	})

	t.Run("unconfirmed email", func(t *testing.T) {
		credentials.EXPECT().
			GetPasswordHash(gomock.Any(), "arturo@example.com").
			Return("user-7", string(hash), false, nil)

		_, signErr := svc.SignInWithPassword(context.Background(), "arturo@example.com", "super secret pw")
		assert.ErrorIs(t, signErr, ErrEmailNotConfirmed)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, signErr := svc.SignInWithPassword(context.Background(), "", "")
		assert.ErrorIs(t, signErr, ErrInvalidCredentials)
	})
}

func TestAuthService_GetSession(t *testing.T) {
	svc, _, sessions := newTestAuthService(t, nil)

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Name:      "Someone",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	got, err := svc.GetSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	svc, _, sessions := newTestAuthService(t, nil)

	sess := domainauth.Session{
		ID:        "sess-exp",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, sessions.Save(context.Background(), sess))

	_, err := svc.GetSession(context.Background(), "sess-exp")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "expired"))

	_, err = sessions.Get(context.Background(), "sess-exp")
	require.Error(t, err)
}

func TestAuthService_GetSession_EmptyID(t *testing.T) {
	svc, _, _ := newTestAuthService(t, nil)

	_, err := svc.GetSession(context.Background(), "")
	require.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newTestAuthService(t, nil)

	sess := domainauth.Session{ID: "sess-out", UserID: "u", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, sessions.Save(context.Background(), sess))

	require.NoError(t, svc.Logout(context.Background(), "sess-out"))
	_, err := sessions.Get(context.Background(), "sess-out")
	require.Error(t, err)

	// Empty session ID is a no-op.
	require.NoError(t, svc.Logout(context.Background(), ""))
}
