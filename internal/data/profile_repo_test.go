package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	"github.com/ArturCreativeLab/studio-api/internal/testutil"
)

func createTestProfile(t *testing.T, db *sql.DB, suffix string) *model.Profile {
	t.Helper()
	repo := NewProfileRepo(db)
	p, err := repo.Upsert(context.Background(), &model.UpsertProfileRequest{
		ID:       "user-" + suffix,
		Email:    fmt.Sprintf("user-%s@example.com", suffix),
		FullName: "Test User",
		Picture:  domainauth.AvatarURL("Test User"),
	})
	require.NoError(t, err)
	return p
}

func TestProfileRepo_Upsert_InsertThenRefresh(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())

		p, err := repo.Upsert(ctx, &model.UpsertProfileRequest{
			ID:       "user-" + suffix,
			Email:    fmt.Sprintf("user-%s@example.com", suffix),
			FullName: "First Name",
			Picture:  "https://example.com/p.png",
		})
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleUser, p.Role)
		assert.Equal(t, "First Name", p.FullName)
		assert.NotZero(t, p.CreatedAt)

		// Promote, then upsert again: display fields refresh, role survives.
		require.NoError(t, repo.SetRole(ctx, core.SetRoleParams{
			TargetUserID: p.ID,
			NewRole:      domainauth.RoleAdmin,
		}))

		p2, err := repo.Upsert(ctx, &model.UpsertProfileRequest{
			ID:       p.ID,
			Email:    p.Email,
			FullName: "Renamed User",
			Picture:  "https://example.com/p2.png",
		})
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, p2.Role)
		assert.Equal(t, "Renamed User", p2.FullName)
		assert.Equal(t, "https://example.com/p2.png", p2.Picture)
	})
}

func TestProfileRepo_Upsert_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		p := createTestProfile(t, db, suffix)

		_, err := repo.Upsert(ctx, &model.UpsertProfileRequest{
			ID:    "other-" + suffix,
			Email: p.Email,
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestProfileRepo_GetByID_And_Email(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		p := createTestProfile(t, db, suffix)

		byID, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Email, byID.Email)

		byEmail, err := repo.GetByEmail(ctx, p.Email)
		require.NoError(t, err)
		assert.Equal(t, p.ID, byEmail.ID)

		_, err = repo.GetByID(ctx, "missing-"+suffix)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestProfileRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		createTestProfile(t, db, suffix+"-a")
		createTestProfile(t, db, suffix+"-b")

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)
	})
}

func TestProfileRepo_SetRole(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		p := createTestProfile(t, db, suffix)

		require.NoError(t, repo.SetRole(ctx, core.SetRoleParams{
			TargetUserID: p.ID,
			NewRole:      domainauth.RoleAdmin,
		}))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domainauth.RoleAdmin, got.Role)

		// Unknown target
		err = repo.SetRole(ctx, core.SetRoleParams{
			TargetUserID: "missing-" + suffix,
			NewRole:      domainauth.RoleUser,
		})
		assert.ErrorIs(t, err, ErrProfileNotFound)

		// Guest is never assignable
		err = repo.SetRole(ctx, core.SetRoleParams{
			TargetUserID: p.ID,
			NewRole:      domainauth.RoleGuest,
		})
		assert.Error(t, err)
	})
}

func TestProfileRepo_SetOrcid(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		p := createTestProfile(t, db, suffix)

		require.NoError(t, repo.SetOrcid(ctx, core.SetOrcidParams{
			TargetUserID: p.ID,
			Orcid:        "0000-0002-1825-0097",
		}))

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Orcid)
		assert.Equal(t, "0000-0002-1825-0097", *got.Orcid)

		// Clearing stores NULL
		require.NoError(t, repo.SetOrcid(ctx, core.SetOrcidParams{TargetUserID: p.ID, Orcid: ""}))
		got, err = repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Orcid)

		err = repo.SetOrcid(ctx, core.SetOrcidParams{TargetUserID: "missing-" + suffix, Orcid: "x"})
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestProfileRepo_PasswordCredentials(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewProfileRepo(db)
		suffix := fmt.Sprintf("%d", time.Now().UnixNano())
		p := createTestProfile(t, db, suffix)

		// No hash stored yet
		_, _, _, err := repo.GetPasswordHash(ctx, p.Email)
		assert.ErrorIs(t, err, ErrNoCredentials)

		require.NoError(t, repo.SetPassword(ctx, p.ID, "$2a$10$fakehashfakehashfakehash"))

		userID, hash, confirmed, err := repo.GetPasswordHash(ctx, p.Email)
		require.NoError(t, err)
		assert.Equal(t, p.ID, userID)
		assert.Equal(t, "$2a$10$fakehashfakehashfakehash", hash)
		assert.False(t, confirmed)

		_, _, _, err = repo.GetPasswordHash(ctx, "missing-"+suffix+"@example.com")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}
