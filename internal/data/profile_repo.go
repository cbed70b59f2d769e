package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/data/pgxutil"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// ProfileRepo provides database operations for profiles.
// It also serves password credentials stored on the same table.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProfileRepo creates a new ProfileRepo with real time provider.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewProfileRepoWithTimeProvider creates a new ProfileRepo with a custom time provider (useful for tests).
func NewProfileRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ProfileRepo {
	return &ProfileRepo{DB: db, timeProvider: tp}
}

const profileColumns = `id, email, full_name, picture, role, orcid, email_confirmed, created_at, updated_at`

const (
	profileGetByIDQuery = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1`

	profileGetByEmailQuery = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE email = $1`

	profileListQuery = `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY created_at ASC`
)

// Upsert inserts a profile or refreshes its display attributes on conflict.
// Role is never touched here: a login must not grant or revoke anything.
func (r *ProfileRepo) Upsert(ctx context.Context, req *model.UpsertProfileRequest) (*model.Profile, error) {
	if req == nil {
		return nil, errors.New("upsert profile request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Profile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (id, email, full_name, picture, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (id) DO UPDATE SET
				email      = EXCLUDED.email,
				full_name  = EXCLUDED.full_name,
				picture    = EXCLUDED.picture,
				updated_at = EXCLUDED.updated_at
			RETURNING `+profileColumns,
			strings.TrimSpace(req.ID),
			strings.TrimSpace(req.Email),
			strings.TrimSpace(req.FullName),
			req.Picture,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a profile by user ID.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.getByQuery(ctx, profileGetByIDQuery, id)
}

// GetByEmail retrieves a profile by email.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return r.getByQuery(ctx, profileGetByEmailQuery, email)
}

func (r *ProfileRepo) getByQuery(ctx context.Context, query, arg string) (*model.Profile, error) {
	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &out, nil
}

// List retrieves all profiles ordered by creation time.
func (r *ProfileRepo) List(ctx context.Context) ([]*model.Profile, error) {
	var rowsOut []model.Profile
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, profileListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Profile])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	res := make([]*model.Profile, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetRole updates a profile's role.
func (r *ProfileRepo) SetRole(ctx context.Context, params core.SetRoleParams) error {
	if params.NewRole != domainauth.RoleAdmin && params.NewRole != domainauth.RoleUser {
		return fmt.Errorf("role %q is not assignable", params.NewRole)
	}

	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE profiles SET role = $1, updated_at = $2 WHERE id = $3`,
			string(params.NewRole),
			r.timeProvider.Now().UTC(),
			params.TargetUserID,
		)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return r.mapWriteErr(err, false)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetOrcid updates a profile's ORCID iD. An empty value clears it.
func (r *ProfileRepo) SetOrcid(ctx context.Context, params core.SetOrcidParams) error {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE profiles SET orcid = NULLIF($1, ''), updated_at = $2 WHERE id = $3`,
			strings.TrimSpace(params.Orcid),
			r.timeProvider.Now().UTC(),
			params.TargetUserID,
		)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return r.mapWriteErr(err, false)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ConfirmEmail marks a profile's email address as confirmed.
// Used by the admin CLI; password sign-in rejects unconfirmed accounts.
func (r *ProfileRepo) ConfirmEmail(ctx context.Context, userID string) error {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE profiles SET email_confirmed = TRUE, updated_at = $1 WHERE id = $2`,
			r.timeProvider.Now().UTC(),
			userID,
		)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return r.mapWriteErr(err, false)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SetPassword stores a bcrypt hash for the given user.
func (r *ProfileRepo) SetPassword(ctx context.Context, userID, passwordHash string) error {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			UPDATE profiles SET password_hash = $1, updated_at = $2 WHERE id = $3`,
			passwordHash,
			r.timeProvider.Now().UTC(),
			userID,
		)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return r.mapWriteErr(err, false)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// GetPasswordHash loads password credentials by email.
// Accounts without a stored hash report ErrNoCredentials.
func (r *ProfileRepo) GetPasswordHash(ctx context.Context, email string) (string, string, bool, error) {
	var (
		userID    string
		hash      sql.NullString
		confirmed bool
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, password_hash, email_confirmed FROM profiles WHERE email = $1`,
		email,
	).Scan(&userID, &hash, &confirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", false, ErrProfileNotFound
		}
		return "", "", false, fmt.Errorf("failed to get credentials: %w", err)
	}
	if !hash.Valid || hash.String == "" {
		return userID, "", confirmed, ErrNoCredentials
	}
	return userID, hash.String, confirmed, nil
}

func (r *ProfileRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrProfileNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrEmailExists
	}
	return err
}
