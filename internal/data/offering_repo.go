package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ArturCreativeLab/studio-api/internal/data/pgxutil"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// ErrOfferingNotFound is returned when an offering is not found.
var ErrOfferingNotFound = errors.New("service offering not found")

// OfferingRepo provides database operations for agency service offerings.
// The backing table is named "services" for continuity with the public site.
type OfferingRepo struct {
	DB *sql.DB
}

// NewOfferingRepo creates a new OfferingRepo.
func NewOfferingRepo(db *sql.DB) *OfferingRepo {
	return &OfferingRepo{DB: db}
}

const offeringColumns = `id, title, description, icon, created_at`

const (
	offeringGetByIDQuery = `
		SELECT ` + offeringColumns + `
		FROM services
		WHERE id = $1`

	offeringListQuery = `
		SELECT ` + offeringColumns + `
		FROM services
		ORDER BY created_at DESC`
)

// Create inserts a new offering.
func (r *OfferingRepo) Create(ctx context.Context, req *model.CreateOfferingRequest) (*model.Offering, error) {
	if req == nil {
		return nil, errors.New("create offering request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Offering
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO services (title, description, icon)
			VALUES ($1, $2, $3)
			RETURNING `+offeringColumns,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Description),
			strings.TrimSpace(req.Icon),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Offering])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an offering by ID.
func (r *OfferingRepo) GetByID(ctx context.Context, id string) (*model.Offering, error) {
	var out model.Offering
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offeringGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Offering])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfferingNotFound
		}
		return nil, fmt.Errorf("failed to get offering: %w", err)
	}
	return &out, nil
}

// List retrieves all offerings, newest first.
func (r *OfferingRepo) List(ctx context.Context) ([]*model.Offering, error) {
	var rowsOut []model.Offering
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offeringListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Offering])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}

	res := make([]*model.Offering, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes an offering by ID. Returns whether a row was removed.
func (r *OfferingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete offering: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of offerings.
func (r *OfferingRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count offerings: %w", err)
	}
	return count, nil
}
