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

// ErrBriefingNotFound is returned when a briefing is not found.
var ErrBriefingNotFound = errors.New("briefing not found")

// BriefingRepo provides database operations for client briefings.
type BriefingRepo struct {
	DB *sql.DB
}

// NewBriefingRepo creates a new BriefingRepo.
func NewBriefingRepo(db *sql.DB) *BriefingRepo {
	return &BriefingRepo{DB: db}
}

const briefingColumns = `id, company_name, project_title, background, goals, target_audience, deliverables, timeline, experience_level, created_at`

const (
	briefingGetByIDQuery = `
		SELECT ` + briefingColumns + `
		FROM briefings
		WHERE id = $1`

	briefingListQuery = `
		SELECT ` + briefingColumns + `
		FROM briefings
		ORDER BY created_at DESC`
)

// Create inserts a new briefing.
func (r *BriefingRepo) Create(ctx context.Context, req *model.CreateBriefingRequest) (*model.Briefing, error) {
	if req == nil {
		return nil, errors.New("create briefing request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	goals := req.Goals
	if goals == nil {
		goals = []string{}
	}
	deliverables := req.Deliverables
	if deliverables == nil {
		deliverables = []string{}
	}

	var out model.Briefing
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO briefings (
				company_name, project_title, background, goals, target_audience, deliverables, timeline, experience_level
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+briefingColumns,
			strings.TrimSpace(req.CompanyName),
			strings.TrimSpace(req.ProjectTitle),
			req.Background,
			goals,
			strings.TrimSpace(req.TargetAudience),
			deliverables,
			strings.TrimSpace(req.Timeline),
			string(req.ExperienceLevel),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Briefing])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a briefing by ID.
func (r *BriefingRepo) GetByID(ctx context.Context, id string) (*model.Briefing, error) {
	var out model.Briefing
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, briefingGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Briefing])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBriefingNotFound
		}
		return nil, fmt.Errorf("failed to get briefing: %w", err)
	}
	return &out, nil
}

// List retrieves all briefings, newest first.
func (r *BriefingRepo) List(ctx context.Context) ([]*model.Briefing, error) {
	var rowsOut []model.Briefing
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, briefingListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Briefing])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list briefings: %w", err)
	}

	res := make([]*model.Briefing, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a briefing by ID. Returns whether a row was removed.
func (r *BriefingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM briefings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete briefing: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of briefings.
func (r *BriefingRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM briefings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count briefings: %w", err)
	}
	return count, nil
}
