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

// ErrResourceNotFound is returned when a resource is not found.
var ErrResourceNotFound = errors.New("resource not found")

// ResourceRepo provides database operations for curated resources.
type ResourceRepo struct {
	DB *sql.DB
}

// NewResourceRepo creates a new ResourceRepo.
func NewResourceRepo(db *sql.DB) *ResourceRepo {
	return &ResourceRepo{DB: db}
}

const resourceColumns = `id, title, description, url, category, created_at`

const (
	resourceGetByIDQuery = `
		SELECT ` + resourceColumns + `
		FROM resources
		WHERE id = $1`

	resourceListQuery = `
		SELECT ` + resourceColumns + `
		FROM resources
		ORDER BY created_at DESC`
)

// Create inserts a new resource.
func (r *ResourceRepo) Create(ctx context.Context, req *model.CreateResourceRequest) (*model.Resource, error) {
	if req == nil {
		return nil, errors.New("create resource request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Resource
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO resources (title, description, url, category)
			VALUES ($1, $2, $3, $4)
			RETURNING `+resourceColumns,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Description),
			strings.TrimSpace(req.URL),
			strings.TrimSpace(req.Category),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resource])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a resource by ID.
func (r *ResourceRepo) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	var out model.Resource
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, resourceGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Resource])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return &out, nil
}

// List retrieves all resources, newest first.
func (r *ResourceRepo) List(ctx context.Context) ([]*model.Resource, error) {
	var rowsOut []model.Resource
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, resourceListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Resource])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	res := make([]*model.Resource, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a resource by ID. Returns whether a row was removed.
func (r *ResourceRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of resources.
func (r *ResourceRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}
