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

// ErrResearchArticleNotFound is returned when a research article is not found.
var ErrResearchArticleNotFound = errors.New("research article not found")

// ResearchRepo provides database operations for research articles.
type ResearchRepo struct {
	DB *sql.DB
}

// NewResearchRepo creates a new ResearchRepo.
func NewResearchRepo(db *sql.DB) *ResearchRepo {
	return &ResearchRepo{DB: db}
}

const researchColumns = `id, title, authors, publication_date, journal, abstract, tags, document_url, created_at`

const (
	researchGetByIDQuery = `
		SELECT ` + researchColumns + `
		FROM research_articles
		WHERE id = $1`

	researchListQuery = `
		SELECT ` + researchColumns + `
		FROM research_articles
		ORDER BY created_at DESC`
)

// Create inserts a new research article.
func (r *ResearchRepo) Create(
	ctx context.Context,
	req *model.CreateResearchArticleRequest,
) (*model.ResearchArticle, error) {
	if req == nil {
		return nil, errors.New("create research article request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authors := req.Authors
	if authors == nil {
		authors = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	var out model.ResearchArticle
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO research_articles (title, authors, publication_date, journal, abstract, tags, document_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+researchColumns,
			strings.TrimSpace(req.Title),
			authors,
			strings.TrimSpace(req.PublicationDate),
			strings.TrimSpace(req.Journal),
			req.Abstract,
			tags,
			strings.TrimSpace(req.DocumentURL),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ResearchArticle])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a research article by ID.
func (r *ResearchRepo) GetByID(ctx context.Context, id string) (*model.ResearchArticle, error) {
	var out model.ResearchArticle
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, researchGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ResearchArticle])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResearchArticleNotFound
		}
		return nil, fmt.Errorf("failed to get research article: %w", err)
	}
	return &out, nil
}

// List retrieves all research articles, newest first.
func (r *ResearchRepo) List(ctx context.Context) ([]*model.ResearchArticle, error) {
	var rowsOut []model.ResearchArticle
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, researchListQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ResearchArticle])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list research articles: %w", err)
	}

	res := make([]*model.ResearchArticle, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a research article by ID. Returns whether a row was removed.
func (r *ResearchRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM research_articles WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete research article: %w", err)
	}
	return rows > 0, nil
}

// Count returns the number of research articles.
func (r *ResearchRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM research_articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count research articles: %w", err)
	}
	return count, nil
}
