//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// ResearchArticle is a published paper tracked by the research page.
type ResearchArticle struct {
	ID              string    `json:"id"               db:"id"`
	Title           string    `json:"title"            db:"title"`
	Authors         []string  `json:"authors"          db:"authors"`
	PublicationDate string    `json:"publication_date" db:"publication_date"`
	Journal         string    `json:"journal"          db:"journal"`
	Abstract        string    `json:"abstract"         db:"abstract"`
	Tags            []string  `json:"tags"             db:"tags"`
	DocumentURL     string    `json:"document_url"     db:"document_url"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
}

// CreateResearchArticleRequest represents parameters to create a ResearchArticle.
type CreateResearchArticleRequest struct {
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	PublicationDate string   `json:"publication_date"`
	Journal         string   `json:"journal"`
	Abstract        string   `json:"abstract"`
	Tags            []string `json:"tags"`
	DocumentURL     string   `json:"document_url"`
}

// Validate validates CreateResearchArticleRequest.
func (r *CreateResearchArticleRequest) Validate() error {
	if err := validateTitleRequired(r.Title); err != nil {
		return err
	}
	if len(r.Authors) == 0 {
		return apperrors.ValidationField("authors", "at least one author is required")
	}
	for _, a := range r.Authors {
		if strings.TrimSpace(a) == "" {
			return apperrors.ValidationField("authors", "authors cannot contain empty entries")
		}
	}
	if strings.TrimSpace(r.Journal) == "" {
		return apperrors.ValidationField("journal", "journal is required and cannot be empty")
	}
	if strings.TrimSpace(r.Abstract) == "" {
		return apperrors.ValidationField("abstract", "abstract is required and cannot be empty")
	}
	return nil
}
