//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"strings"
	"time"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// Resource is a curated external link (tool, article, asset library).
type Resource struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	URL         string    `json:"url"         db:"url"`
	Category    string    `json:"category"    db:"category"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`

	// Domain is derived from URL at read time (registrable domain), not stored.
	Domain string `json:"domain,omitempty" db:"-"`
}

// CreateResourceRequest represents parameters to create a Resource.
type CreateResourceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// Validate validates CreateResourceRequest.
func (r *CreateResourceRequest) Validate() error {
	if err := validateTitleRequired(r.Title); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required and cannot be empty")
	}
	u := strings.TrimSpace(r.URL)
	if u == "" {
		return apperrors.ValidationField("url", "url is required and cannot be empty")
	}
	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return apperrors.ValidationField("url", "url must be an absolute http(s) URL")
	}
	if strings.TrimSpace(r.Category) == "" {
		return apperrors.ValidationField("category", "category is required and cannot be empty")
	}
	return nil
}
