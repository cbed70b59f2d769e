//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

const maxTitleLen = 255

func validateTitleRequired(title string) error {
	t := strings.TrimSpace(title)
	if t == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(t) > maxTitleLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	return nil
}

// Project is a portfolio entry shown on the lab page.
type Project struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url"   db:"image_url"`
	Tags        []string  `json:"tags"        db:"tags"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}

// CreateProjectRequest represents parameters to create a Project.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

// Validate validates CreateProjectRequest.
func (r *CreateProjectRequest) Validate() error {
	if err := validateTitleRequired(r.Title); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required and cannot be empty")
	}
	if strings.TrimSpace(r.ImageURL) == "" {
		return apperrors.ValidationField("image_url", "image_url is required and cannot be empty")
	}
	return nil
}
