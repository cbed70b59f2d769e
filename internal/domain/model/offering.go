//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// Offering is a service the agency offers to clients. The storage table is
// named "services"; the Go type avoids colliding with the service layer.
type Offering struct {
	ID          string    `json:"id"          db:"id"`
	Title       string    `json:"title"       db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon"        db:"icon"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
}

// CreateOfferingRequest represents parameters to create an Offering.
type CreateOfferingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Validate validates CreateOfferingRequest.
func (r *CreateOfferingRequest) Validate() error {
	if err := validateTitleRequired(r.Title); err != nil {
		return err
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.ValidationField("description", "description is required and cannot be empty")
	}
	if strings.TrimSpace(r.Icon) == "" {
		return apperrors.ValidationField("icon", "icon is required and cannot be empty")
	}
	return nil
}
