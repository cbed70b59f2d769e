//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

// ExperienceLevel is the seniority a briefing targets.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid-Level"
	ExperienceSenior ExperienceLevel = "Senior"
)

// Valid reports whether the experience level is supported.
func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	default:
		return false
	}
}

// Briefing is a client project brief distributed to staff.
type Briefing struct {
	ID              string          `json:"id"               db:"id"`
	CompanyName     string          `json:"company_name"     db:"company_name"`
	ProjectTitle    string          `json:"project_title"    db:"project_title"`
	Background      string          `json:"background"       db:"background"`
	Goals           []string        `json:"goals"            db:"goals"`
	TargetAudience  string          `json:"target_audience"  db:"target_audience"`
	Deliverables    []string        `json:"deliverables"     db:"deliverables"`
	Timeline        string          `json:"timeline"         db:"timeline"`
	ExperienceLevel ExperienceLevel `json:"experience_level" db:"experience_level"`
	CreatedAt       time.Time       `json:"created_at"       db:"created_at"`
}

// CreateBriefingRequest represents parameters to create a Briefing.
type CreateBriefingRequest struct {
	CompanyName     string          `json:"company_name"`
	ProjectTitle    string          `json:"project_title"`
	Background      string          `json:"background"`
	Goals           []string        `json:"goals"`
	TargetAudience  string          `json:"target_audience"`
	Deliverables    []string        `json:"deliverables"`
	Timeline        string          `json:"timeline"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
}

// Validate validates CreateBriefingRequest.
func (r *CreateBriefingRequest) Validate() error {
	if strings.TrimSpace(r.CompanyName) == "" {
		return apperrors.ValidationField("company_name", "company_name is required and cannot be empty")
	}
	if err := validateTitleRequired(r.ProjectTitle); err != nil {
		return apperrors.ValidationField("project_title", "project_title is required and cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Background) == "" {
		return apperrors.ValidationField("background", "background is required and cannot be empty")
	}
	if len(r.Goals) == 0 {
		return apperrors.ValidationField("goals", "at least one goal is required")
	}
	if len(r.Deliverables) == 0 {
		return apperrors.ValidationField("deliverables", "at least one deliverable is required")
	}
	if !r.ExperienceLevel.Valid() {
		return apperrors.ValidationField("experience_level", "experience_level must be Junior, Mid-Level, or Senior")
	}
	return nil
}
