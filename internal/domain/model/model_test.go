//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
)

func validBriefingRequest() *CreateBriefingRequest {
	return &CreateBriefingRequest{
		CompanyName:     "Acme Corp",
		ProjectTitle:    "Packaging refresh",
		Background:      "Acme is repositioning its consumer line.",
		Goals:           []string{"Increase shelf visibility"},
		TargetAudience:  "Retail shoppers",
		Deliverables:    []string{"Packaging system"},
		Timeline:        "6 weeks",
		ExperienceLevel: ExperienceMid,
	}
}

func TestExperienceLevel_Valid(t *testing.T) {
	assert.True(t, ExperienceJunior.Valid())
	assert.True(t, ExperienceMid.Valid())
	assert.True(t, ExperienceSenior.Valid())
	assert.False(t, ExperienceLevel("Principal").Valid())
	assert.False(t, ExperienceLevel("").Valid())
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      CreateProjectRequest
		errorMsg string
	}{
		{
			name: "valid",
			req:  CreateProjectRequest{Title: "Brand refresh", Description: "Full identity", ImageURL: "https://cdn.example.com/p.png"},
		},
		{
			name:     "missing title",
			req:      CreateProjectRequest{Description: "d", ImageURL: "https://x"},
			errorMsg: "title is required and cannot be empty",
		},
		{
			name:     "whitespace title",
			req:      CreateProjectRequest{Title: "   ", Description: "d", ImageURL: "https://x"},
			errorMsg: "title is required and cannot be empty",
		},
		{
			name:     "title too long",
			req:      CreateProjectRequest{Title: strings.Repeat("a", 256), Description: "d", ImageURL: "https://x"},
			errorMsg: "title cannot exceed 255 characters",
		},
		{
			name:     "missing description",
			req:      CreateProjectRequest{Title: "t", ImageURL: "https://x"},
			errorMsg: "description is required and cannot be empty",
		},
		{
			name:     "missing image",
			req:      CreateProjectRequest{Title: "t", Description: "d"},
			errorMsg: "image_url is required and cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestCreateProjectRequest_TitleLengthCountsRunes(t *testing.T) {
	req := CreateProjectRequest{
		Title:       strings.Repeat("ü", 255),
		Description: "d",
		ImageURL:    "https://cdn.example.com/p.png",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateOfferingRequest_Validate(t *testing.T) {
	req := CreateOfferingRequest{Title: "Brand Strategy", Description: "Positioning work", Icon: "compass"}
	assert.NoError(t, req.Validate())

	req.Icon = ""
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icon is required")
}

func TestCreateResourceRequest_Validate_URL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		errorMsg string
	}{
		{name: "https", url: "https://www.figma.com/"},
		{name: "http", url: "http://tools.example.org/kit"},
		{name: "relative", url: "/local/path", errorMsg: "must be an absolute http(s) URL"},
		{name: "no scheme", url: "www.figma.com", errorMsg: "must be an absolute http(s) URL"},
		{name: "ftp", url: "ftp://files.example.com/kit.zip", errorMsg: "must be an absolute http(s) URL"},
		{name: "empty", url: "", errorMsg: "url is required and cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateResourceRequest{Title: "t", Description: "d", URL: tt.url, Category: "Design"}
			err := req.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestCreateResearchArticleRequest_Validate(t *testing.T) {
	valid := CreateResearchArticleRequest{
		Title:    "Color perception in packaging",
		Authors:  []string{"J. Carberry"},
		Journal:  "Journal of Applied Design",
		Abstract: "We study hue contrast on shelf attention.",
	}
	assert.NoError(t, valid.Validate())

	noAuthors := valid
	noAuthors.Authors = nil
	err := noAuthors.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one author is required")

	blankAuthor := valid
	blankAuthor.Authors = []string{"J. Carberry", "  "}
	err = blankAuthor.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authors cannot contain empty entries")
}

func TestCreateBriefingRequest_Validate(t *testing.T) {
	assert.NoError(t, validBriefingRequest().Validate())

	noGoals := validBriefingRequest()
	noGoals.Goals = nil
	err := noGoals.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one goal is required")

	badLevel := validBriefingRequest()
	badLevel.ExperienceLevel = "Expert"
	err = badLevel.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be Junior, Mid-Level, or Senior")
}

func TestValidate_ReturnsTypedValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
	}{
		{"project title", (&CreateProjectRequest{Description: "d", ImageURL: "u"}).Validate(), "title"},
		{"offering icon", (&CreateOfferingRequest{Title: "t", Description: "d"}).Validate(), "icon"},
		{"resource url", (&CreateResourceRequest{Title: "t", Description: "d", URL: "nope", Category: "c"}).Validate(), "url"},
		{"research authors", (&CreateResearchArticleRequest{Title: "t", Journal: "j", Abstract: "a"}).Validate(), "authors"},
		{"profile role", (&SetRoleRequest{TargetUserID: "u-1", NewRole: "guest"}).Validate(), "newRole"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, apperrors.IsValidation(tt.err))
			assert.Equal(t, tt.wantField, apperrors.GetField(tt.err))
		})
	}

	badLevel := validBriefingRequest()
	badLevel.ExperienceLevel = "Expert"
	err := badLevel.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "experience_level", apperrors.GetField(err))
}

func TestUpsertProfileRequest_Validate(t *testing.T) {
	req := UpsertProfileRequest{ID: "u-1", Email: "a@example.com"}
	assert.NoError(t, req.Validate())

	req.ID = " "
	require.Error(t, req.Validate())

	req = UpsertProfileRequest{ID: "u-1"}
	require.Error(t, req.Validate())
}

func TestSetRoleRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SetRoleRequest{TargetUserID: "u-1", NewRole: "admin"}).Validate())
	assert.NoError(t, (&SetRoleRequest{TargetUserID: "u-1", NewRole: "user"}).Validate())
	assert.Error(t, (&SetRoleRequest{TargetUserID: "u-1", NewRole: "guest"}).Validate())
	assert.Error(t, (&SetRoleRequest{NewRole: "admin"}).Validate())
}
