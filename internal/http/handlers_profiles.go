package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// ProfileHandlers provides HTTP handlers for profile and role management.
// All routes are admin-gated at registration time.
type ProfileHandlers struct {
	Svc *service.ProfileService
}

// List handles HTTP requests to list all profiles.
func (h *ProfileHandlers) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

// setRoleRequest is the JSON body for a role change.
type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles HTTP requests to change a user's role.
// PUT /api/profiles/{id}/role.
func (h *ProfileHandlers) SetRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("profile id is required"),
		})
		return
	}

	var req setRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	err := h.Svc.SetRole(r.Context(), id, domainauth.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrProfileNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "profile_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "role_update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// updateProfileRequest is the JSON body for a profile edit.
type updateProfileRequest struct {
	Orcid string `json:"orcid"`
}

// UpdateProfile handles HTTP requests to edit a user's profile (ORCID iD).
// A matching admin identifier additionally grants the admin role; when that
// second step fails the response distinguishes the partial outcome.
// PUT /api/profiles/{id}.
func (h *ProfileHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("profile id is required"),
		})
		return
	}

	var req updateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	err := h.Svc.UpdateProfile(r.Context(), id, req.Orcid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartialUpdate):
			WriteError(w, ErrorParams{Code: http.StatusMultiStatus, ErrCode: "partial_update", Err: err})
		case errors.Is(err, data.ErrProfileNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "profile_not_found", Err: err})
		case apperrors.IsValidation(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "profile_update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// verifyOrcidRequest is the JSON body for researcher verification.
type verifyOrcidRequest struct {
	Orcid string `json:"orcid"`
}

// VerifyOrcid handles HTTP requests to resolve an ORCID iD to a researcher name.
// The result is returned as-is; failures are part of the payload, not the status.
// POST /api/profiles/verify-orcid.
func (h *ProfileHandlers) VerifyOrcid(w http.ResponseWriter, r *http.Request) {
	var req verifyOrcidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result := h.Svc.VerifyResearcher(r.Context(), req.Orcid)
	WriteJSON(w, http.StatusOK, result)
}
