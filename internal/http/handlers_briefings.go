package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// BriefingHandlers provides HTTP handlers for client briefing operations.
type BriefingHandlers struct {
	Svc *service.BriefingService
}

// Create handles HTTP requests to create a new briefing.
func (h *BriefingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBriefingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	briefing, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, briefing)
}

// List handles HTTP requests to list briefings, newest first.
func (h *BriefingHandlers) List(w http.ResponseWriter, r *http.Request) {
	briefings, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"briefings": briefings})
}

// GetByID handles HTTP requests to get a briefing by ID.
func (h *BriefingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("briefing id is required"),
		})
		return
	}

	briefing, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrBriefingNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "briefing_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, briefing)
}

// Delete handles HTTP requests to delete a briefing.
func (h *BriefingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("briefing id is required"),
		})
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "briefing_not_found",
			Err:     errors.New("briefing not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
