package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// ProjectHandlers provides HTTP handlers for portfolio project operations.
type ProjectHandlers struct {
	Svc *service.ProjectService
}

// Create handles HTTP requests to create a new project.
func (h *ProjectHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	project, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, project)
}

// List handles HTTP requests to list projects, newest first.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"projects": projects})
}

// GetByID handles HTTP requests to get a project by ID.
func (h *ProjectHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("project id is required"),
		})
		return
	}

	project, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrProjectNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "project_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, project)
}

// Delete handles HTTP requests to delete a project.
func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("project id is required"),
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
			ErrCode: "project_not_found",
			Err:     errors.New("project not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
