package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// ResourceHandlers provides HTTP handlers for curated-resource operations.
type ResourceHandlers struct {
	Svc *service.ResourceService
}

// Create handles HTTP requests to create a new resource.
func (h *ResourceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateResourceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resource, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, resource)
}

// List handles HTTP requests to list resources, newest first.
func (h *ResourceHandlers) List(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"resources": resources})
}

// GetByID handles HTTP requests to get a resource by ID.
func (h *ResourceHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("resource id is required"),
		})
		return
	}

	resource, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrResourceNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "resource_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, resource)
}

// Delete handles HTTP requests to delete a resource.
func (h *ResourceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("resource id is required"),
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
			ErrCode: "resource_not_found",
			Err:     errors.New("resource not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
