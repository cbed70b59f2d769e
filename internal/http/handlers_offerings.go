package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// OfferingHandlers provides HTTP handlers for agency service-offering operations.
type OfferingHandlers struct {
	Svc *service.OfferingService
}

// Create handles HTTP requests to create a new offering.
func (h *OfferingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOfferingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	offering, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, offering)
}

// List handles HTTP requests to list offerings, newest first.
func (h *OfferingHandlers) List(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"services": offerings})
}

// GetByID handles HTTP requests to get an offering by ID.
func (h *OfferingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("service id is required"),
		})
		return
	}

	offering, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrOfferingNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "service_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, offering)
}

// Delete handles HTTP requests to delete an offering.
func (h *OfferingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("service id is required"),
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
			ErrCode: "service_not_found",
			Err:     errors.New("service offering not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
