package httpx

import (
	"errors"
	"net/http"

	"github.com/ArturCreativeLab/studio-api/internal/data"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
	apperrors "github.com/ArturCreativeLab/studio-api/internal/errors"
	"github.com/ArturCreativeLab/studio-api/internal/service"
)

// ResearchHandlers provides HTTP handlers for research article operations.
type ResearchHandlers struct {
	Svc *service.ResearchService
}

// Create handles HTTP requests to create a new research article.
func (h *ResearchHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateResearchArticleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	article, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, article)
}

// List handles HTTP requests to list research articles, newest first.
func (h *ResearchHandlers) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"research_articles": articles})
}

// GetByID handles HTTP requests to get a research article by ID.
func (h *ResearchHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("research article id is required"),
		})
		return
	}

	article, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrResearchArticleNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "research_article_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, article)
}

// Delete handles HTTP requests to delete a research article.
func (h *ResearchHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("research article id is required"),
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
			ErrCode: "research_article_not_found",
			Err:     errors.New("research article not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
