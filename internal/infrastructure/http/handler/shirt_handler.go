package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mrops-br/shirt-search-api/internal/app/dto"
	"github.com/mrops-br/shirt-search-api/internal/app/service"
	"github.com/mrops-br/shirt-search-api/internal/domain"
	"github.com/mrops-br/shirt-search-api/internal/infrastructure/http/response"
)

// maxBodyBytes bounds request bodies accepted by the JSON endpoints
const maxBodyBytes = 1 << 20

// ShirtHandler handles HTTP requests for the shirt catalog
type ShirtHandler struct {
	service *service.ShirtService
	logger  *slog.Logger
}

// NewShirtHandler creates a new shirt handler
func NewShirtHandler(service *service.ShirtService, logger *slog.Logger) *ShirtHandler {
	return &ShirtHandler{
		service: service,
		logger:  logger,
	}
}

// CreateShirt handles POST /shirts
func (h *ShirtHandler) CreateShirt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShirtRequest
	if !h.decode(w, r, &req) {
		return
	}

	shirt, err := h.service.CreateShirt(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, shirt)
}

// GetShirt handles GET /shirts/{id}
func (h *ShirtHandler) GetShirt(w http.ResponseWriter, r *http.Request) {
	shirt, err := h.service.GetShirtByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, shirt)
}

// ListShirts handles GET /shirts
func (h *ShirtHandler) ListShirts(w http.ResponseWriter, r *http.Request) {
	shirts, err := h.service.ListShirts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, shirts)
}

// SearchShirts handles POST /shirts/search
func (h *ShirtHandler) SearchShirts(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if !h.decode(w, r, &req) {
		return
	}

	results, err := h.service.SearchShirts(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, results)
}

func (h *ShirtHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, fmt.Errorf("malformed request body: %w", err))
		return false
	}
	return true
}

func (h *ShirtHandler) writeError(w http.ResponseWriter, err error) {
	response.Error(w, StatusFor(err), err)
}

// StatusFor maps domain errors onto HTTP status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrShirtNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateShirt):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
