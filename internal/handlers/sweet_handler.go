package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sweet-shop/backend/internal/models"
	"github.com/sweet-shop/backend/internal/service"
)

// SweetHandler handles sweet-related HTTP requests
type SweetHandler struct {
	service *service.SweetService
	logger  *slog.Logger
}

// NewSweetHandler creates a new sweet handler
func NewSweetHandler(service *service.SweetService, logger *slog.Logger) *SweetHandler {
	return &SweetHandler{
		service: service,
		logger:  logger,
	}
}

// handleError logs and writes a service failure. Unexpected errors keep their
// detail in the log only.
func (h *SweetHandler) handleError(w http.ResponseWriter, err error, op string) {
	status, message := errorStatus(err)
	if isUnexpected(err) {
		h.logger.Error("operation failed", "op", op, "error", err)
	} else {
		h.logger.Info("request rejected", "op", op, "status", status, "reason", err.Error())
	}
	writeError(w, status, message, h.logger)
}

// List handles GET /api/sweets
func (h *SweetHandler) List(w http.ResponseWriter, r *http.Request) {
	sweets, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleError(w, err, "list")
		return
	}
	writeList(w, sweets, h.logger)
}

// Search handles GET /api/sweets/search. Empty and malformed criteria values
// are treated as absent; with no criteria at all this is equivalent to List.
func (h *SweetHandler) Search(w http.ResponseWriter, r *http.Request) {
	criteria := parseSearchCriteria(r)

	sweets, err := h.service.Search(r.Context(), criteria)
	if err != nil {
		h.handleError(w, err, "search")
		return
	}
	writeList(w, sweets, h.logger)
}

// Get handles GET /api/sweets/{sweetId}
func (h *SweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sweetId")

	sweet, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "get")
		return
	}
	writeData(w, http.StatusOK, sweet, h.logger)
}

// Create handles POST /api/sweets
func (h *SweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid create request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	sweet, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "create")
		return
	}

	h.logger.Info("sweet created", "id", sweet.ID, "name", sweet.Name)
	writeData(w, http.StatusCreated, sweet, h.logger)
}

// Update handles PUT /api/sweets/{sweetId}
func (h *SweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sweetId")

	var req models.UpdateSweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid update request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	sweet, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, err, "update")
		return
	}

	h.logger.Info("sweet updated", "id", sweet.ID)
	writeData(w, http.StatusOK, sweet, h.logger)
}

// Delete handles DELETE /api/sweets/{sweetId}
func (h *SweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sweetId")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err, "delete")
		return
	}

	h.logger.Info("sweet deleted", "id", id)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sweet deleted successfully",
	}, h.logger)
}

// Purchase handles POST /api/sweets/{sweetId}/purchase
func (h *SweetHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sweetId")

	var req models.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid purchase request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.service.Purchase(r.Context(), id, req.Quantity)
	if err != nil {
		h.handleError(w, err, "purchase")
		return
	}

	h.logger.Info("sweet purchased",
		"id", id,
		"quantity", result.PurchasedQuantity,
		"remaining", result.RemainingStock,
	)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
		Message: fmt.Sprintf("Successfully purchased %d %s(s)", result.PurchasedQuantity, result.Sweet.Name),
	}, h.logger)
}

// Restock handles POST /api/sweets/{sweetId}/restock
func (h *SweetHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sweetId")

	var req models.StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid restock request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.service.Restock(r.Context(), id, req.Quantity)
	if err != nil {
		h.handleError(w, err, "restock")
		return
	}

	h.logger.Info("sweet restocked",
		"id", id,
		"quantity", result.RestockedQuantity,
		"total", result.TotalStock,
	)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
		Message: fmt.Sprintf("Successfully restocked %d %s(s)", result.RestockedQuantity, result.Sweet.Name),
	}, h.logger)
}

// parseSearchCriteria reads the optional filter query parameters. Values that
// fail to parse are ignored rather than rejected.
func parseSearchCriteria(r *http.Request) models.SearchCriteria {
	q := r.URL.Query()
	criteria := models.SearchCriteria{
		Name:     q.Get("name"),
		Category: q.Get("category"),
	}

	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MinPrice = &f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxPrice = &f
		}
	}
	switch q.Get("inStock") {
	case "true":
		t := true
		criteria.InStock = &t
	case "false":
		f := false
		criteria.InStock = &f
	}

	return criteria
}
