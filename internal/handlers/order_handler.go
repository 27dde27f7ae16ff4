package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/commercekit/orders-api/internal/models"
	"github.com/commercekit/orders-api/internal/repository"
	"github.com/commercekit/orders-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		var notFound *service.ProductsNotFoundError
		if errors.As(err, &notFound) {
			h.log.Info("order rejected, missing products", "missing_ids", notFound.IDs)
			WriteError(w, http.StatusNotFound, notFound.Error(), h.log)
			return
		}

		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
	h.log.Info("order created successfully",
		"order_id", order.ID,
		"total_price", order.TotalPrice.String(),
		"products_count", len(order.Products),
	)
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.log.Warn("invalid order ID format", "id", chi.URLParam(r, "id"), "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "order_id", id)
			WriteError(w, http.StatusNotFound, "Order not found with ID: "+strconv.FormatInt(id, 10), h.log)
			return
		}

		h.log.Error("failed to get order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}
