package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type EnrichOrderUseCase interface {
	Enrich(ctx context.Context, orderID uint) (*domain.EnrichedOrder, error)
}

type ListOrdersUseCase interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type OrderController struct {
	enrichUC EnrichOrderUseCase
	listUC   ListOrdersUseCase
	logger   *zap.Logger
}

func NewOrderController(enrichUC EnrichOrderUseCase, listUC ListOrdersUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		enrichUC: enrichUC,
		listUC:   listUC,
		logger:   logger,
	}
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.listUC.List(r.Context())
	if err != nil {
		logger.Error("listing orders failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: "Error fetching orders",
			Error:   "internal error",
		})
		return
	}

	data := make([]dto.OrderDTO, len(orders))
	for i, order := range orders {
		data[i] = dto.OrderFromDomain(order)
	}

	c.writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true, Data: data})
}

// GetOrderByID returns the enriched view of one order. A dependency outage
// never fails this endpoint: the response is still 200 and the affected
// detail fields come back null, so callers must inspect fields, not status
// codes, to detect degradation.
func (c *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 32)
	if err != nil {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	enriched, err := c.enrichUC.Enrich(r.Context(), uint(orderID))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}

		logger.Error("enriching order failed", zap.Uint64("orderId", orderID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: "Error fetching order details",
			Error:   "internal error",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    dto.EnrichedOrderFromDomain(enriched),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
