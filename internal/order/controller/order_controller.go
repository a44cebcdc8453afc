package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
	apperrors "ynvbites/internal/errors"
)

type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Insert(ctx context.Context, order domain.Order) error
	Update(ctx context.Context, id string, patch domain.OrderPatch, now time.Time) (*domain.Order, error)
}

type Controller struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewController(repo OrderRepository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.repo.List(r.Context())
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	c.writeJSON(w, http.StatusOK, orders)
}

// createOrderRequest uses pointers for the required fields so that an
// absent key can be told apart from a zero value: only presence is
// required, matching the storefront contract.
type createOrderRequest struct {
	CustomerID      *string            `json:"customer_id"`
	Items           []domain.OrderItem `json:"items"`
	TotalAmount     *float64           `json:"total_amount"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryDate    string             `json:"delivery_date"`
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.requestLogger(r).Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	switch {
	case req.CustomerID == nil:
		c.writeError(w, http.StatusBadRequest, apperrors.NewMissingFieldError("customer_id").Message)
		return
	case req.Items == nil:
		c.writeError(w, http.StatusBadRequest, apperrors.NewMissingFieldError("items").Message)
		return
	case req.TotalAmount == nil:
		c.writeError(w, http.StatusBadRequest, apperrors.NewMissingFieldError("total_amount").Message)
		return
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:              uuid.New().String(),
		CustomerID:      *req.CustomerID,
		Items:           req.Items,
		TotalAmount:     *req.TotalAmount,
		Status:          status,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.repo.Insert(r.Context(), order); err != nil {
		c.handleError(w, r, err)
		return
	}

	c.requestLogger(r).Info("order created",
		zap.String("orderId", order.ID),
		zap.String("customerId", order.CustomerID),
		zap.Float64("totalAmount", order.TotalAmount),
	)
	c.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"order":   order,
	})
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	order, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	c.writeJSON(w, http.StatusOK, order)
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	var patch domain.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.requestLogger(r).Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	order, err := c.repo.Update(r.Context(), id, patch, time.Now().UTC())
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	c.requestLogger(r).Info("order updated", zap.String("orderId", id))
	c.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Order updated successfully",
		"order":   order,
	})
}

func (c *Controller) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}

	c.requestLogger(r).Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

func (c *Controller) requestLogger(r *http.Request) *zap.Logger {
	return c.logger.With(zap.String("requestId", middleware.GetReqID(r.Context())))
}

func (c *Controller) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, map[string]string{"error": message})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
