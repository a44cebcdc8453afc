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

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Insert(ctx context.Context, customer domain.Customer) error
	Update(ctx context.Context, id string, patch domain.CustomerPatch, now time.Time) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type Controller struct {
	repo   CustomerRepository
	logger *zap.Logger
}

func NewController(repo CustomerRepository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	customers, err := c.repo.List(r.Context())
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	c.writeJSON(w, http.StatusOK, customers)
}

type createCustomerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.requestLogger(r).Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			c.writeError(w, http.StatusBadRequest, apperrors.NewMissingFieldError(f.field).Message)
			return
		}
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.repo.Insert(r.Context(), customer); err != nil {
		c.handleError(w, r, err)
		return
	}

	c.requestLogger(r).Info("customer created", zap.String("customerId", customer.ID))
	c.writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "customerID")

	customer, err := c.repo.FindByID(r.Context(), id)
	if err != nil {
		c.handleError(w, r, err)
		return
	}
	c.writeJSON(w, http.StatusOK, customer)
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "customerID")

	var patch domain.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		c.requestLogger(r).Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	customer, err := c.repo.Update(r.Context(), id, patch, time.Now().UTC())
	if err != nil {
		c.handleError(w, r, err)
		return
	}

	c.requestLogger(r).Info("customer updated", zap.String("customerId", id))
	c.writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "customerID")

	if err := c.repo.Delete(r.Context(), id); err != nil {
		c.handleError(w, r, err)
		return
	}

	c.requestLogger(r).Info("customer deleted", zap.String("customerId", id))
	c.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Customer deleted successfully",
	})
}

func (c *Controller) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}
	if de, ok := apperrors.IsDuplicateError(err); ok {
		c.writeError(w, http.StatusBadRequest, de.Message)
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
