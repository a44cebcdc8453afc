package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
	apperrors "ynvbites/internal/errors"
)

type ContactRepository interface {
	Insert(ctx context.Context, contact domain.Contact) error
}

type Controller struct {
	repo   ContactRepository
	logger *zap.Logger
}

func NewController(repo ContactRepository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
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
		{"subject", req.Subject},
		{"message", req.Message},
	}
	for _, f := range required {
		if f.value == "" {
			c.writeError(w, http.StatusBadRequest, apperrors.NewMissingFieldError(f.field).Message)
			return
		}
	}

	contact := domain.Contact{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
		Status:    domain.ContactStatusNew,
	}

	if err := c.repo.Insert(r.Context(), contact); err != nil {
		c.requestLogger(r).Error("unexpected error", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	c.requestLogger(r).Info("contact message received",
		zap.String("contactId", contact.ID),
		zap.String("subject", contact.Subject),
	)
	c.writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Contact message sent successfully",
		"contact": contact,
	})
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
