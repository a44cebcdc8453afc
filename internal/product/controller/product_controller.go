package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	repo   ProductRepository
	logger *zap.Logger
}

func NewController(repo ProductRepository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.List(r.Context())
	if err != nil {
		c.logger.With(zap.String("requestId", middleware.GetReqID(r.Context()))).
			Error("listing products failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "an unexpected error occurred",
		})
		return
	}
	c.writeJSON(w, http.StatusOK, products)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
