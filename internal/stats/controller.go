package stats

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ynvbites/internal/infrastructure/storage"
)

type Controller struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewController(store *storage.Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := c.store.Load()
	if err != nil {
		c.logger.With(zap.String("requestId", middleware.GetReqID(r.Context()))).
			Error("loading stats failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "an unexpected error occurred",
		})
		return
	}
	c.writeJSON(w, http.StatusOK, Compute(doc))
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
