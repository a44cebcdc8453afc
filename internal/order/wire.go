package order

import (
	"go.uber.org/zap"

	"ynvbites/internal/infrastructure/storage"
	"ynvbites/internal/order/controller"
	"ynvbites/internal/order/repository"
)

func NewModule(store *storage.Store, logger *zap.Logger) *controller.Controller {
	repo := repository.NewOrderRepository(store)
	return controller.NewController(repo, logger)
}
