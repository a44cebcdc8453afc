package product

import (
	"go.uber.org/zap"

	"ynvbites/internal/infrastructure/storage"
	"ynvbites/internal/product/controller"
	"ynvbites/internal/product/repository"
)

func NewModule(store *storage.Store, logger *zap.Logger) *controller.Controller {
	repo := repository.NewProductRepository(store)
	return controller.NewController(repo, logger)
}
