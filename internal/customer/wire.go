package customer

import (
	"go.uber.org/zap"

	"ynvbites/internal/customer/controller"
	"ynvbites/internal/customer/repository"
	"ynvbites/internal/infrastructure/storage"
)

func NewModule(store *storage.Store, logger *zap.Logger) *controller.Controller {
	repo := repository.NewCustomerRepository(store)
	return controller.NewController(repo, logger)
}
