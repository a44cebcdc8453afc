package contact

import (
	"go.uber.org/zap"

	"ynvbites/internal/contact/controller"
	"ynvbites/internal/contact/repository"
	"ynvbites/internal/infrastructure/storage"
)

func NewModule(store *storage.Store, logger *zap.Logger) *controller.Controller {
	repo := repository.NewContactRepository(store)
	return controller.NewController(repo, logger)
}
