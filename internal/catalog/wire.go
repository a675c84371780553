package catalog

import (
	"go.uber.org/zap"

	"portfolio/internal/catalog/repository"
	"portfolio/internal/commons"
)

// NewModule builds the catalog controller and returns the service so other
// modules can look offerings up.
func NewModule(file *commons.CatalogFile, calc PriceCalculator, logger *zap.Logger) (*Controller, Service) {
	repo := repository.NewMemoryRepository(file)
	svc := NewService(repo)
	uc := NewUseCase(svc, calc)
	return NewController(uc, logger), svc
}
