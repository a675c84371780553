package cart

import (
	"go.uber.org/zap"

	"portfolio/internal/dto"
)

func NewModule(offerings OfferingLookup, pricer dto.Pricer, logger *zap.Logger) *Controller {
	uc := NewUseCase(offerings, pricer, logger)
	return NewController(uc, logger)
}
