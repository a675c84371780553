package checkout

import (
	"go.uber.org/zap"

	"portfolio/internal/checkout/controller"
	"portfolio/internal/checkout/usecase"
)

func NewModule(
	repo usecase.OrderRequestRepository,
	dispatcher usecase.OrderDispatcher,
	pricer usecase.Pricer,
	logger *zap.Logger,
	opts usecase.Options,
) *controller.CheckoutController {
	uc := usecase.NewCheckoutUseCase(repo, dispatcher, pricer, logger, opts)
	return controller.NewCheckoutController(uc, logger)
}
