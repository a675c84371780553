package cart

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/session"
)

type cartUseCase struct {
	offerings OfferingLookup
	pricer    dto.Pricer
	logger    *zap.Logger
	now       func() time.Time
}

func NewUseCase(offerings OfferingLookup, pricer dto.Pricer, logger *zap.Logger) UseCase {
	return &cartUseCase{
		offerings: offerings,
		pricer:    pricer,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *cartUseCase) GetCart(ctx context.Context, sess *session.Session) (*dto.CartResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	resp := dto.NewCartResponse(&sess.Cart, uc.pricer)
	return &resp, nil
}

// AddItem appends a copy of the offering and opens the checkout panel
// when it is closed.
func (uc *cartUseCase) AddItem(ctx context.Context, sess *session.Session, serviceID int) (*dto.AddItemResponse, error) {
	offering, err := uc.offerings.GetOffering(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	now := uc.now()
	item := sess.Cart.AddItem(*offering, now)
	if sess.Flow == nil {
		sess.Flow = domain.NewCheckoutFlow(now)
		uc.logger.Debug("checkout opened by add item", zap.String("sessionId", sess.ID), zap.String("flowId", sess.Flow.ID.String()))
	}

	uc.logger.Info("item added to cart",
		zap.String("sessionId", sess.ID),
		zap.Int("serviceId", offering.ID),
		zap.Int("itemCount", sess.Cart.ItemCount()),
	)

	cart := dto.NewCartResponse(&sess.Cart, uc.pricer)
	return &dto.AddItemResponse{
		Item:     dto.NewLineItemDTO(sess.Cart.ItemCount()-1, item, uc.pricer),
		Cart:     cart,
		Checkout: dto.NewCheckoutResponse(sess.Flow, &cart),
	}, nil
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, sess *session.Session, index int) (*dto.CartResponse, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Flow != nil && (sess.Flow.IsSubmitting || sess.Flow.PendingStep != "") {
		return nil, apperrors.NewConflictError("cart cannot change while an order is being submitted")
	}

	removed, ok := sess.Cart.RemoveItem(index)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("cart item at index %d not found", index))
	}

	uc.logger.Info("item removed from cart",
		zap.String("sessionId", sess.ID),
		zap.Int("serviceId", removed.ID),
		zap.Int("itemCount", sess.Cart.ItemCount()),
	)

	resp := dto.NewCartResponse(&sess.Cart, uc.pricer)
	return &resp, nil
}
