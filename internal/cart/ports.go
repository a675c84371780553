package cart

import (
	"context"

	"portfolio/internal/domain"
	"portfolio/internal/dto"
	"portfolio/internal/session"
)

type UseCase interface {
	GetCart(ctx context.Context, sess *session.Session) (*dto.CartResponse, error)
	AddItem(ctx context.Context, sess *session.Session, serviceID int) (*dto.AddItemResponse, error)
	RemoveItem(ctx context.Context, sess *session.Session, index int) (*dto.CartResponse, error)
}

// OfferingLookup resolves a catalog offering by id.
type OfferingLookup interface {
	GetOffering(ctx context.Context, id int) (*domain.ServiceOffering, error)
}
