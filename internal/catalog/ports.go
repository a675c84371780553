package catalog

import (
	"context"

	"portfolio/internal/domain"
	"portfolio/internal/pricing"
)

type UseCase interface {
	ListServices(ctx context.Context) (*ListServicesResponse, error)
	GetService(ctx context.Context, id int) (*ServiceDTO, error)
	GetProfile(ctx context.Context) (*ProfileResponse, error)
}

type Service interface {
	ListOfferings(ctx context.Context) ([]domain.ServiceOffering, error)
	GetOffering(ctx context.Context, id int) (*domain.ServiceOffering, error)
	GetProfile(ctx context.Context) ([]domain.Project, []domain.Testimonial, error)
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.ServiceOffering, error)
	FindByID(ctx context.Context, id int) (*domain.ServiceOffering, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
}

type PriceCalculator interface {
	ForOffering(o domain.ServiceOffering) pricing.Breakdown
}
