package catalog

import (
	"context"
	"fmt"

	"portfolio/internal/domain"
)

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListOfferings(ctx context.Context) ([]domain.ServiceOffering, error) {
	return s.repo.FindAll(ctx)
}

func (s *catalogService) GetOffering(ctx context.Context, id int) (*domain.ServiceOffering, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) GetProfile(ctx context.Context) ([]domain.Project, []domain.Testimonial, error) {
	projects, err := s.repo.Projects(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading projects: %w", err)
	}

	testimonials, err := s.repo.Testimonials(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading testimonials: %w", err)
	}

	return projects, testimonials, nil
}
