package catalog

import (
	"context"
)

type catalogUseCase struct {
	service Service
	calc    PriceCalculator
}

func NewUseCase(service Service, calc PriceCalculator) UseCase {
	return &catalogUseCase{service: service, calc: calc}
}

func (uc *catalogUseCase) ListServices(ctx context.Context) (*ListServicesResponse, error) {
	offerings, err := uc.service.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	services := make([]ServiceDTO, 0, len(offerings))
	for _, o := range offerings {
		services = append(services, newServiceDTO(o, uc.calc.ForOffering(o)))
	}

	return &ListServicesResponse{Services: services}, nil
}

func (uc *catalogUseCase) GetService(ctx context.Context, id int) (*ServiceDTO, error) {
	o, err := uc.service.GetOffering(ctx, id)
	if err != nil {
		return nil, err
	}

	out := newServiceDTO(*o, uc.calc.ForOffering(*o))
	return &out, nil
}

func (uc *catalogUseCase) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	projects, testimonials, err := uc.service.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ProfileResponse{
		Projects:     make([]ProjectDTO, 0, len(projects)),
		Testimonials: make([]TestimonialDTO, 0, len(testimonials)),
	}
	for _, p := range projects {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		resp.Projects = append(resp.Projects, ProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Tags:        tags,
			Link:        p.Link,
		})
	}
	for _, t := range testimonials {
		resp.Testimonials = append(resp.Testimonials, TestimonialDTO{
			ID:     t.ID,
			Name:   t.Name,
			Role:   t.Role,
			Text:   t.Text,
			Rating: t.Rating,
		})
	}

	return resp, nil
}
