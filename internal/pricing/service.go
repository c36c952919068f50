package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPricingNotFound = errors.New("pricing not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	CreatePricing(ctx context.Context, in CreateInput) (*Pricing, error)
	GetAllPricings(ctx context.Context) ([]Pricing, error)
	GetPricingByID(ctx context.Context, id int) (*Pricing, error)
	UpdatePricing(ctx context.Context, id int, in UpdateInput) (*Pricing, error)
	DeletePricing(ctx context.Context, id int) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) CreatePricing(ctx context.Context, in CreateInput) (*Pricing, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pricing := &Pricing{
		Service:        in.Service,
		Description:    in.Description,
		RatePerHour:    round2(*in.RatePerHour),
		EstimatedHours: round2(*in.EstimatedHours),
	}
	created, err := s.repo.Create(ctx, pricing)
	if err != nil {
		return nil, err
	}
	created.ComputeTotalCost()
	return created, nil
}

func (s *service) GetAllPricings(ctx context.Context) ([]Pricing, error) {
	pricings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pricings {
		pricings[i].ComputeTotalCost()
	}
	return pricings, nil
}

func (s *service) GetPricingByID(ctx context.Context, id int) (*Pricing, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	pricing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pricing.ComputeTotalCost()
	return pricing, nil
}

func (s *service) UpdatePricing(ctx context.Context, id int, in UpdateInput) (*Pricing, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pricing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Service != nil {
		pricing.Service = *in.Service
	}
	if in.Description != nil {
		pricing.Description = *in.Description
	}
	if in.RatePerHour != nil {
		pricing.RatePerHour = round2(*in.RatePerHour)
	}
	if in.EstimatedHours != nil {
		pricing.EstimatedHours = round2(*in.EstimatedHours)
	}

	if err := s.repo.Update(ctx, pricing); err != nil {
		return nil, err
	}
	pricing.ComputeTotalCost()
	return pricing, nil
}

func (s *service) DeletePricing(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
