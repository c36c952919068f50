package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	CreateProfile(ctx context.Context, in CreateInput) (*Profile, error)
	GetAllProfiles(ctx context.Context) ([]Profile, error)
	GetProfileByID(ctx context.Context, id int) (*Profile, error)
	UpdateProfile(ctx context.Context, id int, in UpdateInput) (*Profile, error)
	DeleteProfile(ctx context.Context, id int) error
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

func (s *service) CreateProfile(ctx context.Context, in CreateInput) (*Profile, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	profile := &Profile{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Instagram:   in.Instagram,
		Github:      in.Github,
		Linkedin:    in.Linkedin,
		Telegram:    in.Telegram,
		Education:   in.Education,
		WorkHistory: in.WorkHistory,
	}
	return s.repo.Create(ctx, profile)
}

func (s *service) GetAllProfiles(ctx context.Context) ([]Profile, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetProfileByID(ctx context.Context, id int) (*Profile, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id int, in UpdateInput) (*Profile, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Look up first so a missing id fails before anything is applied.
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		profile.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		profile.LastName = *in.LastName
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Instagram != nil {
		profile.Instagram = in.Instagram
	}
	if in.Github != nil {
		profile.Github = in.Github
	}
	if in.Linkedin != nil {
		profile.Linkedin = in.Linkedin
	}
	if in.Telegram != nil {
		profile.Telegram = in.Telegram
	}
	if in.Education != nil {
		profile.Education = in.Education
	}
	if in.WorkHistory != nil {
		profile.WorkHistory = in.WorkHistory
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) DeleteProfile(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
