package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidCategory = errors.New("invalid skill category")
)

type Service interface {
	CreateSkill(ctx context.Context, in CreateInput) (*Skill, error)
	GetAllSkills(ctx context.Context) ([]Skill, error)
	GetSkillByID(ctx context.Context, id int) (*Skill, error)
	UpdateSkill(ctx context.Context, id int, in UpdateInput) (*Skill, error)
	DeleteSkill(ctx context.Context, id int) error
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

func (s *service) CreateSkill(ctx context.Context, in CreateInput) (*Skill, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}

	skill := &Skill{
		Category:   in.Category,
		Name:       in.Name,
		Percentage: in.Percentage,
	}
	return s.repo.Create(ctx, skill)
}

func (s *service) GetAllSkills(ctx context.Context) ([]Skill, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetSkillByID(ctx context.Context, id int) (*Skill, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateSkill(ctx context.Context, id int, in UpdateInput) (*Skill, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Category != nil && !in.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *in.Category)
	}

	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Category != nil {
		skill.Category = *in.Category
	}
	if in.Name != nil {
		skill.Name = *in.Name
	}
	if in.Percentage != nil {
		skill.Percentage = *in.Percentage
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *service) DeleteSkill(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
