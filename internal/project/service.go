package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	CreateProject(ctx context.Context, in CreateInput) (*Project, error)
	GetAllProjects(ctx context.Context) ([]Project, error)
	GetProjectByID(ctx context.Context, id int) (*Project, error)
	UpdateProject(ctx context.Context, id int, in UpdateInput) (*Project, error)
	DeleteProject(ctx context.Context, id int) error
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

func (s *service) CreateProject(ctx context.Context, in CreateInput) (*Project, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	project := &Project{
		Title:            in.Title,
		Description:      in.Description,
		StartData:        in.StartData,
		EndData:          in.EndData,
		URL:              in.URL,
		Repository:       in.Repository,
		TechnologiesUsed: in.TechnologiesUsed,
		File:             in.File,
		Image:            in.Image,
	}
	return s.repo.Create(ctx, project)
}

func (s *service) GetAllProjects(ctx context.Context) ([]Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetProjectByID(ctx context.Context, id int) (*Project, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProject(ctx context.Context, id int, in UpdateInput) (*Project, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.StartData != nil {
		project.StartData = *in.StartData
	}
	if in.EndData != nil {
		project.EndData = in.EndData
	}
	if in.URL != nil {
		project.URL = in.URL
	}
	if in.Repository != nil {
		project.Repository = in.Repository
	}
	if in.TechnologiesUsed != nil {
		project.TechnologiesUsed = in.TechnologiesUsed
	}
	if in.File != nil {
		project.File = in.File
	}
	if in.Image != nil {
		project.Image = in.Image
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
