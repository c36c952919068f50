package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	GetAll(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, project *Project) (*Project, error) {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.db.NewInsert().Model(project).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetAll returns projects newest-created-first, matching the public site,
// regardless of start_data.
func (r *repository) GetAll(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.db.NewSelect().
		Model(&projects).
		Order("created_at DESC").
		Order("id DESC").
		Scan(ctx)
	return projects, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Project, error) {
	project := new(Project)
	err := r.db.NewSelect().Model(project).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
		}
		return nil, err
	}
	return project, nil
}

func (r *repository) Update(ctx context.Context, project *Project) error {
	project.UpdatedAt = time.Now().UTC()

	result, err := r.db.NewUpdate().
		Model(project).
		WherePK().
		ExcludeColumn("created_at").
		Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, project.ID)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	project := &Project{ID: id}
	result, err := r.db.NewDelete().Model(project).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrProjectNotFound, id)
	}
	return nil
}
