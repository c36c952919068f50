package skill

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, skill *Skill) (*Skill, error)
	GetAll(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int) (*Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, skill *Skill) (*Skill, error) {
	_, err := r.db.NewInsert().Model(skill).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	err := r.db.NewSelect().Model(&skills).Order("id ASC").Scan(ctx)
	return skills, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Skill, error) {
	skill := new(Skill)
	err := r.db.NewSelect().Model(skill).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrSkillNotFound, id)
		}
		return nil, err
	}
	return skill, nil
}

func (r *repository) Update(ctx context.Context, skill *Skill) error {
	result, err := r.db.NewUpdate().Model(skill).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrSkillNotFound, skill.ID)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	skill := &Skill{ID: id}
	result, err := r.db.NewDelete().Model(skill).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrSkillNotFound, id)
	}
	return nil
}
