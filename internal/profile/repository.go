package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	GetByID(ctx context.Context, id int) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, profile *Profile) (*Profile, error) {
	_, err := r.db.NewInsert().Model(profile).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	err := r.db.NewSelect().Model(&profiles).Order("id ASC").Scan(ctx)
	return profiles, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Profile, error) {
	profile := new(Profile)
	err := r.db.NewSelect().Model(profile).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrProfileNotFound, id)
		}
		return nil, err
	}
	return profile, nil
}

func (r *repository) Update(ctx context.Context, profile *Profile) error {
	result, err := r.db.NewUpdate().Model(profile).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrProfileNotFound, profile.ID)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	profile := &Profile{ID: id}
	result, err := r.db.NewDelete().Model(profile).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrProfileNotFound, id)
	}
	return nil
}
