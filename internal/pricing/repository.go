package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, pricing *Pricing) (*Pricing, error)
	GetAll(ctx context.Context) ([]Pricing, error)
	GetByID(ctx context.Context, id int) (*Pricing, error)
	Update(ctx context.Context, pricing *Pricing) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pricing *Pricing) (*Pricing, error) {
	_, err := r.db.NewInsert().Model(pricing).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return pricing, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Pricing, error) {
	var pricings []Pricing
	err := r.db.NewSelect().Model(&pricings).Order("id ASC").Scan(ctx)
	return pricings, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Pricing, error) {
	pricing := new(Pricing)
	err := r.db.NewSelect().Model(pricing).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrPricingNotFound, id)
		}
		return nil, err
	}
	return pricing, nil
}

func (r *repository) Update(ctx context.Context, pricing *Pricing) error {
	result, err := r.db.NewUpdate().Model(pricing).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrPricingNotFound, pricing.ID)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	pricing := &Pricing{ID: id}
	result, err := r.db.NewDelete().Model(pricing).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrPricingNotFound, id)
	}
	return nil
}
