package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id int) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, contact *Contact) (*Contact, error) {
	contact.CreatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().Model(contact).Returning("*").Exec(ctx)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Contact, error) {
	var contacts []Contact
	err := r.db.NewSelect().Model(&contacts).Order("id ASC").Scan(ctx)
	return contacts, err
}

func (r *repository) GetByID(ctx context.Context, id int) (*Contact, error) {
	contact := new(Contact)
	err := r.db.NewSelect().Model(contact).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrContactNotFound, id)
		}
		return nil, err
	}
	return contact, nil
}

func (r *repository) Update(ctx context.Context, contact *Contact) error {
	result, err := r.db.NewUpdate().
		Model(contact).
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
		return fmt.Errorf("%w: id %d", ErrContactNotFound, contact.ID)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	contact := &Contact{ID: id}
	result, err := r.db.NewDelete().Model(contact).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrContactNotFound, id)
	}
	return nil
}
