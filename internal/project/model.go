package project

import (
	"time"

	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID               int        `bun:"id,pk,autoincrement" json:"id"`
	Title            string     `bun:"title,notnull" json:"title"`
	Description      string     `bun:"description,notnull" json:"description"`
	StartData        time.Time  `bun:"start_data,notnull" json:"start_data"`
	EndData          *time.Time `bun:"end_data" json:"end_data"`
	URL              *string    `bun:"url" json:"url"`
	Repository       *string    `bun:"repository" json:"repository"`
	TechnologiesUsed *string    `bun:"technologies_used" json:"technologies_used"`
	File             *string    `bun:"file" json:"file"`
	Image            *string    `bun:"image" json:"image"`

	// Managed by the repository: CreatedAt is written once on insert,
	// UpdatedAt on insert and on every successful update.
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// File and image are opaque references to already-uploaded media; upload
// handling lives outside this service.
type CreateInput struct {
	Title            string     `json:"title" validate:"required,max=150"`
	Description      string     `json:"description" validate:"required"`
	StartData        time.Time  `json:"start_data" validate:"required"`
	EndData          *time.Time `json:"end_data"`
	URL              *string    `json:"url" validate:"omitempty,url"`
	Repository       *string    `json:"repository" validate:"omitempty,url"`
	TechnologiesUsed *string    `json:"technologies_used" validate:"omitempty,max=100"`
	File             *string    `json:"file"`
	Image            *string    `json:"image"`
}

type UpdateInput struct {
	Title            *string    `json:"title" validate:"omitempty,max=150"`
	Description      *string    `json:"description"`
	StartData        *time.Time `json:"start_data"`
	EndData          *time.Time `json:"end_data"`
	URL              *string    `json:"url" validate:"omitempty,url"`
	Repository       *string    `json:"repository" validate:"omitempty,url"`
	TechnologiesUsed *string    `json:"technologies_used" validate:"omitempty,max=100"`
	File             *string    `json:"file"`
	Image            *string    `json:"image"`
}
