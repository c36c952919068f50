package skill

import "github.com/uptrace/bun"

type Skill struct {
	bun.BaseModel `bun:"table:skills,alias:s"`

	ID         int      `bun:"id,pk,autoincrement" json:"id"`
	Category   Category `bun:"category,notnull" json:"category"`
	Name       string   `bun:"name,notnull" json:"name"`
	Percentage int      `bun:"percentage,notnull" json:"percentage"`
}

type CreateInput struct {
	Category   Category `json:"category" validate:"required"`
	Name       string   `json:"name" validate:"required,max=50"`
	Percentage int      `json:"percentage" validate:"min=0,max=100"`
}

type UpdateInput struct {
	Category   *Category `json:"category"`
	Name       *string   `json:"name" validate:"omitempty,max=50"`
	Percentage *int      `json:"percentage" validate:"omitempty,min=0,max=100"`
}
