package pricing

import (
	"math"

	"github.com/uptrace/bun"
)

type Pricing struct {
	bun.BaseModel `bun:"table:pricings,alias:pr"`

	ID             int     `bun:"id,pk,autoincrement" json:"id"`
	Service        string  `bun:"service,notnull" json:"service"`
	Description    string  `bun:"description,notnull" json:"description"`
	RatePerHour    float64 `bun:"rate_per_hour,notnull" json:"rate_per_hour"`
	EstimatedHours float64 `bun:"estimated_hours,notnull" json:"estimated_hours"`

	// TotalCost is derived from rate_per_hour and estimated_hours on every
	// read. It is never stored.
	TotalCost float64 `bun:"-" json:"total_cost"`
}

// ComputeTotalCost refreshes the derived total, rounded to 2 fractional digits.
func (p *Pricing) ComputeTotalCost() {
	p.TotalCost = round2(p.RatePerHour * p.EstimatedHours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Decimal fields use pointers so that an explicit 0 survives the required check.
type CreateInput struct {
	Service        string   `json:"service" validate:"required,max=100"`
	Description    string   `json:"description" validate:"required"`
	RatePerHour    *float64 `json:"rate_per_hour" validate:"required,gte=0"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"required,gte=0"`
}

type UpdateInput struct {
	Service        *string  `json:"service" validate:"omitempty,max=100"`
	Description    *string  `json:"description"`
	RatePerHour    *float64 `json:"rate_per_hour" validate:"omitempty,gte=0"`
	EstimatedHours *float64 `json:"estimated_hours" validate:"omitempty,gte=0"`
}
