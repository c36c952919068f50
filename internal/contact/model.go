package contact

import (
	"time"

	"github.com/uptrace/bun"
)

// Contact is a message left by a site visitor.
type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:c"`

	ID      int    `bun:"id,pk,autoincrement" json:"id"`
	Name    string `bun:"name,notnull" json:"name"`
	Email   string `bun:"email,notnull" json:"email"`
	Subject string `bun:"subject,notnull" json:"subject"`
	Message string `bun:"message,notnull" json:"message"`

	// CreatedAt is written once by the repository. IsRead starts false and
	// only an explicit update flips it; reads never do.
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	IsRead    bool      `bun:"is_read,notnull,default:false" json:"is_read"`
}

type CreateInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type UpdateInput struct {
	Name    *string `json:"name" validate:"omitempty,max=100"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message *string `json:"message"`
	IsRead  *bool   `json:"is_read"`
}

// ReceivedEvent is published to NATS when a visitor message arrives.
type ReceivedEvent struct {
	ContactID int    `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}
