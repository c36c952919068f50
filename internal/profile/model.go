package profile

import "github.com/uptrace/bun"

// Profile is the site owner's "me" record. The original data model allows
// several of them, so it gets the full CRUD treatment like everything else.
type Profile struct {
	bun.BaseModel `bun:"table:me,alias:m"`

	ID          int     `bun:"id,pk,autoincrement" json:"id"`
	FirstName   string  `bun:"first_name,notnull" json:"first_name"`
	LastName    string  `bun:"last_name,notnull" json:"last_name"`
	Email       string  `bun:"email,notnull" json:"email"`
	Phone       string  `bun:"phone,notnull" json:"phone"`
	Instagram   *string `bun:"instagram" json:"instagram"`
	Github      *string `bun:"github" json:"github"`
	Linkedin    *string `bun:"linkedin" json:"linkedin"`
	Telegram    *string `bun:"telegram" json:"telegram"`
	Education   *string `bun:"education" json:"education"`
	WorkHistory *string `bun:"work_history" json:"work_history"`
}

// CreateInput carries all fields accepted when creating a profile.
type CreateInput struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,max=50"`
	Instagram   *string `json:"instagram" validate:"omitempty,url,max=150"`
	Github      *string `json:"github" validate:"omitempty,url,max=150"`
	Linkedin    *string `json:"linkedin" validate:"omitempty,url,max=150"`
	Telegram    *string `json:"telegram" validate:"omitempty,url,max=150"`
	Education   *string `json:"education"`
	WorkHistory *string `json:"work_history"`
}

// UpdateInput carries every mutable field as an optional slot. A nil field
// keeps the stored value; a non-nil field is applied, even when it holds the
// zero value, so clearing a text field to "" is honored.
type UpdateInput struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Instagram   *string `json:"instagram" validate:"omitempty,url,max=150"`
	Github      *string `json:"github" validate:"omitempty,url,max=150"`
	Linkedin    *string `json:"linkedin" validate:"omitempty,url,max=150"`
	Telegram    *string `json:"telegram" validate:"omitempty,url,max=150"`
	Education   *string `json:"education"`
	WorkHistory *string `json:"work_history"`
}
