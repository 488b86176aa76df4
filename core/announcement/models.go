package announcement

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Announcement types
const (
	TypeGeneral  = "General"
	TypeUrgent   = "Urgent"
	TypeAcademic = "Academic"
	TypeHoliday  = "Holiday"
	TypeRegister = "Register"
)

// Announcement is a network-wide notice shown on the public landing page
// until its expiry date (if any) passes.
type Announcement struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Duration   int    `json:"duration,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// NewAnnouncement contains information needed to publish an announcement.
// Duration is in days; zero means the announcement never expires.
type NewAnnouncement struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=General Urgent Academic Holiday Register"`
	Duration int    `json:"duration" validate:"omitempty,min=0"`
}

func (na *NewAnnouncement) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	return validate.Struct(na)
}

type UpdateAnnouncement struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Type     *string `json:"type" validate:"omitempty,oneof=General Urgent Academic Holiday Register"`
	Duration *int    `json:"duration" validate:"omitempty,min=0"`
}

func (ua *UpdateAnnouncement) Validate(validate *validator.Validate) error {
	return validate.Struct(ua)
}
