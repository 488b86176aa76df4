package gallery

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// MaxImageSize caps uploads at 2MB. Images arrive as URLs or data URLs, so
// the check is applied to the encoded payload at the form boundary.
const MaxImageSize = 2 << 20

// Image is a campus-media gallery entry. It carries the same expiry fields
// as announcements but no query filters on them; the landing page shows
// every image regardless of expiry.
type Image struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Cap        string `json:"cap,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

type NewImage struct {
	URL      string `json:"url" validate:"required"`
	Cap      string `json:"cap"`
	Duration int    `json:"duration" validate:"omitempty,min=0"`
}

func (ni *NewImage) Validate(validate *validator.Validate) error {
	ni.Cap = core.CleanString(ni.Cap)
	if err := validate.Struct(ni); err != nil {
		return err
	}
	if len(ni.URL) > MaxImageSize {
		return core.NewValidationError(nil, core.FieldError{Field: "url", Error: "image exceeds the 2MB size limit"})
	}
	return nil
}

type UpdateImage struct {
	URL      *string `json:"url"`
	Cap      *string `json:"cap"`
	Duration *int    `json:"duration" validate:"omitempty,min=0"`
}

func (ui *UpdateImage) Validate(validate *validator.Validate) error {
	if err := validate.Struct(ui); err != nil {
		return err
	}
	if ui.URL != nil && len(*ui.URL) > MaxImageSize {
		return core.NewValidationError(nil, core.FieldError{Field: "url", Error: "image exceeds the 2MB size limit"})
	}
	return nil
}
