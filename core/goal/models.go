package goal

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Goal statuses
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Goal is a development target set for a teacher, by a school leader or by
// the teacher themselves ("Self").
type Goal struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacherId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Progress    int    `json:"progress"`
	SetBy       string `json:"setBy"`
	SetByID     string `json:"setById"`
	CreatedDate string `json:"createdDate"`
	Status      string `json:"status"`
}

type NewGoal struct {
	TeacherID   string `json:"teacherId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Target      string `json:"target" validate:"required"`
	SetBy       string `json:"setBy" validate:"required"`
	SetByID     string `json:"setById" validate:"required"`
}

func (ng *NewGoal) Validate(validate *validator.Validate) error {
	ng.Title = core.CleanString(ng.Title)
	return validate.Struct(ng)
}

type UpdateGoal struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Target      *string `json:"target"`
	Progress    *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	Status      *string `json:"status" validate:"omitempty,oneof=Active Completed Cancelled"`
}

func (ug *UpdateGoal) Validate(validate *validator.Validate) error {
	return validate.Struct(ug)
}
