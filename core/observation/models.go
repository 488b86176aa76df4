package observation

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Lifecycle statuses. Acknowledged is modeled in data but no flow currently
// transitions into it.
const (
	StatusPending      = "Pending"
	StatusAcknowledged = "Acknowledged"
	StatusReflected    = "Reflected"
)

// Observation is a structured evaluation of a teacher's classroom
// performance by a school leader or admin, scored 0-5.
type Observation struct {
	ID           string   `json:"id"`
	TeacherID    string   `json:"teacherId"`
	TeacherName  string   `json:"teacherName"`
	ObserverID   string   `json:"observerId"`
	ObserverName string   `json:"observerName"`
	Date         string   `json:"date"`
	Domain       string   `json:"domain"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
	Reflection   string   `json:"reflection,omitempty"`
}

// NewObservation contains information needed to record a new Observation.
// Status is not accepted from callers; every observation starts Pending.
type NewObservation struct {
	TeacherID    string   `json:"teacherId" validate:"required"`
	TeacherName  string   `json:"teacherName" validate:"required"`
	ObserverID   string   `json:"observerId" validate:"required"`
	ObserverName string   `json:"observerName" validate:"required"`
	Date         string   `json:"date" validate:"required"`
	Domain       string   `json:"domain" validate:"required"`
	Score        float64  `json:"score" validate:"obscore"`
	Feedback     string   `json:"feedback" validate:"required"`
	Tags         []string `json:"tags"`
}

func (no *NewObservation) Validate(validate *validator.Validate) error {
	no.Domain = core.CleanString(no.Domain)
	no.Feedback = core.CleanString(no.Feedback)
	return validate.Struct(no)
}

// UpdateObservation defines partial updates; nil fields are left untouched.
type UpdateObservation struct {
	Date       *string   `json:"date"`
	Domain     *string   `json:"domain"`
	Score      *float64  `json:"score" validate:"omitempty,obscore"`
	Feedback   *string   `json:"feedback"`
	Tags       *[]string `json:"tags"`
	Status     *string   `json:"status" validate:"omitempty,oneof=Pending Acknowledged Reflected"`
	Reflection *string   `json:"reflection"`
}

func (uo *UpdateObservation) Validate(validate *validator.Validate) error {
	return validate.Struct(uo)
}

// Reflection is the teacher-authored response required to reach the
// terminal Reflected status. An empty reflection is not rejected; the
// service leaves the record untouched.
type Reflection struct {
	Reflection string `json:"reflection"`
}

func (r *Reflection) Validate(validate *validator.Validate) error {
	r.Reflection = core.CleanString(r.Reflection)
	return validate.Struct(r)
}
