package training

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Event statuses
const (
	StatusUpcoming  = "Upcoming"
	StatusOpen      = "Open"
	StatusAttended  = "Attended"
	StatusCompleted = "Completed"
)

// AllCampuses scopes an event to every physical school location.
const AllCampuses = "All Campuses"

type Event struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Campus               string `json:"campus"`
	Topic                string `json:"topic"`
	Status               string `json:"status"`
	Capacity             int    `json:"capacity"`
	Enrolled             int    `json:"enrolled"`
	RegistrationDeadline string `json:"registrationDeadline"`
	Color                string `json:"color"`
}

// Attendance is one registration row per teacher per event. attended flips
// true through a separate confirmation once the event date has passed.
type Attendance struct {
	ID               string `json:"id"`
	EventID          string `json:"eventId"`
	TeacherID        string `json:"teacherId"`
	RegistrationDate string `json:"registrationDate"`
	Attended         bool   `json:"attended"`
}

type NewEvent struct {
	Title                string `json:"title" validate:"required"`
	Date                 string `json:"date" validate:"required"`
	Time                 string `json:"time" validate:"required"`
	Campus               string `json:"campus" validate:"required"`
	Topic                string `json:"topic" validate:"required"`
	Status               string `json:"status" validate:"omitempty,oneof=Upcoming Open Attended Completed"`
	Capacity             int    `json:"capacity" validate:"required,min=1"`
	RegistrationDeadline string `json:"registrationDeadline" validate:"required"`
	Color                string `json:"color"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Topic = core.CleanString(ne.Topic)
	return validate.Struct(ne)
}

type UpdateEvent struct {
	Title                *string `json:"title"`
	Date                 *string `json:"date"`
	Time                 *string `json:"time"`
	Campus               *string `json:"campus"`
	Topic                *string `json:"topic"`
	Status               *string `json:"status" validate:"omitempty,oneof=Upcoming Open Attended Completed"`
	Capacity             *int    `json:"capacity" validate:"omitempty,min=1"`
	RegistrationDeadline *string `json:"registrationDeadline"`
	Color                *string `json:"color"`
}

func (ue *UpdateEvent) Validate(validate *validator.Validate) error {
	return validate.Struct(ue)
}

// NewAttendance is a teacher registering for an open event.
type NewAttendance struct {
	EventID   string `json:"eventId" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
}

func (na *NewAttendance) Validate(validate *validator.Validate) error {
	return validate.Struct(na)
}

type MarkAttendanceRequest struct {
	Attended bool `json:"attended"`
}
