package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Course statuses
const (
	StatusDraft           = "Draft"
	StatusPendingApproval = "Pending Approval"
	StatusPublished       = "Published"
)

// Enrollment statuses
const (
	EnrollmentNotStarted = "Not Started"
	EnrollmentInProgress = "In Progress"
	EnrollmentCompleted  = "Completed"
)

type Course struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Hours         int    `json:"hours"`
	Prerequisites string `json:"prerequisites"`
	Status        string `json:"status"`
	Description   string `json:"description"`
}

// Enrollment is one row per (teacher, course) enrollment event. There is
// no uniqueness constraint; duplicate enrollments are structurally possible.
type Enrollment struct {
	ID             string `json:"id"`
	TeacherID      string `json:"teacherId"`
	CourseID       string `json:"courseId"`
	EnrollmentDate string `json:"enrollmentDate"`
	Progress       int    `json:"progress"`
	Status         string `json:"status"`
	CompletionDate string `json:"completionDate,omitempty"`
}

// NewCourse contains information needed to create a new Course. Courses
// created by a school leader start in Pending Approval; admins publish
// directly.
type NewCourse struct {
	Title         string `json:"title" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Hours         int    `json:"hours" validate:"required,min=1"`
	Prerequisites string `json:"prerequisites"`
	Description   string `json:"description"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Category = core.CleanString(nc.Category)
	return validate.Struct(nc)
}

type UpdateCourse struct {
	Title         *string `json:"title"`
	Category      *string `json:"category"`
	Hours         *int    `json:"hours" validate:"omitempty,min=1"`
	Prerequisites *string `json:"prerequisites"`
	Status        *string `json:"status" validate:"omitempty,oneof=Draft 'Pending Approval' Published"`
	Description   *string `json:"description"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	return validate.Struct(uc)
}

// NewEnrollment is a teacher confirming enrollment in a published course.
type NewEnrollment struct {
	TeacherID string `json:"teacherId" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	return validate.Struct(ne)
}

type UpdateEnrollment struct {
	Progress       *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	Status         *string `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	CompletionDate *string `json:"completionDate"`
}

func (ue *UpdateEnrollment) Validate(validate *validator.Validate) error {
	return validate.Struct(ue)
}
