package course

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
)

var (
	ErrNotFound           = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNotPublished       = errors.New("only published courses are open for enrollment")
)

type (
	Repository interface {
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		UpdateCourse(id string, uc UpdateCourse) (Course, error)
		DeleteCourse(id string) (Course, error)

		CreateEnrollment(enr Enrollment) (Enrollment, error)
		QueryAllEnrollments() ([]Enrollment, error)
		FilterEnrollmentsByTeacher(teacherID string) ([]Enrollment, error)
		UpdateEnrollment(id string, ue UpdateEnrollment) (Enrollment, error)
	}

	Service struct {
		repo    Repository
		rec     audit.Recorder
		nowFunc func() time.Time // mockable
	}
)

func NewService(repo Repository, rec audit.Recorder) *Service {
	return &Service{repo: repo, rec: rec, nowFunc: time.Now}
}

// Create adds a course. School-leader submissions await admin approval;
// admin submissions go straight to Published.
func (svc *Service) Create(actor string, nc NewCourse, byAdmin bool) (Course, error) {
	status := StatusPendingApproval
	if byAdmin {
		status = StatusPublished
	}
	crs, err := svc.repo.CreateCourse(Course{
		Title:         nc.Title,
		Category:      nc.Category,
		Hours:         nc.Hours,
		Prerequisites: nc.Prerequisites,
		Status:        status,
		Description:   nc.Description,
	})
	if err != nil {
		return Course{}, errors.Wrap(err, "creating course")
	}
	svc.rec.Record("Course Added", actor, crs.Title, audit.TypeAcademic)
	return crs, nil
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// Update merges set fields; a missing ID is a silent no-op.
func (svc *Service) Update(id string, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.UpdateCourse(id, uc)
	if err != nil {
		if err == ErrNotFound {
			return Course{}, nil
		}
		return Course{}, errors.Wrap(err, "updating course")
	}
	return crs, nil
}

// Delete removes the course; enrollments referencing it are left in place.
func (svc *Service) Delete(id string) error {
	if _, err := svc.repo.DeleteCourse(id); err != nil && err != ErrNotFound {
		return errors.Wrap(err, "deleting course")
	}
	return nil
}

// Approve publishes a pending course, opening it for teacher enrollment.
func (svc *Service) Approve(actor, id string) (Course, error) {
	status := StatusPublished
	crs, err := svc.repo.UpdateCourse(id, UpdateCourse{Status: &status})
	if err != nil {
		if err == ErrNotFound {
			return Course{}, nil
		}
		return Course{}, errors.Wrap(err, "approving course")
	}
	svc.rec.Record("Course Approved", actor, crs.Title, audit.TypeAcademic)
	return crs, nil
}

func (svc *Service) Enrollments() ([]Enrollment, error) {
	return svc.repo.QueryAllEnrollments()
}

func (svc *Service) EnrollmentsByTeacher(teacherID string) ([]Enrollment, error) {
	return svc.repo.FilterEnrollmentsByTeacher(teacherID)
}

// Enroll records a teacher's enrollment in a published course. Duplicate
// (teacher, course) enrollments are allowed.
func (svc *Service) Enroll(ne NewEnrollment) (Enrollment, error) {
	crs, err := svc.repo.GetCourseByID(ne.CourseID)
	if err != nil {
		return Enrollment{}, err
	}
	if crs.Status != StatusPublished {
		return Enrollment{}, core.NewValidationError(ErrNotPublished,
			core.FieldError{Field: "courseId", Error: ErrNotPublished.Error()})
	}

	enr, err := svc.repo.CreateEnrollment(Enrollment{
		TeacherID:      ne.TeacherID,
		CourseID:       ne.CourseID,
		EnrollmentDate: svc.nowFunc().Format("2006-01-02"),
		Progress:       0,
		Status:         EnrollmentNotStarted,
	})
	if err != nil {
		return Enrollment{}, errors.Wrap(err, "creating enrollment")
	}
	return enr, nil
}

// UpdateEnrollment merges progress/status fields; a missing ID is a silent no-op.
func (svc *Service) UpdateEnrollment(id string, ue UpdateEnrollment) (Enrollment, error) {
	enr, err := svc.repo.UpdateEnrollment(id, ue)
	if err != nil {
		if err == ErrEnrollmentNotFound {
			return Enrollment{}, nil
		}
		return Enrollment{}, errors.Wrap(err, "updating enrollment")
	}
	return enr, nil
}
