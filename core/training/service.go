package training

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core/audit"
)

var (
	ErrEventNotFound      = errors.New("training event not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

type (
	Repository interface {
		CreateEvent(evt Event) (Event, error)
		QueryAllEvents() ([]Event, error)
		GetEventByID(id string) (Event, error)
		UpdateEvent(id string, ue UpdateEvent) (Event, error)
		DeleteEvent(id string) (Event, error)

		// RegisterAttendance appends the attendance row and increments the
		// matching event's enrolled counter as one atomic write; no reader
		// may observe one without the other.
		RegisterAttendance(atd Attendance) (Attendance, error)
		FilterAttendanceByTeacher(teacherID string) ([]Attendance, error)
		GetAttendanceByID(id string) (Attendance, error)
		MarkAttendance(id string, attended bool) (Attendance, error)
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

func (svc *Service) CreateEvent(actor string, ne NewEvent) (Event, error) {
	status := ne.Status
	if status == "" {
		status = StatusUpcoming
	}
	evt, err := svc.repo.CreateEvent(Event{
		Title:                ne.Title,
		Date:                 ne.Date,
		Time:                 ne.Time,
		Campus:               ne.Campus,
		Topic:                ne.Topic,
		Status:               status,
		Capacity:             ne.Capacity,
		Enrolled:             0,
		RegistrationDeadline: ne.RegistrationDeadline,
		Color:                ne.Color,
	})
	if err != nil {
		return Event{}, errors.Wrap(err, "creating training event")
	}
	svc.rec.Record("Training Created", actor, evt.Title, audit.TypeManagement)
	return evt, nil
}

func (svc *Service) Events() ([]Event, error) {
	return svc.repo.QueryAllEvents()
}

// EventsByCampus returns the events visible to a campus: its own plus those
// scoped to all campuses. Passing AllCampuses returns everything.
func (svc *Service) EventsByCampus(campus string) ([]Event, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return nil, err
	}
	if campus == AllCampuses {
		return events, nil
	}
	matches := make([]Event, 0, len(events))
	for _, evt := range events {
		if evt.Campus == campus || evt.Campus == AllCampuses {
			matches = append(matches, evt)
		}
	}
	return matches, nil
}

func (svc *Service) GetEventByID(id string) (Event, error) {
	return svc.repo.GetEventByID(id)
}

// UpdateEvent merges set fields; a missing ID is a silent no-op.
func (svc *Service) UpdateEvent(actor, id string, ue UpdateEvent) (Event, error) {
	evt, err := svc.repo.UpdateEvent(id, ue)
	if err != nil {
		if err == ErrEventNotFound {
			return Event{}, nil
		}
		return Event{}, errors.Wrap(err, "updating training event")
	}
	svc.rec.Record("Training Updated", actor, id, audit.TypeManagement)
	return evt, nil
}

// DeleteEvent removes the event; attendance rows referencing it remain.
func (svc *Service) DeleteEvent(actor, id string) error {
	if _, err := svc.repo.DeleteEvent(id); err != nil {
		if err == ErrEventNotFound {
			return nil
		}
		return errors.Wrap(err, "deleting training event")
	}
	svc.rec.Record("Training Deleted", actor, id, audit.TypeManagement)
	return nil
}

func (svc *Service) AttendanceByTeacher(teacherID string) ([]Attendance, error) {
	return svc.repo.FilterAttendanceByTeacher(teacherID)
}

// Register records a teacher's registration for an event and bumps the
// event's enrolled counter by exactly 1. Registering twice for the same
// event yields two rows and two increments; duplicates are not prevented.
// There is no decrement path.
func (svc *Service) Register(actor string, na NewAttendance) (Attendance, error) {
	atd, err := svc.repo.RegisterAttendance(Attendance{
		EventID:          na.EventID,
		TeacherID:        na.TeacherID,
		RegistrationDate: svc.nowFunc().Format("2006-01-02"),
		Attended:         false,
	})
	if err != nil {
		return Attendance{}, errors.Wrap(err, "registering attendance")
	}
	svc.rec.Record("Training Registered", actor, na.EventID, audit.TypeProfessional)
	return atd, nil
}

// MarkAttendance flips the attended flag on one attendance record. It does
// not touch the event's enrolled counter and does not credit PD hours.
func (svc *Service) MarkAttendance(id string, attended bool) (Attendance, error) {
	atd, err := svc.repo.MarkAttendance(id, attended)
	if err != nil {
		if err == ErrAttendanceNotFound {
			return Attendance{}, nil
		}
		return Attendance{}, errors.Wrap(err, "marking attendance")
	}
	return atd, nil
}
