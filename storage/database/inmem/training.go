package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/training"
)

type trainingRepository struct {
	db *DB
}

var _ training.Repository = (*trainingRepository)(nil)

func NewTrainingRepository(db *DB) training.Repository {
	return &trainingRepository{db: db}
}

func (repo *trainingRepository) CreateEvent(evt training.Event) (training.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if evt.ID == "" {
		evt.ID = repo.db.nextID(seqEvent)
	}
	repo.db.events[evt.ID] = &evt
	return evt, nil
}

func (repo *trainingRepository) QueryAllEvents() ([]training.Event, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	events := make([]training.Event, 0, len(repo.db.events))
	for _, evt := range repo.db.events {
		events = append(events, *evt)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (repo *trainingRepository) GetEventByID(id string) (training.Event, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if evt, ok := repo.db.events[id]; ok {
		return *evt, nil
	}
	return training.Event{}, training.ErrEventNotFound
}

func (repo *trainingRepository) UpdateEvent(id string, ue training.UpdateEvent) (training.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	evt, ok := repo.db.events[id]
	if !ok {
		return training.Event{}, training.ErrEventNotFound
	}

	// only save set fields
	if ue.Title != nil {
		evt.Title = *ue.Title
	}
	if ue.Date != nil {
		evt.Date = *ue.Date
	}
	if ue.Time != nil {
		evt.Time = *ue.Time
	}
	if ue.Campus != nil {
		evt.Campus = *ue.Campus
	}
	if ue.Topic != nil {
		evt.Topic = *ue.Topic
	}
	if ue.Status != nil {
		evt.Status = *ue.Status
	}
	if ue.Capacity != nil {
		evt.Capacity = *ue.Capacity
	}
	if ue.RegistrationDeadline != nil {
		evt.RegistrationDeadline = *ue.RegistrationDeadline
	}
	if ue.Color != nil {
		evt.Color = *ue.Color
	}
	return *evt, nil
}

func (repo *trainingRepository) DeleteEvent(id string) (training.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	evt, ok := repo.db.events[id]
	if !ok {
		return training.Event{}, training.ErrEventNotFound
	}
	delete(repo.db.events, id)
	return *evt, nil
}

// RegisterAttendance appends the attendance row and bumps the event's
// enrolled counter under one lock acquisition, so no reader can observe the
// row without the counter or vice versa.
func (repo *trainingRepository) RegisterAttendance(atd training.Attendance) (training.Attendance, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if atd.ID == "" {
		atd.ID = repo.db.nextID(seqAttendance)
	}
	repo.db.attendance[atd.ID] = &atd

	if evt, ok := repo.db.events[atd.EventID]; ok {
		evt.Enrolled++
	}
	return atd, nil
}

func (repo *trainingRepository) FilterAttendanceByTeacher(teacherID string) ([]training.Attendance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	atds := make([]training.Attendance, 0)
	for _, atd := range repo.db.attendance {
		if atd.TeacherID == teacherID {
			atds = append(atds, *atd)
		}
	}
	sort.Slice(atds, func(i, j int) bool { return atds[i].ID < atds[j].ID })
	return atds, nil
}

func (repo *trainingRepository) GetAttendanceByID(id string) (training.Attendance, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if atd, ok := repo.db.attendance[id]; ok {
		return *atd, nil
	}
	return training.Attendance{}, training.ErrAttendanceNotFound
}

func (repo *trainingRepository) MarkAttendance(id string, attended bool) (training.Attendance, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	atd, ok := repo.db.attendance[id]
	if !ok {
		return training.Attendance{}, training.ErrAttendanceNotFound
	}
	atd.Attended = attended
	return *atd, nil
}
