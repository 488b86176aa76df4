package observation

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound   = errors.New("observation not found")
	ErrNotTeacher = errors.New("only the observed teacher may reflect")
)

type (
	Repository interface {
		CreateObservation(obs Observation) (Observation, error)
		QueryAllObservations() ([]Observation, error)
		GetObservationByID(id string) (Observation, error)
		FilterObservationsByTeacher(teacherID string) ([]Observation, error)
		FilterObservationsByObserver(observerID string) ([]Observation, error)
		UpdateObservation(id string, uo UpdateObservation) (Observation, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(no NewObservation) (Observation, error) {
	obs, err := svc.repo.CreateObservation(Observation{
		TeacherID:    no.TeacherID,
		TeacherName:  no.TeacherName,
		ObserverID:   no.ObserverID,
		ObserverName: no.ObserverName,
		Date:         no.Date,
		Domain:       no.Domain,
		Score:        no.Score,
		Feedback:     no.Feedback,
		Tags:         no.Tags,
		Status:       StatusPending,
	})
	if err != nil {
		return Observation{}, errors.Wrap(err, "creating observation")
	}
	return obs, nil
}

func (svc *Service) QueryAll() ([]Observation, error) {
	return svc.repo.QueryAllObservations()
}

func (svc *Service) GetByID(id string) (Observation, error) {
	return svc.repo.GetObservationByID(id)
}

func (svc *Service) ByTeacher(teacherID string) ([]Observation, error) {
	return svc.repo.FilterObservationsByTeacher(teacherID)
}

func (svc *Service) ByObserver(observerID string) ([]Observation, error) {
	return svc.repo.FilterObservationsByObserver(observerID)
}

// Update merges set fields into the observation. A missing ID is absorbed
// as a silent no-op, per the store contract.
func (svc *Service) Update(id string, uo UpdateObservation) (Observation, error) {
	obs, err := svc.repo.UpdateObservation(id, uo)
	if err != nil {
		if err == ErrNotFound {
			return Observation{}, nil
		}
		return Observation{}, errors.Wrap(err, "updating observation")
	}
	return obs, nil
}

// SaveReflection moves the observation to its terminal Reflected status.
// Only the observed teacher may reflect, and an empty reflection leaves the
// record untouched. The transition is one-way; no reversal is modeled.
func (svc *Service) SaveReflection(id, teacherID, reflection string) (Observation, error) {
	if reflection == "" {
		return svc.repo.GetObservationByID(id)
	}

	obs, err := svc.repo.GetObservationByID(id)
	if err != nil {
		return Observation{}, err
	}
	if obs.TeacherID != teacherID {
		return Observation{}, ErrNotTeacher
	}

	status := StatusReflected
	updated, err := svc.repo.UpdateObservation(id, UpdateObservation{
		Status:     &status,
		Reflection: &reflection,
	})
	if err != nil {
		return Observation{}, errors.Wrap(err, "saving reflection")
	}
	return updated, nil
}
