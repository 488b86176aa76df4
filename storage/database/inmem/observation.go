package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/observation"
)

type observationRepository struct {
	db *DB
}

var _ observation.Repository = (*observationRepository)(nil)

func NewObservationRepository(db *DB) observation.Repository {
	return &observationRepository{db: db}
}

// query must be called with db.mu held.
func (repo *observationRepository) query() []observation.Observation {
	obss := make([]observation.Observation, 0, len(repo.db.observations))
	for _, o := range repo.db.observations {
		obss = append(obss, *o)
	}
	sort.Slice(obss, func(i, j int) bool { return obss[i].ID < obss[j].ID })
	return obss
}

func (repo *observationRepository) CreateObservation(obs observation.Observation) (observation.Observation, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if obs.ID == "" {
		obs.ID = repo.db.nextID(seqObservation)
	}
	repo.db.observations[obs.ID] = &obs
	return obs, nil
}

func (repo *observationRepository) QueryAllObservations() ([]observation.Observation, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.query(), nil
}

func (repo *observationRepository) GetObservationByID(id string) (observation.Observation, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if obs, ok := repo.db.observations[id]; ok {
		return *obs, nil
	}
	return observation.Observation{}, observation.ErrNotFound
}

func (repo *observationRepository) FilterObservationsByTeacher(teacherID string) ([]observation.Observation, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	obss := make([]observation.Observation, 0)
	for _, obs := range repo.query() {
		if obs.TeacherID == teacherID {
			obss = append(obss, obs)
		}
	}
	return obss, nil
}

func (repo *observationRepository) FilterObservationsByObserver(observerID string) ([]observation.Observation, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	obss := make([]observation.Observation, 0)
	for _, obs := range repo.query() {
		if obs.ObserverID == observerID {
			obss = append(obss, obs)
		}
	}
	return obss, nil
}

func (repo *observationRepository) UpdateObservation(id string, uo observation.UpdateObservation) (observation.Observation, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	obs, ok := repo.db.observations[id]
	if !ok {
		return observation.Observation{}, observation.ErrNotFound
	}

	// only save set fields
	if uo.Date != nil {
		obs.Date = *uo.Date
	}
	if uo.Domain != nil {
		obs.Domain = *uo.Domain
	}
	if uo.Score != nil {
		obs.Score = *uo.Score
	}
	if uo.Feedback != nil {
		obs.Feedback = *uo.Feedback
	}
	if uo.Tags != nil {
		obs.Tags = *uo.Tags
	}
	if uo.Status != nil {
		obs.Status = *uo.Status
	}
	if uo.Reflection != nil {
		obs.Reflection = *uo.Reflection
	}
	return *obs, nil
}
