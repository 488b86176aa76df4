package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/goal"
)

type goalRepository struct {
	db *DB
}

var _ goal.Repository = (*goalRepository)(nil)

func NewGoalRepository(db *DB) goal.Repository {
	return &goalRepository{db: db}
}

func (repo *goalRepository) CreateGoal(g goal.Goal) (goal.Goal, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if g.ID == "" {
		g.ID = repo.db.nextID(seqGoal)
	}
	repo.db.goals[g.ID] = &g
	return g, nil
}

func (repo *goalRepository) QueryAllGoals() ([]goal.Goal, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	goals := make([]goal.Goal, 0, len(repo.db.goals))
	for _, g := range repo.db.goals {
		goals = append(goals, *g)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

func (repo *goalRepository) FilterGoalsByTeacher(teacherID string) ([]goal.Goal, error) {
	all, err := repo.QueryAllGoals()
	if err != nil {
		return nil, err
	}
	goals := make([]goal.Goal, 0)
	for _, g := range all {
		if g.TeacherID == teacherID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (repo *goalRepository) UpdateGoal(id string, ug goal.UpdateGoal) (goal.Goal, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	g, ok := repo.db.goals[id]
	if !ok {
		return goal.Goal{}, goal.ErrNotFound
	}

	// only save set fields
	if ug.Title != nil {
		g.Title = *ug.Title
	}
	if ug.Description != nil {
		g.Description = *ug.Description
	}
	if ug.Target != nil {
		g.Target = *ug.Target
	}
	if ug.Progress != nil {
		g.Progress = *ug.Progress
	}
	if ug.Status != nil {
		g.Status = *ug.Status
	}
	return *g, nil
}
