package goal

import (
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("goal not found")

type (
	Repository interface {
		CreateGoal(g Goal) (Goal, error)
		QueryAllGoals() ([]Goal, error)
		FilterGoalsByTeacher(teacherID string) ([]Goal, error)
		UpdateGoal(id string, ug UpdateGoal) (Goal, error)
	}

	Service struct {
		repo    Repository
		nowFunc func() time.Time // mockable
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, nowFunc: time.Now}
}

func (svc *Service) Create(ng NewGoal) (Goal, error) {
	g, err := svc.repo.CreateGoal(Goal{
		TeacherID:   ng.TeacherID,
		Title:       ng.Title,
		Description: ng.Description,
		Target:      ng.Target,
		Progress:    0,
		SetBy:       ng.SetBy,
		SetByID:     ng.SetByID,
		CreatedDate: svc.nowFunc().Format("2006-01-02"),
		Status:      StatusActive,
	})
	if err != nil {
		return Goal{}, errors.Wrap(err, "creating goal")
	}
	return g, nil
}

func (svc *Service) QueryAll() ([]Goal, error) {
	return svc.repo.QueryAllGoals()
}

func (svc *Service) ByTeacher(teacherID string) ([]Goal, error) {
	return svc.repo.FilterGoalsByTeacher(teacherID)
}

// Update merges set fields; a missing ID is a silent no-op.
func (svc *Service) Update(id string, ug UpdateGoal) (Goal, error) {
	g, err := svc.repo.UpdateGoal(id, ug)
	if err != nil {
		if err == ErrNotFound {
			return Goal{}, nil
		}
		return Goal{}, errors.Wrap(err, "updating goal")
	}
	return g, nil
}
