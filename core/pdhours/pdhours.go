package pdhours

import "github.com/pkg/errors"

// Activity types
const (
	ActivityCourse      = "Course"
	ActivityTraining    = "Training"
	ActivityWorkshop    = "Workshop"
	ActivityObservation = "Observation"
)

// Record statuses
const (
	StatusCompleted       = "Completed"
	StatusInProgress      = "In Progress"
	StatusPendingApproval = "Pending Approval"
)

var ErrNotFound = errors.New("pd hours record not found")

// Record is credited professional-development time for a teacher. Records
// are seed data in the current flows; no user action mutates them.
type Record struct {
	ID           string `json:"id"`
	TeacherID    string `json:"teacherId"`
	ActivityType string `json:"activityType"`
	ActivityID   string `json:"activityId"`
	ActivityName string `json:"activityName"`
	Hours        int    `json:"hours"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}

type (
	Repository interface {
		FilterRecordsByTeacher(teacherID string) ([]Record, error)
	}

	Service struct {
		repo   Repository
		target int
	}
)

func NewService(repo Repository, target int) *Service {
	return &Service{repo: repo, target: target}
}

func (svc *Service) ByTeacher(teacherID string) ([]Record, error) {
	return svc.repo.FilterRecordsByTeacher(teacherID)
}

// TotalForTeacher sums the hours of the teacher's Completed records. It is
// pure and recomputed on every call.
func (svc *Service) TotalForTeacher(teacherID string) (int, error) {
	records, err := svc.repo.FilterRecordsByTeacher(teacherID)
	if err != nil {
		return 0, err
	}
	var total int
	for _, rec := range records {
		if rec.Status == StatusCompleted {
			total += rec.Hours
		}
	}
	return total, nil
}

// Target is the fixed PD-hour goal every teacher accumulates toward.
func (svc *Service) Target() int {
	return svc.target
}
