package audit

import "time"

// Entry types
const (
	TypeSystem       = "System"
	TypeManagement   = "Management"
	TypeAcademic     = "Academic"
	TypeProfessional = "Professional"
)

// Entry is an append-only record of an admin-significant action.
type Entry struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	User      string `json:"user"`
	Target    string `json:"target"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

type (
	// Recorder is notified of admin-significant mutations. Keeping it an
	// interface means mutating services never embed logging concerns.
	Recorder interface {
		Record(action, user, target, entryType string)
	}

	Repository interface {
		CreateLog(entry Entry) (Entry, error)
		QueryAllLogs() ([]Entry, error)
	}

	Service struct {
		repo    Repository
		nowFunc func() time.Time // mockable
	}
)

var _ Recorder = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, nowFunc: time.Now}
}

// Record appends an audit entry. It is best-effort; failures are dropped so
// an audit problem can never fail the mutation that triggered it.
func (svc *Service) Record(action, user, target, entryType string) {
	_, _ = svc.repo.CreateLog(Entry{
		Action:    action,
		User:      user,
		Target:    target,
		Timestamp: svc.nowFunc().Format("1/2/2006, 3:04:05 PM"),
		Type:      entryType,
	})
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllLogs()
}

// NopRecorder discards all entries.
type NopRecorder struct{}

func (NopRecorder) Record(action, user, target, entryType string) {}
