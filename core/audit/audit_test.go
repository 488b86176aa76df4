package audit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	mu   sync.Mutex
	n    int
	rows []Entry
}

func (repo *fakeRepository) CreateLog(entry Entry) (Entry, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.n++
	entry.ID = "LOG001"
	repo.rows = append(repo.rows, entry)
	return entry, nil
}

func (repo *fakeRepository) QueryAllLogs() ([]Entry, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return append([]Entry(nil), repo.rows...), nil
}

func TestService_Record(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)
	svc.nowFunc = func() time.Time { return time.Date(2026, 2, 1, 14, 5, 9, 0, time.UTC) }

	svc.Record("User Created", "Mark", "New Teacher", TypeManagement)

	logs, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "User Created", logs[0].Action)
	assert.Equal(t, "Mark", logs[0].User)
	assert.Equal(t, "New Teacher", logs[0].Target)
	assert.Equal(t, TypeManagement, logs[0].Type)
	assert.Equal(t, "2/1/2026, 2:05:09 PM", logs[0].Timestamp)
}
