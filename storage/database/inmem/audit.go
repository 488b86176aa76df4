package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/audit"
)

type auditRepository struct {
	db *DB
}

var _ audit.Repository = (*auditRepository)(nil)

func NewAuditRepository(db *DB) audit.Repository {
	return &auditRepository{db: db}
}

func (repo *auditRepository) CreateLog(entry audit.Entry) (audit.Entry, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if entry.ID == "" {
		entry.ID = repo.db.nextID(seqLog)
	}
	repo.db.auditLogs[entry.ID] = &entry
	return entry, nil
}

// QueryAllLogs returns newest first, matching the admin dashboard order.
func (repo *auditRepository) QueryAllLogs() ([]audit.Entry, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	logs := make([]audit.Entry, 0, len(repo.db.auditLogs))
	for _, entry := range repo.db.auditLogs {
		logs = append(logs, *entry)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID > logs[j].ID })
	return logs, nil
}
