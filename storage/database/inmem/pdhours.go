package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/pdhours"
)

type pdHoursRepository struct {
	db *DB
}

var _ pdhours.Repository = (*pdHoursRepository)(nil)

func NewPDHoursRepository(db *DB) pdhours.Repository {
	return &pdHoursRepository{db: db}
}

func (repo *pdHoursRepository) FilterRecordsByTeacher(teacherID string) ([]pdhours.Record, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	records := make([]pdhours.Record, 0)
	for _, rec := range repo.db.pdHours {
		if rec.TeacherID == teacherID {
			records = append(records, *rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}
