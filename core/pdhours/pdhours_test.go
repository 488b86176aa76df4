package pdhours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core/pdhours"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func newService(t *testing.T) *pdhours.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))
	return pdhours.NewService(inmemdb.NewPDHoursRepository(db), 50)
}

func TestService_TotalForTeacher(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name      string
		teacherID string
		want      int
	}{
		// only Completed records count: 6 + 2, the In Progress 6 is excluded
		{name: "mixed statuses", teacherID: "Ekya001", want: 8},
		{name: "in progress only", teacherID: "Ekya002", want: 0},
		{name: "single completed", teacherID: "Ekya003", want: 7},
		{name: "pending approval only", teacherID: "Ekya004", want: 0},
		{name: "no records", teacherID: "Ekya006", want: 0},
		{name: "unknown teacher", teacherID: "NONEXISTENT", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := svc.TotalForTeacher(tt.teacherID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestService_TotalForTeacher_isRecomputed(t *testing.T) {
	svc := newService(t)

	total, err := svc.TotalForTeacher("Ekya001")
	require.NoError(t, err)

	again, err := svc.TotalForTeacher("Ekya001")
	require.NoError(t, err)
	assert.Equal(t, total, again)
}

func TestService_ByTeacher(t *testing.T) {
	svc := newService(t)

	records, err := svc.ByTeacher("Ekya001")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "PDH001", records[0].ID)

	assert.Equal(t, 50, svc.Target())
}
