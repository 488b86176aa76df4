package training_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/training"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func newService(t *testing.T) *training.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))
	return training.NewService(inmemdb.NewTrainingRepository(db), audit.NopRecorder{})
}

func TestService_Register(t *testing.T) {
	svc := newService(t)

	evt, err := svc.GetEventByID("TRN004")
	require.NoError(t, err)
	require.Equal(t, 12, evt.Enrolled)

	atd, err := svc.Register("Damon", training.NewAttendance{EventID: "TRN004", TeacherID: "Ekya003"})
	require.NoError(t, err)
	assert.Equal(t, "ATD003", atd.ID)
	assert.False(t, atd.Attended)
	assert.NotEmpty(t, atd.RegistrationDate)

	evt, err = svc.GetEventByID("TRN004")
	require.NoError(t, err)
	assert.Equal(t, 13, evt.Enrolled)

	t.Run("duplicate registration adds a second row and increment", func(t *testing.T) {
		_, err := svc.Register("Damon", training.NewAttendance{EventID: "TRN004", TeacherID: "Ekya003"})
		require.NoError(t, err)

		evt, err := svc.GetEventByID("TRN004")
		require.NoError(t, err)
		assert.Equal(t, 14, evt.Enrolled)

		rows, err := svc.AttendanceByTeacher("Ekya003")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestService_MarkAttendance(t *testing.T) {
	svc := newService(t)

	before, err := svc.GetEventByID("TRN001")
	require.NoError(t, err)

	atd, err := svc.MarkAttendance("ATD002", true)
	require.NoError(t, err)
	assert.True(t, atd.Attended)

	// the enrolled counter is untouched
	after, err := svc.GetEventByID("TRN001")
	require.NoError(t, err)
	assert.Equal(t, before.Enrolled, after.Enrolled)

	// missing ID is a silent no-op
	noop, err := svc.MarkAttendance("ATD999", true)
	require.NoError(t, err)
	assert.Empty(t, noop.ID)
}

func TestService_EventsByCampus(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		campus  string
		wantIDs []string
	}{
		{name: "campus plus all-campuses events", campus: "City Campus", wantIDs: []string{"TRN001", "TRN002"}},
		{name: "btm", campus: "BTM Campus", wantIDs: []string{"TRN002", "TRN003"}},
		{name: "all campuses returns everything", campus: training.AllCampuses, wantIDs: []string{"TRN001", "TRN002", "TRN003", "TRN004", "TRN005"}},
		{name: "unknown campus sees only network-wide events", campus: "Nowhere", wantIDs: []string{"TRN002"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := svc.EventsByCampus(tt.campus)
			require.NoError(t, err)
			ids := make([]string, 0, len(events))
			for _, evt := range events {
				ids = append(ids, evt.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_CreateEvent_defaultsToUpcoming(t *testing.T) {
	svc := newService(t)

	evt, err := svc.CreateEvent("Mark", training.NewEvent{
		Title:                "New Workshop",
		Date:                 "2026-03-01",
		Time:                 "10:00 AM - 12:00 PM",
		Campus:               "City Campus",
		Topic:                "Pedagogy",
		Capacity:             20,
		RegistrationDeadline: "2026-02-27",
	})
	require.NoError(t, err)
	assert.Equal(t, "TRN006", evt.ID)
	assert.Equal(t, training.StatusUpcoming, evt.Status)
	assert.Equal(t, 0, evt.Enrolled)
}

func TestService_DeleteEvent_orphansAttendance(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.DeleteEvent("Mark", "TRN001"))

	_, err := svc.GetEventByID("TRN001")
	assert.Equal(t, training.ErrEventNotFound, err)

	rows, err := svc.AttendanceByTeacher("Ekya001")
	require.NoError(t, err)
	assert.Len(t, rows, 2) // ATD002 still references the deleted event
}
