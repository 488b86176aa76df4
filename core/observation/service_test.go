package observation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core/observation"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func newService(t *testing.T) *observation.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))
	return observation.NewService(inmemdb.NewObservationRepository(db))
}

func TestService_Create_startsPending(t *testing.T) {
	svc := newService(t)

	obs, err := svc.Create(observation.NewObservation{
		TeacherID:    "Ekya006",
		TeacherName:  "Klaus",
		ObserverID:   "EkyaH001",
		ObserverName: "Kai",
		Date:         "2026-02-01",
		Domain:       "Content Delivery",
		Score:        3.8,
		Feedback:     "Solid lesson structure.",
	})
	require.NoError(t, err)
	assert.Equal(t, "OBS007", obs.ID)
	assert.Equal(t, observation.StatusPending, obs.Status)
	assert.Empty(t, obs.Reflection)
}

func TestService_SaveReflection(t *testing.T) {
	t.Run("moves pending to reflected", func(t *testing.T) {
		svc := newService(t)

		obs, err := svc.SaveReflection("OBS002", "Ekya002", "I will add more real-world examples next term.")
		require.NoError(t, err)
		assert.Equal(t, observation.StatusReflected, obs.Status)
		assert.Equal(t, "I will add more real-world examples next term.", obs.Reflection)

		got, err := svc.GetByID("OBS002")
		require.NoError(t, err)
		assert.Equal(t, obs, got)
	})

	t.Run("empty reflection leaves the record untouched", func(t *testing.T) {
		svc := newService(t)

		obs, err := svc.SaveReflection("OBS002", "Ekya002", "")
		require.NoError(t, err)
		assert.Equal(t, observation.StatusPending, obs.Status)
		assert.Empty(t, obs.Reflection)
	})

	t.Run("only the observed teacher may reflect", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.SaveReflection("OBS002", "Ekya001", "not mine")
		assert.Equal(t, observation.ErrNotTeacher, err)

		got, err := svc.GetByID("OBS002")
		require.NoError(t, err)
		assert.Equal(t, observation.StatusPending, got.Status)
	})

	t.Run("missing observation", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.SaveReflection("OBS999", "Ekya002", "hello")
		assert.Equal(t, observation.ErrNotFound, err)
	})
}

func TestService_Update_missingIsNoop(t *testing.T) {
	svc := newService(t)

	score := 5.0
	obs, err := svc.Update("OBS999", observation.UpdateObservation{Score: &score})
	require.NoError(t, err)
	assert.Empty(t, obs.ID)
}

func TestService_filters(t *testing.T) {
	svc := newService(t)

	byTeacher, err := svc.ByTeacher("Ekya001")
	require.NoError(t, err)
	require.Len(t, byTeacher, 2)
	assert.Equal(t, "OBS001", byTeacher[0].ID)
	assert.Equal(t, "OBS004", byTeacher[1].ID)

	byObserver, err := svc.ByObserver("EkyaH002")
	require.NoError(t, err)
	require.Len(t, byObserver, 2)
	assert.Equal(t, "OBS002", byObserver[0].ID)
	assert.Equal(t, "OBS006", byObserver[1].ID)
}
