package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/user"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func newService(t *testing.T) (*user.Service, *inmemdb.DB) {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))
	return user.NewService(inmemdb.NewUserRepository(db), audit.NopRecorder{}), db
}

func TestService_Authenticate(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name      string
		email     string
		password  string
		wantOK    bool
		wantEmpID string
	}{
		{name: "valid credentials", email: "elena@ekyaschool.in", password: "pass123", wantOK: true, wantEmpID: "Ekya001"},
		{name: "email is case-insensitive", email: "ELENA@EKYASCHOOL.IN", password: "pass123", wantOK: true, wantEmpID: "Ekya001"},
		{name: "password is exact-match", email: "elena@ekyaschool.in", password: "PASS123", wantOK: false},
		{name: "wrong password", email: "elena@ekyaschool.in", password: "nope", wantOK: false},
		{name: "unknown email", email: "ghost@ekyaschool.in", password: "pass123", wantOK: false},
		{name: "empty password", email: "elena@ekyaschool.in", password: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, ok := svc.Authenticate(tt.email, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantEmpID, usr.EmpID)
			} else {
				assert.Empty(t, usr.EmpID)
			}
		})
	}
}

func TestService_Update_missingIsNoop(t *testing.T) {
	svc, _ := newService(t)

	before, err := svc.QueryAll()
	require.NoError(t, err)

	name := "Ghost"
	usr, err := svc.Update("Admin", "NONEXISTENT", user.UpdateUser{Name: &name})
	require.NoError(t, err)
	assert.Empty(t, usr.EmpID)

	after, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_Delete(t *testing.T) {
	svc, db := newService(t)

	t.Run("missing is a no-op", func(t *testing.T) {
		require.NoError(t, svc.Delete("Admin", "NONEXISTENT"))
	})

	t.Run("dependents are orphaned", func(t *testing.T) {
		require.NoError(t, svc.Delete("Admin", "Ekya001"))

		_, err := svc.GetByEmpID("Ekya001")
		assert.Equal(t, user.ErrNotFound, err)

		obs, err := inmemdb.NewObservationRepository(db).FilterObservationsByTeacher("Ekya001")
		require.NoError(t, err)
		assert.Len(t, obs, 2)

		goals, err := inmemdb.NewGoalRepository(db).FilterGoalsByTeacher("Ekya001")
		require.NoError(t, err)
		assert.Len(t, goals, 2)

		enrs, err := inmemdb.NewCourseRepository(db).FilterEnrollmentsByTeacher("Ekya001")
		require.NoError(t, err)
		assert.Len(t, enrs, 3)
	})
}

func TestService_designationFilters(t *testing.T) {
	svc, _ := newService(t)

	teachers, err := svc.Teachers()
	require.NoError(t, err)
	assert.Len(t, teachers, 6)

	hos, err := svc.HeadsOfSchool()
	require.NoError(t, err)
	assert.Len(t, hos, 4)

	admins, err := svc.Admins()
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	btm, err := svc.TeachersByCampus("BTM Campus")
	require.NoError(t, err)
	require.Len(t, btm, 2)
	assert.Equal(t, "Ekya002", btm[0].EmpID)
	assert.Equal(t, "Ekya005", btm[1].EmpID)
}

func TestService_Create(t *testing.T) {
	svc, _ := newService(t)

	usr, err := svc.Create("Admin", user.NewUser{
		Name:        "New Teacher",
		Email:       "new@ekyaschool.in",
		Designation: user.DesignationTeacher,
		Campus:      "City Campus",
		Password:    "pwd",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ekya007", usr.EmpID)

	got, err := svc.GetByEmail("NEW@ekyaschool.in")
	require.NoError(t, err)
	assert.Equal(t, usr, got)
}
