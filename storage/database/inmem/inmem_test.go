package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core/course"
	"github.com/ekyaschools/pdi/core/settings"
	"github.com/ekyaschools/pdi/core/training"
	"github.com/ekyaschools/pdi/core/user"
)

func openSeeded(t *testing.T) *DB {
	t.Helper()
	db, err := Open()
	require.NoError(t, err)
	require.NoError(t, Seed(db, "pass123"))
	return db
}

func TestSequences_continueAfterSeed(t *testing.T) {
	db := openSeeded(t)
	repo := NewUserRepository(db)

	tests := []struct {
		name        string
		designation string
		wantEmpID   string
	}{
		{name: "teacher", designation: user.DesignationTeacher, wantEmpID: "Ekya007"},
		{name: "hos", designation: user.DesignationHOS, wantEmpID: "EkyaH005"},
		{name: "admin", designation: user.DesignationAdmin, wantEmpID: "Ekya03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := repo.CreateUser(user.User{Name: "New", Email: tt.name + "@test.in", Designation: tt.designation, Campus: "City Campus"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpID, usr.EmpID)
		})
	}
}

func TestSequences_neverReuseIDs(t *testing.T) {
	db := openSeeded(t)
	repo := NewUserRepository(db)

	usr, err := repo.CreateUser(user.User{Name: "A", Email: "a@test.in", Designation: user.DesignationTeacher, Campus: "City Campus"})
	require.NoError(t, err)
	require.Equal(t, "Ekya007", usr.EmpID)

	_, err = repo.DeleteUser(usr.EmpID)
	require.NoError(t, err)

	// counter is monotonic, independent of collection length
	usr2, err := repo.CreateUser(user.User{Name: "B", Email: "b@test.in", Designation: user.DesignationTeacher, Campus: "City Campus"})
	require.NoError(t, err)
	assert.Equal(t, "Ekya008", usr2.EmpID)
}

func Test_userRepository(t *testing.T) {
	db := openSeeded(t)
	repo := NewUserRepository(db)

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		usr, err := repo.GetUserByEmail("ELENA@EkyaSchool.IN")
		require.NoError(t, err)
		assert.Equal(t, "Ekya001", usr.EmpID)
	})

	t.Run("missing empID", func(t *testing.T) {
		_, err := repo.GetUserByEmpID("NONEXISTENT")
		assert.Equal(t, user.ErrNotFound, err)
	})

	t.Run("update merges only set fields", func(t *testing.T) {
		campus := "BTM Campus"
		usr, err := repo.UpdateUser("Ekya001", user.UpdateUser{Campus: &campus})
		require.NoError(t, err)
		assert.Equal(t, "BTM Campus", usr.Campus)
		assert.Equal(t, "Elena", usr.Name)
		assert.Equal(t, "elena@ekyaschool.in", usr.Email)
	})

	t.Run("update missing empID", func(t *testing.T) {
		name := "Ghost"
		_, err := repo.UpdateUser("NONEXISTENT", user.UpdateUser{Name: &name})
		assert.Equal(t, user.ErrNotFound, err)
	})

	t.Run("email uniqueness excludes self", func(t *testing.T) {
		self, err := repo.GetUserByEmpID("Ekya002")
		require.NoError(t, err)
		assert.Equal(t, user.ErrEmailExists, repo.CheckEmailUniqueness("stefen@ekyaschools.in"))
		assert.NoError(t, repo.CheckEmailUniqueness("stefen@ekyaschools.in", self))
	})

	t.Run("delete leaves dependents in place", func(t *testing.T) {
		_, err := repo.DeleteUser("Ekya005")
		require.NoError(t, err)

		obs, err := NewObservationRepository(db).FilterObservationsByTeacher("Ekya005")
		require.NoError(t, err)
		assert.Len(t, obs, 1) // OBS006 orphaned, not cascaded
	})
}

func Test_trainingRepository_RegisterAttendance(t *testing.T) {
	db := openSeeded(t)
	repo := NewTrainingRepository(db)

	evt, err := repo.GetEventByID("TRN004")
	require.NoError(t, err)
	require.Equal(t, 12, evt.Enrolled)

	atd, err := repo.RegisterAttendance(training.Attendance{EventID: "TRN004", TeacherID: "Ekya003", RegistrationDate: "2026-02-01"})
	require.NoError(t, err)
	assert.Equal(t, "ATD003", atd.ID)
	assert.False(t, atd.Attended)

	evt, err = repo.GetEventByID("TRN004")
	require.NoError(t, err)
	assert.Equal(t, 13, evt.Enrolled)

	// duplicate registration: two rows, two increments
	atd2, err := repo.RegisterAttendance(training.Attendance{EventID: "TRN004", TeacherID: "Ekya003", RegistrationDate: "2026-02-01"})
	require.NoError(t, err)
	assert.Equal(t, "ATD004", atd2.ID)

	evt, err = repo.GetEventByID("TRN004")
	require.NoError(t, err)
	assert.Equal(t, 14, evt.Enrolled)

	rows, err := repo.FilterAttendanceByTeacher("Ekya003")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func Test_courseRepository_enrollments(t *testing.T) {
	db := openSeeded(t)
	repo := NewCourseRepository(db)

	enr, err := repo.CreateEnrollment(course.Enrollment{TeacherID: "Ekya006", CourseID: "CRS001", EnrollmentDate: "2026-02-01", Status: course.EnrollmentNotStarted})
	require.NoError(t, err)
	assert.Equal(t, "ENR006", enr.ID)

	enrs, err := repo.FilterEnrollmentsByTeacher("Ekya001")
	require.NoError(t, err)
	assert.Len(t, enrs, 3)
}

func Test_settingsRepository(t *testing.T) {
	db := openSeeded(t)
	repo := NewSettingsRepository(db)

	s, err := repo.GetSettings()
	require.NoError(t, err)
	assert.False(t, s.MaintenanceMode)
	assert.True(t, s.AllowRegistration)

	on := true
	s, err = repo.UpdateSettings(settings.UpdateSettings{MaintenanceMode: &on})
	require.NoError(t, err)
	assert.True(t, s.MaintenanceMode)
	assert.True(t, s.AllowRegistration) // untouched
}
