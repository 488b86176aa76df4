package course_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/course"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

func newService(t *testing.T) *course.Service {
	t.Helper()
	db, err := inmemdb.Open()
	require.NoError(t, err)
	require.NoError(t, inmemdb.Seed(db, "pass123"))
	return course.NewService(inmemdb.NewCourseRepository(db), audit.NopRecorder{})
}

func TestService_Create(t *testing.T) {
	nc := course.NewCourse{Title: "New Course", Category: "Pedagogy", Hours: 4}

	t.Run("school leader submissions await approval", func(t *testing.T) {
		svc := newService(t)

		crs, err := svc.Create("Kai", nc, false)
		require.NoError(t, err)
		assert.Equal(t, "CRS006", crs.ID)
		assert.Equal(t, course.StatusPendingApproval, crs.Status)
	})

	t.Run("admin submissions publish directly", func(t *testing.T) {
		svc := newService(t)

		crs, err := svc.Create("Mark", nc, true)
		require.NoError(t, err)
		assert.Equal(t, course.StatusPublished, crs.Status)
	})
}

func TestService_Approve(t *testing.T) {
	svc := newService(t)

	crs, err := svc.Create("Kai", course.NewCourse{Title: "Pending", Category: "Assessment", Hours: 3}, false)
	require.NoError(t, err)
	require.Equal(t, course.StatusPendingApproval, crs.Status)

	approved, err := svc.Approve("Mark", crs.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusPublished, approved.Status)

	// missing ID is a silent no-op
	noop, err := svc.Approve("Mark", "CRS999")
	require.NoError(t, err)
	assert.Empty(t, noop.ID)
}

func TestService_Enroll(t *testing.T) {
	t.Run("published course", func(t *testing.T) {
		svc := newService(t)

		enr, err := svc.Enroll(course.NewEnrollment{TeacherID: "Ekya006", CourseID: "CRS001"})
		require.NoError(t, err)
		assert.Equal(t, "ENR006", enr.ID)
		assert.Equal(t, course.EnrollmentNotStarted, enr.Status)
		assert.Equal(t, 0, enr.Progress)
		assert.NotEmpty(t, enr.EnrollmentDate)
	})

	t.Run("unpublished course is rejected", func(t *testing.T) {
		svc := newService(t)

		crs, err := svc.Create("Kai", course.NewCourse{Title: "Pending", Category: "Assessment", Hours: 3}, false)
		require.NoError(t, err)

		_, err = svc.Enroll(course.NewEnrollment{TeacherID: "Ekya006", CourseID: crs.ID})
		require.Error(t, err)
		vErr, ok := err.(*core.ValidationError)
		require.True(t, ok)
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "courseId", vErr.Fields[0].Field)
	})

	t.Run("missing course", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Enroll(course.NewEnrollment{TeacherID: "Ekya006", CourseID: "CRS999"})
		assert.Equal(t, course.ErrNotFound, err)
	})

	t.Run("duplicate enrollments are allowed", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Enroll(course.NewEnrollment{TeacherID: "Ekya006", CourseID: "CRS001"})
		require.NoError(t, err)
		_, err = svc.Enroll(course.NewEnrollment{TeacherID: "Ekya006", CourseID: "CRS001"})
		require.NoError(t, err)

		enrs, err := svc.EnrollmentsByTeacher("Ekya006")
		require.NoError(t, err)
		assert.Len(t, enrs, 2)
	})
}

func TestService_UpdateEnrollment(t *testing.T) {
	svc := newService(t)

	progress := 100
	status := course.EnrollmentCompleted
	date := "2026-02-01"
	enr, err := svc.UpdateEnrollment("ENR001", course.UpdateEnrollment{Progress: &progress, Status: &status, CompletionDate: &date})
	require.NoError(t, err)
	assert.Equal(t, 100, enr.Progress)
	assert.Equal(t, course.EnrollmentCompleted, enr.Status)
	assert.Equal(t, "2026-02-01", enr.CompletionDate)
	assert.Equal(t, "Ekya001", enr.TeacherID) // untouched

	// missing ID is a silent no-op
	noop, err := svc.UpdateEnrollment("ENR999", course.UpdateEnrollment{Progress: &progress})
	require.NoError(t, err)
	assert.Empty(t, noop.ID)
}

func TestService_Delete_orphansEnrollments(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.Delete("CRS001"))

	_, err := svc.GetByID("CRS001")
	assert.Equal(t, course.ErrNotFound, err)

	enrs, err := svc.EnrollmentsByTeacher("Ekya001")
	require.NoError(t, err)
	assert.Len(t, enrs, 3) // ENR001 still references the deleted course
}
