package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/course"
)

type courseRepository struct {
	db *DB
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if crs.ID == "" {
		crs.ID = repo.db.nextID(seqCourse)
	}
	repo.db.courses[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.courses))
	for _, crs := range repo.db.courses {
		courses = append(courses, *crs)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if crs, ok := repo.db.courses[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) UpdateCourse(id string, uc course.UpdateCourse) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs, ok := repo.db.courses[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}

	// only save set fields
	if uc.Title != nil {
		crs.Title = *uc.Title
	}
	if uc.Category != nil {
		crs.Category = *uc.Category
	}
	if uc.Hours != nil {
		crs.Hours = *uc.Hours
	}
	if uc.Prerequisites != nil {
		crs.Prerequisites = *uc.Prerequisites
	}
	if uc.Status != nil {
		crs.Status = *uc.Status
	}
	if uc.Description != nil {
		crs.Description = *uc.Description
	}
	return *crs, nil
}

func (repo *courseRepository) DeleteCourse(id string) (course.Course, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	crs, ok := repo.db.courses[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	delete(repo.db.courses, id)
	return *crs, nil
}

func (repo *courseRepository) CreateEnrollment(enr course.Enrollment) (course.Enrollment, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if enr.ID == "" {
		enr.ID = repo.db.nextID(seqEnrollment)
	}
	repo.db.enrollments[enr.ID] = &enr
	return enr, nil
}

func (repo *courseRepository) QueryAllEnrollments() ([]course.Enrollment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.queryEnrollments(), nil
}

// queryEnrollments must be called with db.mu held.
func (repo *courseRepository) queryEnrollments() []course.Enrollment {
	enrs := make([]course.Enrollment, 0, len(repo.db.enrollments))
	for _, enr := range repo.db.enrollments {
		enrs = append(enrs, *enr)
	}
	sort.Slice(enrs, func(i, j int) bool { return enrs[i].ID < enrs[j].ID })
	return enrs
}

func (repo *courseRepository) FilterEnrollmentsByTeacher(teacherID string) ([]course.Enrollment, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	enrs := make([]course.Enrollment, 0)
	for _, enr := range repo.queryEnrollments() {
		if enr.TeacherID == teacherID {
			enrs = append(enrs, enr)
		}
	}
	return enrs, nil
}

func (repo *courseRepository) UpdateEnrollment(id string, ue course.UpdateEnrollment) (course.Enrollment, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	enr, ok := repo.db.enrollments[id]
	if !ok {
		return course.Enrollment{}, course.ErrEnrollmentNotFound
	}

	// only save set fields
	if ue.Progress != nil {
		enr.Progress = *ue.Progress
	}
	if ue.Status != nil {
		enr.Status = *ue.Status
	}
	if ue.CompletionDate != nil {
		enr.CompletionDate = *ue.CompletionDate
	}
	return *enr, nil
}
