package inmemdb

import (
	"time"

	"github.com/ekyaschools/pdi/core/announcement"
	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/course"
	"github.com/ekyaschools/pdi/core/gallery"
	"github.com/ekyaschools/pdi/core/goal"
	"github.com/ekyaschools/pdi/core/observation"
	"github.com/ekyaschools/pdi/core/pdhours"
	"github.com/ekyaschools/pdi/core/training"
	"github.com/ekyaschools/pdi/core/user"
)

// Seed loads the demo fixture data and advances every ID sequence past
// the highest seeded index. The demo password is shared by every seeded
// account.
func Seed(db *DB, demoPassword string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	now := time.Now()

	users := []user.User{
		{EmpID: "Ekya001", Name: "Elena", Email: "elena@ekyaschool.in", Designation: user.DesignationTeacher, Campus: "City Campus", Password: demoPassword},
		{EmpID: "Ekya002", Name: "Stefen", Email: "stefen@ekyaschools.in", Designation: user.DesignationTeacher, Campus: "BTM Campus", Password: demoPassword},
		{EmpID: "Ekya003", Name: "Damon", Email: "damon@ekyaschool.in", Designation: user.DesignationTeacher, Campus: "JPN Campus", Password: demoPassword},
		{EmpID: "Ekya004", Name: "Matt", Email: "matt@ekyaschool.in", Designation: user.DesignationTeacher, Campus: "Nice Road Campus", Password: demoPassword},
		{EmpID: "Ekya005", Name: "Caroline", Email: "caroline@ekyaschool.in", Designation: user.DesignationTeacher, Campus: "BTM Campus", Password: demoPassword},
		{EmpID: "Ekya006", Name: "Klaus", Email: "klaus@ekyaschool.in", Designation: user.DesignationTeacher, Campus: "City Campus", Password: demoPassword},
		{EmpID: "EkyaH001", Name: "Kai", Email: "kai@ekyaschool.in", Designation: user.DesignationHOS, Campus: "City Campus", Password: demoPassword},
		{EmpID: "EkyaH002", Name: "Alaric", Email: "alaric@ekyaschools.in", Designation: user.DesignationHOS, Campus: "BTM Campus", Password: demoPassword},
		{EmpID: "EkyaH003", Name: "Liz", Email: "liz@ekyaschool.in", Designation: user.DesignationHOS, Campus: "JPN Campus", Password: demoPassword},
		{EmpID: "EkyaH004", Name: "Tyler", Email: "tyler@ekyaschool.in", Designation: user.DesignationHOS, Campus: "Nice Road Campus", Password: demoPassword},
		{EmpID: "Ekya01", Name: "Mark", Email: "mark@ekyaschool.in", Designation: user.DesignationAdmin, Campus: "Head Office", Password: demoPassword},
		{EmpID: "Ekya02", Name: "Rebekha", Email: "rebekha@ekyaschools.in", Designation: user.DesignationAdmin, Campus: "Head Office", Password: demoPassword},
	}
	for i := range users {
		db.users[users[i].EmpID] = &users[i]
	}
	db.seqs[seqTeacher].n = 6
	db.seqs[seqHOS].n = 4
	db.seqs[seqAdmin].n = 2

	observations := []observation.Observation{
		{ID: "OBS001", TeacherID: "Ekya001", TeacherName: "Elena", ObserverID: "EkyaH001", ObserverName: "Kai", Date: "2026-01-20", Domain: "Classroom Management", Score: 4.5, Feedback: "Excellent engagement strategies. Students were actively participating throughout the lesson. The use of group activities was particularly effective.", Tags: []string{"P1", "Completed"}, Status: observation.StatusReflected},
		{ID: "OBS002", TeacherID: "Ekya002", TeacherName: "Stefen", ObserverID: "EkyaH002", ObserverName: "Alaric", Date: "2026-01-22", Domain: "Content Delivery", Score: 4.2, Feedback: "Clear explanations and good use of visual aids. Consider incorporating more real-world examples to enhance student understanding.", Tags: []string{"P1", "Pending"}, Status: observation.StatusPending},
		{ID: "OBS003", TeacherID: "Ekya003", TeacherName: "Damon", ObserverID: "EkyaH003", ObserverName: "Liz", Date: "2026-01-18", Domain: "Student Assessment", Score: 4.0, Feedback: "Good variety of assessment methods. Formative assessments were well-integrated into the lesson flow.", Tags: []string{"P1", "Acknowledged"}, Status: observation.StatusAcknowledged},
		{ID: "OBS004", TeacherID: "Ekya001", TeacherName: "Elena", ObserverID: "EkyaH001", ObserverName: "Kai", Date: "2026-01-15", Domain: "Student Engagement", Score: 4.7, Feedback: "Outstanding ability to maintain student interest. Excellent questioning techniques that promoted critical thinking.", Tags: []string{"P1", "Reflected"}, Status: observation.StatusReflected},
		{ID: "OBS005", TeacherID: "Ekya004", TeacherName: "Matt", ObserverID: "EkyaH004", ObserverName: "Tyler", Date: "2026-01-25", Domain: "Technology Integration", Score: 4.3, Feedback: "Effective use of digital tools to enhance learning. Students were engaged with the interactive presentations.", Tags: []string{"P1", "Pending"}, Status: observation.StatusPending},
		{ID: "OBS006", TeacherID: "Ekya005", TeacherName: "Caroline", ObserverID: "EkyaH002", ObserverName: "Alaric", Date: "2026-01-23", Domain: "Classroom Management", Score: 4.1, Feedback: "Good control of classroom dynamics. Transition between activities could be smoother.", Tags: []string{"P1", "Acknowledged"}, Status: observation.StatusAcknowledged},
	}
	for i := range observations {
		db.observations[observations[i].ID] = &observations[i]
	}
	db.seqs[seqObservation].n = 6

	courses := []course.Course{
		{ID: "CRS001", Title: "Advanced Classroom Management", Category: "Professional Development", Hours: 8, Prerequisites: "None", Status: course.StatusPublished, Description: "Learn advanced techniques for managing diverse classroom environments."},
		{ID: "CRS002", Title: "Data-Driven Instruction", Category: "Assessment", Hours: 6, Prerequisites: "Basic Assessment", Status: course.StatusPublished, Description: "Use student data to inform and improve instructional practices."},
		{ID: "CRS003", Title: "STEM Integration Techniques", Category: "Subject Specific", Hours: 10, Prerequisites: "None", Status: course.StatusPublished, Description: "Integrate Science, Technology, Engineering, and Mathematics across curriculum."},
		{ID: "CRS004", Title: "Digital Teaching Tools Workshop", Category: "Technology Integration", Hours: 5, Prerequisites: "None", Status: course.StatusPublished, Description: "Master the use of digital tools and platforms for effective teaching."},
		{ID: "CRS005", Title: "Differentiated Instruction", Category: "Pedagogy", Hours: 7, Prerequisites: "None", Status: course.StatusPublished, Description: "Strategies for meeting diverse learning needs in the classroom."},
	}
	for i := range courses {
		db.courses[courses[i].ID] = &courses[i]
	}
	db.seqs[seqCourse].n = 5

	enrollments := []course.Enrollment{
		{ID: "ENR001", TeacherID: "Ekya001", CourseID: "CRS001", EnrollmentDate: "2025-12-01", Progress: 75, Status: course.EnrollmentInProgress},
		{ID: "ENR002", TeacherID: "Ekya001", CourseID: "CRS002", EnrollmentDate: "2025-11-15", Progress: 100, Status: course.EnrollmentCompleted, CompletionDate: "2026-01-10"},
		{ID: "ENR003", TeacherID: "Ekya001", CourseID: "CRS003", EnrollmentDate: "2026-01-20", Progress: 0, Status: course.EnrollmentNotStarted},
		{ID: "ENR004", TeacherID: "Ekya002", CourseID: "CRS004", EnrollmentDate: "2026-01-05", Progress: 60, Status: course.EnrollmentInProgress},
		{ID: "ENR005", TeacherID: "Ekya003", CourseID: "CRS005", EnrollmentDate: "2025-12-20", Progress: 100, Status: course.EnrollmentCompleted, CompletionDate: "2026-01-15"},
	}
	for i := range enrollments {
		db.enrollments[enrollments[i].ID] = &enrollments[i]
	}
	db.seqs[seqEnrollment].n = 5

	events := []training.Event{
		{ID: "TRN001", Title: "Digital Teaching Tools Workshop", Date: "2026-02-05", Time: "10:00 AM - 12:00 PM", Campus: "City Campus", Topic: "Technology Integration", Status: training.StatusUpcoming, Capacity: 30, Enrolled: 15, RegistrationDeadline: "2026-02-03", Color: "#A37FBC"},
		{ID: "TRN002", Title: "Differentiated Instruction Seminar", Date: "2026-02-12", Time: "2:00 PM - 4:00 PM", Campus: training.AllCampuses, Topic: "Pedagogy", Status: training.StatusOpen, Capacity: 50, Enrolled: 22, RegistrationDeadline: "2026-02-10", Color: "#3B82F6"},
		{ID: "TRN003", Title: "Assessment Strategies Training", Date: "2026-01-22", Time: "9:00 AM - 11:00 AM", Campus: "BTM Campus", Topic: "Assessment", Status: training.StatusCompleted, Capacity: 25, Enrolled: 25, RegistrationDeadline: "2026-01-20", Color: "#10B981"},
		{ID: "TRN004", Title: "Classroom Management Techniques", Date: "2026-02-08", Time: "3:00 PM - 5:00 PM", Campus: "JPN Campus", Topic: "Professional Development", Status: training.StatusOpen, Capacity: 20, Enrolled: 12, RegistrationDeadline: "2026-02-06", Color: "#F59E0B"},
		{ID: "TRN005", Title: "STEM Integration Workshop", Date: "2026-02-15", Time: "10:00 AM - 1:00 PM", Campus: "Nice Road Campus", Topic: "Subject Specific", Status: training.StatusUpcoming, Capacity: 35, Enrolled: 18, RegistrationDeadline: "2026-02-13", Color: "#F43F5E"},
	}
	for i := range events {
		db.events[events[i].ID] = &events[i]
	}
	db.seqs[seqEvent].n = 5

	attendance := []training.Attendance{
		{ID: "ATD001", EventID: "TRN003", TeacherID: "Ekya001", RegistrationDate: "2026-01-15", Attended: true},
		{ID: "ATD002", EventID: "TRN001", TeacherID: "Ekya001", RegistrationDate: "2026-01-25", Attended: false},
	}
	for i := range attendance {
		db.attendance[attendance[i].ID] = &attendance[i]
	}
	db.seqs[seqAttendance].n = 2

	goals := []goal.Goal{
		{ID: "GOAL001", TeacherID: "Ekya001", Title: "Improve Student Engagement", Description: "Increase average student participation by 20% through interactive teaching methods", Target: "2026-06-30", Progress: 60, SetBy: "Self", SetByID: "Ekya001", CreatedDate: "2026-01-05", Status: goal.StatusActive},
		{ID: "GOAL002", TeacherID: "Ekya001", Title: "Complete Technology Certification", Description: "Obtain Google Certified Educator Level 1", Target: "2026-03-31", Progress: 80, SetBy: "Kai", SetByID: "EkyaH001", CreatedDate: "2025-12-15", Status: goal.StatusActive},
		{ID: "GOAL003", TeacherID: "Ekya002", Title: "Develop Assessment Skills", Description: "Create a comprehensive assessment bank for Math curriculum", Target: "2026-05-31", Progress: 45, SetBy: "Alaric", SetByID: "EkyaH002", CreatedDate: "2026-01-10", Status: goal.StatusActive},
		{ID: "GOAL004", TeacherID: "Ekya003", Title: "Enhance Differentiation Strategies", Description: "Implement differentiated instruction in all lessons", Target: "2026-04-30", Progress: 70, SetBy: "Self", SetByID: "Ekya003", CreatedDate: "2025-12-01", Status: goal.StatusActive},
		{ID: "GOAL005", TeacherID: "Ekya004", Title: "Integrate STEM Activities", Description: "Design and implement 5 cross-curricular STEM projects", Target: "2026-06-15", Progress: 40, SetBy: "Tyler", SetByID: "EkyaH004", CreatedDate: "2026-01-08", Status: goal.StatusActive},
	}
	for i := range goals {
		db.goals[goals[i].ID] = &goals[i]
	}
	db.seqs[seqGoal].n = 5

	pdRecords := []pdhours.Record{
		{ID: "PDH001", TeacherID: "Ekya001", ActivityType: pdhours.ActivityCourse, ActivityID: "CRS002", ActivityName: "Data-Driven Instruction", Hours: 6, Date: "2026-01-10", Status: pdhours.StatusCompleted},
		{ID: "PDH002", TeacherID: "Ekya001", ActivityType: pdhours.ActivityTraining, ActivityID: "TRN003", ActivityName: "Assessment Strategies Training", Hours: 2, Date: "2026-01-22", Status: pdhours.StatusCompleted},
		{ID: "PDH003", TeacherID: "Ekya001", ActivityType: pdhours.ActivityCourse, ActivityID: "CRS001", ActivityName: "Advanced Classroom Management", Hours: 6, Date: "2026-01-25", Status: pdhours.StatusInProgress},
		{ID: "PDH004", TeacherID: "Ekya002", ActivityType: pdhours.ActivityCourse, ActivityID: "CRS004", ActivityName: "Digital Teaching Tools Workshop", Hours: 3, Date: "2026-01-20", Status: pdhours.StatusInProgress},
		{ID: "PDH005", TeacherID: "Ekya003", ActivityType: pdhours.ActivityCourse, ActivityID: "CRS005", ActivityName: "Differentiated Instruction", Hours: 7, Date: "2026-01-15", Status: pdhours.StatusCompleted},
		{ID: "PDH006", TeacherID: "Ekya004", ActivityType: pdhours.ActivityTraining, ActivityID: "TRN005", ActivityName: "STEM Integration Workshop", Hours: 3, Date: "2026-02-15", Status: pdhours.StatusPendingApproval},
	}
	for i := range pdRecords {
		db.pdHours[pdRecords[i].ID] = &pdRecords[i]
	}
	db.seqs[seqPDHours].n = 6

	announcements := []announcement.Announcement{
		{ID: "ANN001", Title: "Welcome to EKYA PDI", Content: "We are excited to launch our new Professional Development & Improvement platform.", Date: now.Format(time.RFC3339), Type: announcement.TypeGeneral},
		{ID: "ANN002", Title: "Term 2 Observations", Content: "Classroom observations for Term 2 will begin from next week. Please check your schedule.", Date: now.Format(time.RFC3339), Type: announcement.TypeAcademic},
	}
	for i := range announcements {
		db.announcements[announcements[i].ID] = &announcements[i]
	}
	db.seqs[seqAnnouncement].n = 2

	images := []gallery.Image{
		{ID: "IMG001", URL: "https://images.unsplash.com/photo-1602016752172-29a1b51d3599?auto=format&fit=crop&q=80&w=800", Cap: "Collaborative Learning"},
		{ID: "IMG002", URL: "https://images.unsplash.com/photo-1502086223501-7ea6ecd79368?auto=format&fit=crop&q=80&w=800", Cap: "Creative Expression"},
		{ID: "IMG003", URL: "https://images.unsplash.com/photo-1545624447-5821b77a66f7?auto=format&fit=crop&q=80&w=800", Cap: "Outdoor Play"},
		{ID: "IMG004", URL: "https://images.unsplash.com/photo-1587654062363-34ce7ad4577b?auto=format&fit=crop&q=80&w=800", Cap: "Scientific Inquiry"},
		{ID: "IMG005", URL: "https://images.unsplash.com/photo-1588075592405-d3d0f2754470?auto=format&fit=crop&q=80&w=800", Cap: "Joyful Moments"},
	}
	for i := range images {
		db.images[images[i].ID] = &images[i]
	}
	db.seqs[seqImage].n = 5

	initLog := audit.Entry{
		ID:        "LOG001",
		Action:    "System Initialized",
		User:      "System",
		Target:    "Platform",
		Timestamp: now.Format("1/2/2006, 3:04:05 PM"),
		Type:      audit.TypeSystem,
	}
	db.auditLogs[initLog.ID] = &initLog
	db.seqs[seqLog].n = 1

	return nil
}
