package inmemdb

import (
	"fmt"
	"sync"

	"github.com/ekyaschools/pdi/core/announcement"
	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/course"
	"github.com/ekyaschools/pdi/core/gallery"
	"github.com/ekyaschools/pdi/core/goal"
	"github.com/ekyaschools/pdi/core/observation"
	"github.com/ekyaschools/pdi/core/pdhours"
	"github.com/ekyaschools/pdi/core/settings"
	"github.com/ekyaschools/pdi/core/training"
	"github.com/ekyaschools/pdi/core/user"
)

// Collection sequence keys.
const (
	seqTeacher      = "teacher"
	seqHOS          = "hos"
	seqAdmin        = "admin"
	seqObservation  = "observation"
	seqCourse       = "course"
	seqEnrollment   = "enrollment"
	seqEvent        = "event"
	seqAttendance   = "attendance"
	seqGoal         = "goal"
	seqPDHours      = "pdhours"
	seqAnnouncement = "announcement"
	seqImage        = "image"
	seqLog          = "log"
)

type (
	// DB is the single shared in-memory store. One mutex guards every
	// collection so cross-collection writes (training registration) are
	// atomic to all readers. The model assumes a single logical writer;
	// the lock makes it safe behind a multi-threaded HTTP host but defines
	// no multi-writer merge discipline beyond last-write-wins.
	DB struct {
		mu sync.RWMutex

		users         map[string]*user.User
		observations  map[string]*observation.Observation
		courses       map[string]*course.Course
		enrollments   map[string]*course.Enrollment
		events        map[string]*training.Event
		attendance    map[string]*training.Attendance
		goals         map[string]*goal.Goal
		pdHours       map[string]*pdhours.Record
		announcements map[string]*announcement.Announcement
		images        map[string]*gallery.Image
		auditLogs     map[string]*audit.Entry
		settings      settings.Settings

		seqs map[string]*sequence
	}

	// sequence is a monotonic per-collection counter. It is deliberately
	// independent of collection length so delete-then-insert can never
	// reissue a live ID. Only the visible prefix+padding format matters
	// to callers.
	sequence struct {
		prefix string
		width  int
		n      int
	}
)

func (s *sequence) next() string {
	s.n++
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.n)
}

func Open() (*DB, error) {
	db := &DB{
		users:         make(map[string]*user.User),
		observations:  make(map[string]*observation.Observation),
		courses:       make(map[string]*course.Course),
		enrollments:   make(map[string]*course.Enrollment),
		events:        make(map[string]*training.Event),
		attendance:    make(map[string]*training.Attendance),
		goals:         make(map[string]*goal.Goal),
		pdHours:       make(map[string]*pdhours.Record),
		announcements: make(map[string]*announcement.Announcement),
		images:        make(map[string]*gallery.Image),
		auditLogs:     make(map[string]*audit.Entry),
		settings:      settings.Settings{MaintenanceMode: false, AllowRegistration: true},
		seqs: map[string]*sequence{
			seqTeacher:      {prefix: "Ekya", width: 3},
			seqHOS:          {prefix: "EkyaH", width: 3},
			seqAdmin:        {prefix: "Ekya", width: 2},
			seqObservation:  {prefix: "OBS", width: 3},
			seqCourse:       {prefix: "CRS", width: 3},
			seqEnrollment:   {prefix: "ENR", width: 3},
			seqEvent:        {prefix: "TRN", width: 3},
			seqAttendance:   {prefix: "ATD", width: 3},
			seqGoal:         {prefix: "GOAL", width: 3},
			seqPDHours:      {prefix: "PDH", width: 3},
			seqAnnouncement: {prefix: "ANN", width: 3},
			seqImage:        {prefix: "IMG", width: 3},
			seqLog:          {prefix: "LOG", width: 3},
		},
	}
	return db, nil
}

// nextID must be called with db.mu held for writing.
func (db *DB) nextID(seq string) string {
	return db.seqs[seq].next()
}
