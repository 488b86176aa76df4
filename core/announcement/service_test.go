package announcement

import (
	"net/mail"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
)

type fakeRepository struct {
	mu   sync.Mutex
	n    int
	rows map[string]*Announcement
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[string]*Announcement)}
}

func (repo *fakeRepository) CreateAnnouncement(ann Announcement) (Announcement, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.n++
	ann.ID = "ANN00" + string(rune('0'+repo.n))
	repo.rows[ann.ID] = &ann
	return ann, nil
}

func (repo *fakeRepository) QueryAllAnnouncements() ([]Announcement, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	anns := make([]Announcement, 0, len(repo.rows))
	for _, ann := range repo.rows {
		anns = append(anns, *ann)
	}
	return anns, nil
}

func (repo *fakeRepository) UpdateAnnouncement(id string, ua UpdateAnnouncement, expiryDate *string) (Announcement, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	ann, ok := repo.rows[id]
	if !ok {
		return Announcement{}, ErrNotFound
	}
	if ua.Title != nil {
		ann.Title = *ua.Title
	}
	if ua.Content != nil {
		ann.Content = *ua.Content
	}
	if ua.Type != nil {
		ann.Type = *ua.Type
	}
	if ua.Duration != nil {
		ann.Duration = *ua.Duration
	}
	if expiryDate != nil {
		ann.ExpiryDate = *expiryDate
	}
	return *ann, nil
}

func (repo *fakeRepository) DeleteAnnouncement(id string) (Announcement, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	ann, ok := repo.rows[id]
	if !ok {
		return Announcement{}, ErrNotFound
	}
	delete(repo.rows, id)
	return *ann, nil
}

type fakeMailer struct {
	mu       sync.Mutex
	messages []core.EmailMessage
}

func (m *fakeMailer) SendMessages(messages ...*core.EmailMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		m.messages = append(m.messages, *msg)
	}
}

var testNow = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func newTestService(mailer core.EmailService, recipients RecipientsFunc) *Service {
	svc := NewService(newFakeRepository(), audit.NopRecorder{}, mailer, recipients)
	svc.nowFunc = func() time.Time { return testNow }
	return svc
}

func TestService_Create_expiryDerivation(t *testing.T) {
	tests := []struct {
		name       string
		duration   int
		wantExpiry string
	}{
		{name: "7 days", duration: 7, wantExpiry: testNow.AddDate(0, 0, 7).Format(time.RFC3339)},
		{name: "1 day", duration: 1, wantExpiry: testNow.AddDate(0, 0, 1).Format(time.RFC3339)},
		{name: "zero never expires", duration: 0, wantExpiry: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil, nil)

			ann, err := svc.Create("Mark", NewAnnouncement{Title: "T", Content: "C", Type: TypeGeneral, Duration: tt.duration})
			require.NoError(t, err)
			assert.Equal(t, tt.wantExpiry, ann.ExpiryDate)
			assert.Equal(t, testNow.Format(time.RFC3339), ann.Date)
		})
	}
}

func TestService_Create_urgentBroadcastsEmail(t *testing.T) {
	mailer := &fakeMailer{}
	recipients := func() []mail.Address {
		return []mail.Address{{Name: "Elena", Address: "elena@ekyaschool.in"}}
	}
	svc := newTestService(mailer, recipients)

	_, err := svc.Create("Mark", NewAnnouncement{Title: "Campus Closed", Content: "Heavy rain.", Type: TypeUrgent})
	require.NoError(t, err)
	require.Len(t, mailer.messages, 1)
	assert.Equal(t, "Urgent: Campus Closed", mailer.messages[0].Subject)
	assert.Equal(t, "Heavy rain.", mailer.messages[0].Body)
	require.Len(t, mailer.messages[0].To, 1)
	assert.Equal(t, "elena@ekyaschool.in", mailer.messages[0].To[0].Address)

	_, err = svc.Create("Mark", NewAnnouncement{Title: "FYI", Content: "General notice.", Type: TypeGeneral})
	require.NoError(t, err)
	assert.Len(t, mailer.messages, 1) // non-urgent types are not mailed
}

func TestService_Active(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Create("Mark", NewAnnouncement{Title: "Evergreen", Content: "C", Type: TypeGeneral})
	require.NoError(t, err)
	_, err = svc.Create("Mark", NewAnnouncement{Title: "Fresh", Content: "C", Type: TypeGeneral, Duration: 7})
	require.NoError(t, err)
	expired, err := svc.Create("Mark", NewAnnouncement{Title: "Expired", Content: "C", Type: TypeGeneral, Duration: 3})
	require.NoError(t, err)

	// move the clock past the 3-day expiry
	svc.nowFunc = func() time.Time { return testNow.AddDate(0, 0, 5) }

	active, err := svc.Active()
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, ann := range active {
		assert.NotEqual(t, expired.ID, ann.ID)
	}
}

func TestService_Update_redrivesExpiry(t *testing.T) {
	svc := newTestService(nil, nil)

	ann, err := svc.Create("Mark", NewAnnouncement{Title: "T", Content: "C", Type: TypeGeneral, Duration: 3})
	require.NoError(t, err)
	require.NotEmpty(t, ann.ExpiryDate)

	t.Run("new duration", func(t *testing.T) {
		d := 10
		updated, err := svc.Update("Mark", ann.ID, UpdateAnnouncement{Duration: &d})
		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 10).Format(time.RFC3339), updated.ExpiryDate)
	})

	t.Run("zero duration clears the expiry", func(t *testing.T) {
		d := 0
		updated, err := svc.Update("Mark", ann.ID, UpdateAnnouncement{Duration: &d})
		require.NoError(t, err)
		assert.Empty(t, updated.ExpiryDate)
	})

	t.Run("unset duration leaves the expiry alone", func(t *testing.T) {
		d := 5
		_, err := svc.Update("Mark", ann.ID, UpdateAnnouncement{Duration: &d})
		require.NoError(t, err)

		title := "Renamed"
		updated, err := svc.Update("Mark", ann.ID, UpdateAnnouncement{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 5).Format(time.RFC3339), updated.ExpiryDate)
	})

	t.Run("missing ID is a silent no-op", func(t *testing.T) {
		title := "Ghost"
		noop, err := svc.Update("Mark", "ANN999", UpdateAnnouncement{Title: &title})
		require.NoError(t, err)
		assert.Empty(t, noop.ID)
	})
}

func TestService_Delete_missingIsNoop(t *testing.T) {
	svc := newTestService(nil, nil)
	require.NoError(t, svc.Delete("Mark", "ANN999"))
}
