package announcement

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
)

var ErrNotFound = errors.New("announcement not found")

type (
	Repository interface {
		CreateAnnouncement(ann Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
		UpdateAnnouncement(id string, ua UpdateAnnouncement, expiryDate *string) (Announcement, error)
		DeleteAnnouncement(id string) (Announcement, error)
	}

	// RecipientsFunc resolves the addresses an urgent notice is broadcast to.
	RecipientsFunc func() []mail.Address

	Service struct {
		repo       Repository
		rec        audit.Recorder
		mailer     core.EmailService
		recipients RecipientsFunc
		nowFunc    func() time.Time // mockable
	}
)

func NewService(repo Repository, rec audit.Recorder, mailer core.EmailService, recipients RecipientsFunc) *Service {
	return &Service{repo: repo, rec: rec, mailer: mailer, recipients: recipients, nowFunc: time.Now}
}

func (svc *Service) expiry(duration int) *string {
	if duration <= 0 {
		return nil
	}
	exp := svc.nowFunc().AddDate(0, 0, duration).Format(time.RFC3339)
	return &exp
}

// Create publishes an announcement, deriving expiryDate from duration when
// positive. Urgent announcements are also broadcast by email.
func (svc *Service) Create(actor string, na NewAnnouncement) (Announcement, error) {
	ann := Announcement{
		Title:    na.Title,
		Content:  na.Content,
		Date:     svc.nowFunc().Format(time.RFC3339),
		Type:     na.Type,
		Duration: na.Duration,
	}
	if exp := svc.expiry(na.Duration); exp != nil {
		ann.ExpiryDate = *exp
	}

	ann, err := svc.repo.CreateAnnouncement(ann)
	if err != nil {
		return Announcement{}, errors.Wrap(err, "creating announcement")
	}
	svc.rec.Record("Announcement Published", actor, ann.Title, audit.TypeManagement)

	if ann.Type == TypeUrgent && svc.mailer != nil && svc.recipients != nil {
		svc.mailer.SendMessages(&core.EmailMessage{
			To:      svc.recipients(),
			Subject: fmt.Sprintf("Urgent: %s", ann.Title),
			Body:    ann.Content,
		})
	}
	return ann, nil
}

func (svc *Service) QueryAll() ([]Announcement, error) {
	return svc.repo.QueryAllAnnouncements()
}

// Active returns announcements with no expiry or an expiry still in the
// future; this backs the public landing page.
func (svc *Service) Active() ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	now := svc.nowFunc()
	active := make([]Announcement, 0, len(all))
	for _, ann := range all {
		if ann.ExpiryDate == "" {
			active = append(active, ann)
			continue
		}
		exp, err := time.Parse(time.RFC3339, ann.ExpiryDate)
		if err != nil || exp.After(now) {
			active = append(active, ann)
		}
	}
	return active, nil
}

// Update merges set fields, re-deriving expiryDate when duration changes.
// A missing ID is a silent no-op.
func (svc *Service) Update(actor, id string, ua UpdateAnnouncement) (Announcement, error) {
	var expiryDate *string
	if ua.Duration != nil {
		if expiryDate = svc.expiry(*ua.Duration); expiryDate == nil {
			empty := "" // duration cleared: the announcement no longer expires
			expiryDate = &empty
		}
	}
	ann, err := svc.repo.UpdateAnnouncement(id, ua, expiryDate)
	if err != nil {
		if err == ErrNotFound {
			return Announcement{}, nil
		}
		return Announcement{}, errors.Wrap(err, "updating announcement")
	}
	svc.rec.Record("Announcement Updated", actor, id, audit.TypeManagement)
	return ann, nil
}

// Delete removes the announcement; a missing ID is a silent no-op.
func (svc *Service) Delete(actor, id string) error {
	ann, err := svc.repo.DeleteAnnouncement(id)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return errors.Wrap(err, "deleting announcement")
	}
	svc.rec.Record("Announcement Deleted", actor, ann.Title, audit.TypeManagement)
	return nil
}
