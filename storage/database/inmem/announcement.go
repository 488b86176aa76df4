package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/announcement"
)

type announcementRepository struct {
	db *DB
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) announcement.Repository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) CreateAnnouncement(ann announcement.Announcement) (announcement.Announcement, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if ann.ID == "" {
		ann.ID = repo.db.nextID(seqAnnouncement)
	}
	repo.db.announcements[ann.ID] = &ann
	return ann, nil
}

// QueryAllAnnouncements returns newest first, matching the landing page order.
func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	anns := make([]announcement.Announcement, 0, len(repo.db.announcements))
	for _, ann := range repo.db.announcements {
		anns = append(anns, *ann)
	}
	sort.Slice(anns, func(i, j int) bool { return anns[i].ID > anns[j].ID })
	return anns, nil
}

func (repo *announcementRepository) UpdateAnnouncement(id string, ua announcement.UpdateAnnouncement, expiryDate *string) (announcement.Announcement, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	ann, ok := repo.db.announcements[id]
	if !ok {
		return announcement.Announcement{}, announcement.ErrNotFound
	}

	// only save set fields
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

func (repo *announcementRepository) DeleteAnnouncement(id string) (announcement.Announcement, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	ann, ok := repo.db.announcements[id]
	if !ok {
		return announcement.Announcement{}, announcement.ErrNotFound
	}
	delete(repo.db.announcements, id)
	return *ann, nil
}
