package gallery

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core/audit"
)

var ErrNotFound = errors.New("gallery image not found")

type (
	Repository interface {
		CreateImage(img Image) (Image, error)
		QueryAllImages() ([]Image, error)
		UpdateImage(id string, ui UpdateImage, expiryDate *string) (Image, error)
		DeleteImage(id string) (Image, error)
	}

	Service struct {
		repo    Repository
		rec     audit.Recorder
		nowFunc func() time.Time // mockable
	}
)

func NewService(repo Repository, rec audit.Recorder) *Service {
	return &Service{repo: repo, rec: rec, nowFunc: time.Now}
}

func (svc *Service) expiry(duration int) *string {
	if duration <= 0 {
		return nil
	}
	exp := svc.nowFunc().AddDate(0, 0, duration).Format(time.RFC3339)
	return &exp
}

func (svc *Service) Create(actor string, ni NewImage) (Image, error) {
	img := Image{
		URL:      ni.URL,
		Cap:      ni.Cap,
		Duration: ni.Duration,
	}
	if exp := svc.expiry(ni.Duration); exp != nil {
		img.ExpiryDate = *exp
	}

	img, err := svc.repo.CreateImage(img)
	if err != nil {
		return Image{}, errors.Wrap(err, "creating gallery image")
	}
	svc.rec.Record("Gallery Image Added", actor, img.ID, audit.TypeManagement)
	return img, nil
}

// QueryAll returns every image. Unlike announcements, expiry is never
// filtered here.
func (svc *Service) QueryAll() ([]Image, error) {
	return svc.repo.QueryAllImages()
}

// Update merges set fields, re-deriving expiryDate when duration changes.
// A missing ID is a silent no-op.
func (svc *Service) Update(actor, id string, ui UpdateImage) (Image, error) {
	var expiryDate *string
	if ui.Duration != nil {
		if expiryDate = svc.expiry(*ui.Duration); expiryDate == nil {
			empty := ""
			expiryDate = &empty
		}
	}
	img, err := svc.repo.UpdateImage(id, ui, expiryDate)
	if err != nil {
		if err == ErrNotFound {
			return Image{}, nil
		}
		return Image{}, errors.Wrap(err, "updating gallery image")
	}
	svc.rec.Record("Gallery Image Updated", actor, id, audit.TypeManagement)
	return img, nil
}

// Delete removes the image; a missing ID is a silent no-op.
func (svc *Service) Delete(actor, id string) error {
	if _, err := svc.repo.DeleteImage(id); err != nil {
		if err == ErrNotFound {
			return nil
		}
		return errors.Wrap(err, "deleting gallery image")
	}
	svc.rec.Record("Gallery Image Deleted", actor, id, audit.TypeManagement)
	return nil
}
