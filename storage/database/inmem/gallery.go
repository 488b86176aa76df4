package inmemdb

import (
	"sort"

	"github.com/ekyaschools/pdi/core/gallery"
)

type galleryRepository struct {
	db *DB
}

var _ gallery.Repository = (*galleryRepository)(nil)

func NewGalleryRepository(db *DB) gallery.Repository {
	return &galleryRepository{db: db}
}

func (repo *galleryRepository) CreateImage(img gallery.Image) (gallery.Image, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if img.ID == "" {
		img.ID = repo.db.nextID(seqImage)
	}
	repo.db.images[img.ID] = &img
	return img, nil
}

func (repo *galleryRepository) QueryAllImages() ([]gallery.Image, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	images := make([]gallery.Image, 0, len(repo.db.images))
	for _, img := range repo.db.images {
		images = append(images, *img)
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })
	return images, nil
}

func (repo *galleryRepository) UpdateImage(id string, ui gallery.UpdateImage, expiryDate *string) (gallery.Image, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	img, ok := repo.db.images[id]
	if !ok {
		return gallery.Image{}, gallery.ErrNotFound
	}

	// only save set fields
	if ui.URL != nil {
		img.URL = *ui.URL
	}
	if ui.Cap != nil {
		img.Cap = *ui.Cap
	}
	if ui.Duration != nil {
		img.Duration = *ui.Duration
	}
	if expiryDate != nil {
		img.ExpiryDate = *expiryDate
	}
	return *img, nil
}

func (repo *galleryRepository) DeleteImage(id string) (gallery.Image, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	img, ok := repo.db.images[id]
	if !ok {
		return gallery.Image{}, gallery.ErrNotFound
	}
	delete(repo.db.images, id)
	return *img, nil
}
