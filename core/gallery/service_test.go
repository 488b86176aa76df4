package gallery

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
)

type fakeRepository struct {
	mu   sync.Mutex
	n    int
	rows map[string]*Image
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[string]*Image)}
}

func (repo *fakeRepository) CreateImage(img Image) (Image, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.n++
	img.ID = fmt.Sprintf("IMG%03d", repo.n)
	repo.rows[img.ID] = &img
	return img, nil
}

func (repo *fakeRepository) QueryAllImages() ([]Image, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	images := make([]Image, 0, len(repo.rows))
	for _, img := range repo.rows {
		images = append(images, *img)
	}
	return images, nil
}

func (repo *fakeRepository) UpdateImage(id string, ui UpdateImage, expiryDate *string) (Image, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	img, ok := repo.rows[id]
	if !ok {
		return Image{}, ErrNotFound
	}
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

func (repo *fakeRepository) DeleteImage(id string) (Image, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	img, ok := repo.rows[id]
	if !ok {
		return Image{}, ErrNotFound
	}
	delete(repo.rows, id)
	return *img, nil
}

var testNow = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(newFakeRepository(), audit.NopRecorder{})
	svc.nowFunc = func() time.Time { return testNow }
	return svc
}

func TestService_Create_expiryDerivation(t *testing.T) {
	svc := newTestService()

	img, err := svc.Create("Mark", NewImage{URL: "https://img.test/a.jpg", Cap: "Sports Day", Duration: 7})
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 7).Format(time.RFC3339), img.ExpiryDate)

	img, err = svc.Create("Mark", NewImage{URL: "https://img.test/b.jpg"})
	require.NoError(t, err)
	assert.Empty(t, img.ExpiryDate)
}

func TestService_QueryAll_neverFiltersExpiry(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create("Mark", NewImage{URL: "https://img.test/a.jpg", Duration: 1})
	require.NoError(t, err)
	_, err = svc.Create("Mark", NewImage{URL: "https://img.test/b.jpg"})
	require.NoError(t, err)

	// well past the first image's expiry
	svc.nowFunc = func() time.Time { return testNow.AddDate(0, 1, 0) }

	images, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestService_Update(t *testing.T) {
	svc := newTestService()

	img, err := svc.Create("Mark", NewImage{URL: "https://img.test/a.jpg", Duration: 3})
	require.NoError(t, err)

	d := 0
	updated, err := svc.Update("Mark", img.ID, UpdateImage{Duration: &d})
	require.NoError(t, err)
	assert.Empty(t, updated.ExpiryDate)

	caption := "Annual Day"
	updated, err = svc.Update("Mark", img.ID, UpdateImage{Cap: &caption})
	require.NoError(t, err)
	assert.Equal(t, "Annual Day", updated.Cap)
	assert.Equal(t, "https://img.test/a.jpg", updated.URL)

	noop, err := svc.Update("Mark", "IMG999", UpdateImage{Cap: &caption})
	require.NoError(t, err)
	assert.Empty(t, noop.ID)
}

func TestNewImage_sizeLimit(t *testing.T) {
	validate := validator.New()

	ni := NewImage{URL: "data:image/png;base64," + strings.Repeat("A", MaxImageSize)}
	err := ni.Validate(validate)
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "url", vErr.Fields[0].Field)

	ok2 := NewImage{URL: "https://img.test/a.jpg"}
	assert.NoError(t, ok2.Validate(validate))
}
