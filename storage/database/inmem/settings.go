package inmemdb

import "github.com/ekyaschools/pdi/core/settings"

type settingsRepository struct {
	db *DB
}

var _ settings.Repository = (*settingsRepository)(nil)

func NewSettingsRepository(db *DB) settings.Repository {
	return &settingsRepository{db: db}
}

func (repo *settingsRepository) GetSettings() (settings.Settings, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.settings, nil
}

func (repo *settingsRepository) UpdateSettings(us settings.UpdateSettings) (settings.Settings, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if us.MaintenanceMode != nil {
		repo.db.settings.MaintenanceMode = *us.MaintenanceMode
	}
	if us.AllowRegistration != nil {
		repo.db.settings.AllowRegistration = *us.AllowRegistration
	}
	return repo.db.settings, nil
}
