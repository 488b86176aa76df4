package settings

import "github.com/pkg/errors"

// Settings are the platform-wide toggles editable from the admin dashboard.
type Settings struct {
	MaintenanceMode   bool `json:"maintenanceMode"`
	AllowRegistration bool `json:"allowRegistration"`
}

type UpdateSettings struct {
	MaintenanceMode   *bool `json:"maintenanceMode"`
	AllowRegistration *bool `json:"allowRegistration"`
}

type (
	Repository interface {
		GetSettings() (Settings, error)
		UpdateSettings(us UpdateSettings) (Settings, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get() (Settings, error) {
	return svc.repo.GetSettings()
}

func (svc *Service) Update(us UpdateSettings) (Settings, error) {
	s, err := svc.repo.UpdateSettings(us)
	if err != nil {
		return Settings{}, errors.Wrap(err, "updating settings")
	}
	return s, nil
}
