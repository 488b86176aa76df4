package echoapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ekyaschools/pdi/core"
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

type (
	ServerDeps struct {
		Conf            *core.Config
		Logger          core.Logger
		UserSvc         *user.Service
		ObservationSvc  *observation.Service
		CourseSvc       *course.Service
		TrainingSvc     *training.Service
		GoalSvc         *goal.Service
		PDHoursSvc      *pdhours.Service
		AnnouncementSvc *announcement.Service
		GallerySvc      *gallery.Service
		AuditSvc        *audit.Service
		SettingsSvc     *settings.Service
		Mailer          core.EmailService
		Validate        *validator.Validate
		Translator      ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, func() { s.shutdown <- syscall.SIGTERM })
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))
	maintenance := maintenanceMiddleware(s.deps.SettingsSvc)

	registerLandingAPI(v1, s.deps)
	registerUserAPI(v1, s.deps, jwt, maintenance)
	registerObservationAPI(v1, s.deps, jwt, maintenance)
	registerCourseAPI(v1, s.deps, jwt, maintenance)
	registerTrainingAPI(v1, s.deps, jwt, maintenance)
	registerGoalAPI(v1, s.deps, jwt, maintenance)
	registerPDHoursAPI(v1, s.deps, jwt, maintenance)
	registerAnnouncementAPI(v1, s.deps, jwt, maintenance)
	registerGalleryAPI(v1, s.deps, jwt, maintenance)
	registerAuditAPI(v1, s.deps, jwt, maintenance)
	registerSettingsAPI(v1, s.deps, jwt, maintenance)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)

	addr := fmt.Sprintf("%s:%d", s.deps.Conf.Server.Host, s.deps.Conf.Server.Port)
	if err := s.app.Start(addr); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Ekya PDI API!")
}
