package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"net/mail"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/ekyaschools/pdi/apps/api/echo"
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
	emailsvc "github.com/ekyaschools/pdi/services/email"
	logsvc "github.com/ekyaschools/pdi/services/logger"
	inmemdb "github.com/ekyaschools/pdi/storage/database/inmem"
)

// demoPassword seeds every demo account; the login contract is demo-only
// and documented as such.
const demoPassword = "password123"

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up the store
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	if err = inmemdb.Seed(db, demoPassword); err != nil {
		logger.Fatal(fmt.Sprintf("seeding store: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	auditSvc := audit.NewService(inmemdb.NewAuditRepository(db))
	usrSvc := user.NewService(inmemdb.NewUserRepository(db), auditSvc)
	obsSvc := observation.NewService(inmemdb.NewObservationRepository(db))
	crsSvc := course.NewService(inmemdb.NewCourseRepository(db), auditSvc)
	trnSvc := training.NewService(inmemdb.NewTrainingRepository(db), auditSvc)
	goalSvc := goal.NewService(inmemdb.NewGoalRepository(db))
	pdhSvc := pdhours.NewService(inmemdb.NewPDHoursRepository(db), conf.PDHoursTarget)
	annSvc := announcement.NewService(inmemdb.NewAnnouncementRepository(db), auditSvc, mailSvc, teacherAddresses(usrSvc, logger))
	galSvc := gallery.NewService(inmemdb.NewGalleryRepository(db), auditSvc)
	setSvc := settings.NewService(inmemdb.NewSettingsRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:            conf,
			Logger:          logger,
			UserSvc:         usrSvc,
			ObservationSvc:  obsSvc,
			CourseSvc:       crsSvc,
			TrainingSvc:     trnSvc,
			GoalSvc:         goalSvc,
			PDHoursSvc:      pdhSvc,
			AnnouncementSvc: annSvc,
			GallerySvc:      galSvc,
			AuditSvc:        auditSvc,
			SettingsSvc:     setSvc,
			Mailer:          mailSvc,
			Validate:        validate,
			Translator:      translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// teacherAddresses resolves the urgent-announcement broadcast list at send
// time, so newly added teachers are always included.
func teacherAddresses(svc *user.Service, logger core.Logger) announcement.RecipientsFunc {
	return func() []mail.Address {
		teachers, err := svc.Teachers()
		if err != nil {
			logger.Error(fmt.Sprintf("resolving broadcast recipients: %v", err), err)
			return nil
		}
		addrs := make([]mail.Address, 0, len(teachers))
		for _, t := range teachers {
			addrs = append(addrs, mail.Address{Name: t.Name, Address: t.Email})
		}
		return addrs
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
