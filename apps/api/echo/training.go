package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core/training"
)

type trainingApi struct {
	svc      *training.Service
	validate *validator.Validate
}

func registerTrainingAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := trainingApi{svc: deps.TrainingSvc, validate: deps.Validate}

	tg := g.Group("/training", mw...)
	tg.GET("/events", api.queryEvents)
	tg.POST("/events", api.createEvent, adminMiddleware)
	tg.GET("/events/:id", api.getEvent)
	tg.PATCH("/events/:id", api.updateEvent, adminMiddleware)
	tg.DELETE("/events/:id", api.deleteEvent, adminMiddleware)

	tg.GET("/attendance", api.queryAttendance)
	tg.POST("/attendance", api.register)
	tg.PATCH("/attendance/:id", api.markAttendance, leaderMiddleware)
}

// queryEvents narrows to the caller's campus for teachers; a campus query
// param does the same for leaders and admins.
func (api trainingApi) queryEvents(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	var events []training.Event
	switch {
	case ctx.QueryParam("campus") != "":
		events, err = api.svc.EventsByCampus(ctx.QueryParam("campus"))
	case claims.IsTeacher:
		events, err = api.svc.EventsByCampus(claims.Campus)
	default:
		events, err = api.svc.Events()
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api trainingApi) getEvent(ctx echo.Context) error {
	evt, err := api.svc.GetEventByID(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api trainingApi) createEvent(ctx echo.Context) error {
	data := new(training.NewEvent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.CreateEvent(actorName(ctx), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, evt)
}

func (api trainingApi) updateEvent(ctx echo.Context) error {
	data := new(training.UpdateEvent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	evt, err := api.svc.UpdateEvent(actorName(ctx), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api trainingApi) deleteEvent(ctx echo.Context) error {
	if err := api.svc.DeleteEvent(actorName(ctx), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api trainingApi) queryAttendance(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	teacherID := claims.Subject
	if !claims.IsTeacher && ctx.QueryParam("teacherId") != "" {
		teacherID = ctx.QueryParam("teacherId")
	}
	rows, err := api.svc.AttendanceByTeacher(teacherID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api trainingApi) register(ctx echo.Context) error {
	data := new(training.NewAttendance)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	atd, err := api.svc.Register(actorName(ctx), *data)
	if err != nil {
		if errors.Cause(err) == training.ErrEventNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, atd)
}

func (api trainingApi) markAttendance(ctx echo.Context) error {
	data := new(training.MarkAttendanceRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	atd, err := api.svc.MarkAttendance(ctx.Param("id"), data.Attended)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, atd)
}
