package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/audit"
	"github.com/ekyaschools/pdi/core/observation"
)

type observationApi struct {
	svc      *observation.Service
	rec      audit.Recorder
	validate *validator.Validate
}

func registerObservationAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := observationApi{svc: deps.ObservationSvc, rec: deps.AuditSvc, validate: deps.Validate}

	og := g.Group("/observations", mw...)
	og.GET("", api.query)
	og.POST("", api.create, leaderMiddleware)
	og.GET("/:id", api.get)
	og.PATCH("/:id", api.update, leaderMiddleware)
	og.POST("/:id/reflection", api.saveReflection)
}

// query scopes results to the caller: teachers see observations of them,
// observers see the ones they conducted, admins see everything. Explicit
// teacherId/observerId params override for leader/admin callers.
func (api observationApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	var obs []observation.Observation
	switch {
	case claims.IsTeacher:
		obs, err = api.svc.ByTeacher(claims.Subject)
	case ctx.QueryParam("teacherId") != "":
		obs, err = api.svc.ByTeacher(ctx.QueryParam("teacherId"))
	case ctx.QueryParam("observerId") != "":
		obs, err = api.svc.ByObserver(ctx.QueryParam("observerId"))
	case claims.IsSchoolLeader:
		obs, err = api.svc.ByObserver(claims.Subject)
	default:
		obs, err = api.svc.QueryAll()
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, obs)
}

func (api observationApi) get(ctx echo.Context) error {
	obs, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, obs)
}

func (api observationApi) create(ctx echo.Context) error {
	data := new(observation.NewObservation)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	obs, err := api.svc.Create(*data)
	if err != nil {
		return err
	}
	api.rec.Record("Observation Recorded", actorName(ctx), obs.TeacherName, audit.TypeAcademic)
	return ctx.JSON(http.StatusCreated, obs)
}

func (api observationApi) update(ctx echo.Context) error {
	data := new(observation.UpdateObservation)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	obs, err := api.svc.Update(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, obs)
}

func (api observationApi) saveReflection(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	data := new(observation.Reflection)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	obs, err := api.svc.SaveReflection(ctx.Param("id"), claims.Subject, data.Reflection)
	if err != nil {
		switch err {
		case observation.ErrNotFound:
			return errHttpNotFound
		case observation.ErrNotTeacher:
			return errHttpForbidden
		}
		return err
	}
	return ctx.JSON(http.StatusOK, obs)
}
