package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/goal"
)

type goalApi struct {
	svc      *goal.Service
	validate *validator.Validate
}

func registerGoalAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := goalApi{svc: deps.GoalSvc, validate: deps.Validate}

	gg := g.Group("/goals", mw...)
	gg.GET("", api.query)
	gg.POST("", api.create)
	gg.PATCH("/:id", api.update)
}

func (api goalApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	var goals []goal.Goal
	switch {
	case claims.IsTeacher:
		goals, err = api.svc.ByTeacher(claims.Subject)
	case ctx.QueryParam("teacherId") != "":
		goals, err = api.svc.ByTeacher(ctx.QueryParam("teacherId"))
	default:
		goals, err = api.svc.QueryAll()
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, goals)
}

func (api goalApi) create(ctx echo.Context) error {
	data := new(goal.NewGoal)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	g, err := api.svc.Create(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, g)
}

func (api goalApi) update(ctx echo.Context) error {
	data := new(goal.UpdateGoal)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	g, err := api.svc.Update(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, g)
}
