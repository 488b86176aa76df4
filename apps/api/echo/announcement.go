package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/announcement"
)

type announcementApi struct {
	svc      *announcement.Service
	validate *validator.Validate
}

func registerAnnouncementAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := announcementApi{svc: deps.AnnouncementSvc, validate: deps.Validate}

	ag := g.Group("/announcements", mw...)
	ag.GET("", api.query)
	ag.POST("", api.create, adminMiddleware)
	ag.PATCH("/:id", api.update, adminMiddleware)
	ag.DELETE("/:id", api.delete, adminMiddleware)
}

func (api announcementApi) query(ctx echo.Context) error {
	anns, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api announcementApi) create(ctx echo.Context) error {
	data := new(announcement.NewAnnouncement)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ann, err := api.svc.Create(actorName(ctx), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ann)
}

func (api announcementApi) update(ctx echo.Context) error {
	data := new(announcement.UpdateAnnouncement)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ann, err := api.svc.Update(actorName(ctx), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ann)
}

func (api announcementApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(actorName(ctx), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
