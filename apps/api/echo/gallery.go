package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/gallery"
)

type galleryApi struct {
	svc      *gallery.Service
	validate *validator.Validate
}

func registerGalleryAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := galleryApi{svc: deps.GallerySvc, validate: deps.Validate}

	gg := g.Group("/gallery", mw...)
	gg.GET("", api.query)
	gg.POST("", api.create, adminMiddleware)
	gg.PATCH("/:id", api.update, adminMiddleware)
	gg.DELETE("/:id", api.delete, adminMiddleware)
}

func (api galleryApi) query(ctx echo.Context) error {
	images, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, images)
}

func (api galleryApi) create(ctx echo.Context) error {
	data := new(gallery.NewImage)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	img, err := api.svc.Create(actorName(ctx), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, img)
}

func (api galleryApi) update(ctx echo.Context) error {
	data := new(gallery.UpdateImage)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	img, err := api.svc.Update(actorName(ctx), ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, img)
}

func (api galleryApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(actorName(ctx), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
