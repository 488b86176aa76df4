package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/settings"
)

type settingsApi struct {
	svc *settings.Service
}

func registerSettingsAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := settingsApi{svc: deps.SettingsSvc}

	sg := g.Group("/settings", append(mw, adminMiddleware)...)
	sg.GET("", api.get)
	sg.PATCH("", api.update)
}

func (api settingsApi) get(ctx echo.Context) error {
	s, err := api.svc.Get()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api settingsApi) update(ctx echo.Context) error {
	data := new(settings.UpdateSettings)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	s, err := api.svc.Update(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s)
}
