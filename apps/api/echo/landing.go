package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The landing page is the only unauthenticated read surface: active
// announcements plus the full gallery (gallery expiry is never filtered).
func registerLandingAPI(g *echo.Group, deps ServerDeps) {
	lg := g.Group("/landing")

	lg.GET("/announcements", func(ctx echo.Context) error {
		anns, err := deps.AnnouncementSvc.Active()
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, anns)
	})

	lg.GET("/gallery", func(ctx echo.Context) error {
		images, err := deps.GallerySvc.QueryAll()
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, images)
	})
}
