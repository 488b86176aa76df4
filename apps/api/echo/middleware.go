package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/settings"
)

// adminMiddleware restricts a route to admin users.
func adminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, err := getContextClaims(ctx)
		if err != nil {
			return errHttpUnauthorized
		}
		if !claims.IsAdmin {
			return errHttpForbidden
		}
		return next(ctx)
	}
}

// leaderMiddleware restricts a route to school leaders and admins.
func leaderMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, err := getContextClaims(ctx)
		if err != nil {
			return errHttpUnauthorized
		}
		if !(claims.IsSchoolLeader || claims.IsAdmin) {
			return errHttpForbidden
		}
		return next(ctx)
	}
}

// maintenanceMiddleware rejects non-admin traffic while the platform is in
// maintenance mode. It runs after JWT auth so admins keep access.
func maintenanceMiddleware(svc *settings.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			s, err := svc.Get()
			if err != nil || !s.MaintenanceMode {
				return next(ctx)
			}
			if claims, err := getContextClaims(ctx); err == nil && claims.IsAdmin {
				return next(ctx)
			}
			return echo.NewHTTPError(http.StatusServiceUnavailable, "The portal is under maintenance")
		}
	}
}
