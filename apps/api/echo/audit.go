package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/audit"
)

type auditApi struct {
	svc *audit.Service
}

func registerAuditAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := auditApi{svc: deps.AuditSvc}

	g.GET("/audit-logs", api.query, append(mw, adminMiddleware)...)
}

func (api auditApi) query(ctx echo.Context) error {
	logs, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, logs)
}
