package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/pdhours"
)

type pdHoursApi struct {
	svc *pdhours.Service
}

func registerPDHoursAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := pdHoursApi{svc: deps.PDHoursSvc}

	pg := g.Group("/pd-hours", mw...)
	pg.GET("", api.query)
	pg.GET("/total", api.total)
}

func (api pdHoursApi) teacherID(ctx echo.Context) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errHttpUnauthorized
	}
	if !claims.IsTeacher && ctx.QueryParam("teacherId") != "" {
		return ctx.QueryParam("teacherId"), nil
	}
	return claims.Subject, nil
}

func (api pdHoursApi) query(ctx echo.Context) error {
	teacherID, err := api.teacherID(ctx)
	if err != nil {
		return err
	}
	records, err := api.svc.ByTeacher(teacherID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, records)
}

// total reports the summed Completed hours next to the network-wide target,
// which backs the teacher dashboard progress ring.
func (api pdHoursApi) total(ctx echo.Context) error {
	teacherID, err := api.teacherID(ctx)
	if err != nil {
		return err
	}
	total, err := api.svc.TotalForTeacher(teacherID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"teacherId": teacherID,
		"total":     total,
		"target":    api.svc.Target(),
	})
}
