package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core/course"
)

type courseApi struct {
	svc      *course.Service
	validate *validator.Validate
}

func registerCourseAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := courseApi{svc: deps.CourseSvc, validate: deps.Validate}

	cg := g.Group("/courses", mw...)
	cg.GET("", api.query)
	cg.POST("", api.create, leaderMiddleware)
	cg.GET("/:id", api.get)
	cg.PATCH("/:id", api.update, leaderMiddleware)
	cg.DELETE("/:id", api.delete, adminMiddleware)
	cg.POST("/:id/approve", api.approve, adminMiddleware)

	eg := g.Group("/enrollments", mw...)
	eg.GET("", api.queryEnrollments)
	eg.POST("", api.enroll)
	eg.PATCH("/:id", api.updateEnrollment)
}

func (api courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api courseApi) get(ctx echo.Context) error {
	crs, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api courseApi) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Create(actorName(ctx), *data, claims.IsAdmin)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api courseApi) update(ctx echo.Context) error {
	data := new(course.UpdateCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Update(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api courseApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api courseApi) approve(ctx echo.Context) error {
	crs, err := api.svc.Approve(actorName(ctx), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

// queryEnrollments scopes to the calling teacher; leaders and admins may
// pass teacherId or omit it to list everything.
func (api courseApi) queryEnrollments(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}

	var enrs []course.Enrollment
	switch {
	case claims.IsTeacher:
		enrs, err = api.svc.EnrollmentsByTeacher(claims.Subject)
	case ctx.QueryParam("teacherId") != "":
		enrs, err = api.svc.EnrollmentsByTeacher(ctx.QueryParam("teacherId"))
	default:
		enrs, err = api.svc.Enrollments()
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enrs)
}

func (api courseApi) enroll(ctx echo.Context) error {
	data := new(course.NewEnrollment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	enr, err := api.svc.Enroll(*data)
	if err != nil {
		if err == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, enr)
}

func (api courseApi) updateEnrollment(ctx echo.Context) error {
	data := new(course.UpdateEnrollment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	enr, err := api.svc.UpdateEnrollment(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enr)
}
