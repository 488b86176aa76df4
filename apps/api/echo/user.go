package echoapi

import (
	"fmt"
	"net/http"
	"net/mail"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/settings"
	"github.com/ekyaschools/pdi/core/user"
)

// passwordResetOTP is a fixed demo code; no OTP store backs it yet.
const passwordResetOTP = "123456"

type userApi struct {
	auth        auth
	svc         *user.Service
	settingsSvc *settings.Service
	mailer      core.EmailService
	validate    *validator.Validate
}

func registerUserAPI(g *echo.Group, deps ServerDeps, mw ...echo.MiddlewareFunc) {
	api := userApi{
		auth:        auth{conf: deps.Conf, svc: deps.UserSvc},
		svc:         deps.UserSvc,
		settingsSvc: deps.SettingsSvc,
		mailer:      deps.Mailer,
		validate:    deps.Validate,
	}

	ug := g.Group("/users")
	ug.POST("/login", api.login)
	ug.POST("/password-reset", api.requestPasswordReset)
	ug.POST("/token/refresh", api.refreshToken, mw...)

	ug.GET("", api.queryAll, append(mw, adminMiddleware)...)
	ug.POST("", api.create, append(mw, adminMiddleware)...)
	ug.GET("/me", api.me, mw...)
	ug.GET("/teachers", api.teachers, append(mw, leaderMiddleware)...)
	ug.GET("/:empID", api.get, mw...)
	ug.PATCH("/:empID", api.update, append(mw, adminMiddleware)...)
	ug.DELETE("/:empID", api.delete, append(mw, adminMiddleware)...)
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
	Role  string    `json:"role"`
}

func (api userApi) login(ctx echo.Context) error {
	data := new(user.LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, ok := api.svc.Authenticate(data.Email, data.Password)
	if !ok {
		return errHttpUnauthorized
	}
	token, err := api.auth.GenerateToken(usr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loginResponse{Token: token, User: usr, Role: usr.Role()})
}

func (api userApi) refreshToken(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errHttpUnauthorized
	}
	token, err := api.auth.RefreshToken(&claims)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"token": token})
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// requestPasswordReset always answers 200 so the endpoint cannot be used to
// probe which emails exist.
func (api userApi) requestPasswordReset(ctx echo.Context) error {
	data := new(passwordResetRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	data.Email = core.CleanString(data.Email, true /* lower */)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	if usr, err := api.svc.GetByEmail(data.Email); err == nil {
		api.mailer.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
			Subject: "Password Reset",
			Body:    fmt.Sprintf("Hi %s,\n\nYour password reset code is %s.", usr.Name, passwordResetOTP),
		})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "If the email is registered, a reset code has been sent."})
}

func (api userApi) queryAll(ctx echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api userApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api userApi) teachers(ctx echo.Context) error {
	var (
		teachers []user.User
		err      error
	)
	if campus := ctx.QueryParam("campus"); campus != "" {
		teachers, err = api.svc.TeachersByCampus(campus)
	} else {
		teachers, err = api.svc.Teachers()
	}
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api userApi) get(ctx echo.Context) error {
	usr, err := api.svc.GetByEmpID(ctx.Param("empID"))
	if err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api userApi) create(ctx echo.Context) error {
	if s, err := api.settingsSvc.Get(); err == nil && !s.AllowRegistration {
		return echo.NewHTTPError(http.StatusForbidden, "Registration is disabled")
	}

	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Create(actorName(ctx), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api userApi) update(ctx echo.Context) error {
	empID := ctx.Param("empID")
	data := new(user.UpdateUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}

	orig, _ := api.svc.GetByEmpID(empID) // zero User if missing; update is a no-op then
	if err := data.Validate(api.validate, orig, api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Update(actorName(ctx), empID, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api userApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(actorName(ctx), ctx.Param("empID")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
