package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/user"
)

const claimsContextKey = "user"

type Claims struct {
	jwt.StandardClaims

	OriginalIssuedAt int64  `json:"orig_iat,omitempty"`
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty"`
	Campus           string `json:"campus,omitempty"`
	Role             string `json:"role,omitempty"`
	IsTeacher        bool   `json:"is_teacher,omitempty"`
	IsSchoolLeader   bool   `json:"is_school_leader,omitempty"`
	IsAdmin          bool   `json:"is_admin,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		Claims:     &Claims{},
		ContextKey: claimsContextKey,
		SigningKey: []byte(conf.SecretKey),
	}
}

type auth struct {
	conf *core.Config
	svc  *user.Service
}

// GenerateToken builds a signed token for usr. Claims carry the portal
// role flags so route guards need not hit the store.
func (a auth) GenerateToken(usr user.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   usr.EmpID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(a.conf.Server.JWTExpirationDelta).Unix(),
		},
		OriginalIssuedAt: now.Unix(),
		Name:             usr.Name,
		Email:            usr.Email,
		Campus:           usr.Campus,
		Role:             usr.Role(),
		IsTeacher:        usr.IsTeacher(),
		IsSchoolLeader:   usr.IsSchoolLeader(),
		IsAdmin:          usr.IsAdmin(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.conf.SecretKey))
}

// RefreshToken re-issues claims with a new expiry, within the refresh window
// counted from the original issue time.
func (a auth) RefreshToken(claims *Claims) (string, error) {
	now := time.Now()
	refreshDeadline := time.Unix(claims.OriginalIssuedAt, 0).Add(a.conf.Server.JWTRefreshExpirationDelta)
	if now.After(refreshDeadline) {
		return "", errHttpUnauthorized
	}

	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(a.conf.Server.JWTExpirationDelta).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.conf.SecretKey))
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	token, ok := ctx.Get(claimsContextKey).(*jwt.Token)
	if !ok {
		return Claims{}, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}
	return *claims, nil
}

func getContextUser(ctx echo.Context, svc *user.Service) (user.User, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return user.User{}, err
	}
	usr, err := svc.GetByEmpID(claims.Subject)
	if err != nil {
		return user.User{}, errHttpUnauthorized
	}
	return usr, nil
}

// actorName resolves the display name for audit-log attribution.
func actorName(ctx echo.Context) string {
	claims, err := getContextClaims(ctx)
	if err != nil || claims.Name == "" {
		return "System"
	}
	return claims.Name
}
