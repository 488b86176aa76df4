package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/ekyaschools/pdi/core"
)

// Designations
const (
	DesignationTeacher = "Teacher"
	DesignationHOS     = "HOS"
	DesignationAdmin   = "Admin"
)

// Portal roles derived from designation
const (
	RoleTeacher      = "teacher"
	RoleSchoolLeader = "school-leader"
	RoleAdmin        = "admin"
)

// AllCampuses scopes a record to every physical school location.
const AllCampuses = "All Campuses"

var Designations = []string{DesignationTeacher, DesignationHOS, DesignationAdmin}

// User is a faculty record. The password is stored in plaintext: this is the
// documented demo-only login contract, not an oversight.
type User struct {
	EmpID          string `json:"empId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Designation    string `json:"designation"`
	Campus         string `json:"campus"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Department     string `json:"department,omitempty"`
}

// Role maps a designation to its portal role.
func (u User) Role() string {
	switch u.Designation {
	case DesignationTeacher:
		return RoleTeacher
	case DesignationHOS:
		return RoleSchoolLeader
	case DesignationAdmin:
		return RoleAdmin
	}
	return ""
}

func (u User) IsTeacher() bool      { return u.Designation == DesignationTeacher }
func (u User) IsSchoolLeader() bool { return u.Designation == DesignationHOS }
func (u User) IsAdmin() bool        { return u.Designation == DesignationAdmin }

// CheckPassword does an exact-string match on the stored plaintext password.
func (u User) CheckPassword(pwd string) bool {
	return u.Password != "" && u.Password == pwd
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Designation    string `json:"designation" validate:"required,oneof=Teacher HOS Admin"`
	Campus         string `json:"campus" validate:"required"`
	Password       string `json:"password" validate:"required"`
	ProfilePicture string `json:"profilePicture"`
	Department     string `json:"department"`
}

func (nu *NewUser) Validate(validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkEmailUniqueness(nu.Email)
}

// UpdateUser defines what information may be provided to modify an existing User.
// Nil fields are left untouched.
type UpdateUser struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Designation    *string `json:"designation" validate:"omitempty,oneof=Teacher HOS Admin"`
	Campus         *string `json:"campus"`
	Password       *string `json:"password"`
	ProfilePicture *string `json:"profilePicture"`
	Department     *string `json:"department"`
}

func (uu *UpdateUser) Validate(validate *validator.Validate, origUsr User, svc *Service) error {
	if uu.Name != nil {
		name := core.CleanString(*uu.Name)
		uu.Name = &name
	}
	if uu.Email != nil {
		email := core.CleanString(*uu.Email, true /* lower */)
		uu.Email = &email
	}

	if err := validate.Struct(uu); err != nil {
		return err
	}
	if uu.Email != nil && *uu.Email != origUsr.Email {
		return svc.checkEmailUniqueness(*uu.Email, origUsr)
	}
	return nil
}

// LoginRequest is the demo login contract: case-insensitive email lookup,
// exact plaintext password match.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return validate.Struct(lr)
}
