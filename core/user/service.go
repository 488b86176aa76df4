package user

import (
	"github.com/pkg/errors"

	"github.com/ekyaschools/pdi/core"
	"github.com/ekyaschools/pdi/core/audit"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	Repository interface {
		CheckEmailUniqueness(email string, excludedUsers ...User) error
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByEmpID(empID string) (User, error)
		// GetUserByEmail does a case-insensitive match on User.Email.
		GetUserByEmail(email string) (User, error)
		FilterUsersByDesignation(designation string) ([]User, error)
		// UpdateUser merges set fields into the record; ErrNotFound if missing.
		UpdateUser(empID string, uu UpdateUser) (User, error)
		// DeleteUser must not cascade to dependent collections.
		DeleteUser(empID string) (User, error)
	}

	Service struct {
		repo Repository
		rec  audit.Recorder
	}
)

func NewService(repo Repository, rec audit.Recorder) *Service {
	return &Service{repo: repo, rec: rec}
}

func (svc *Service) checkEmailUniqueness(email string, exclUsers ...User) error {
	if err := svc.repo.CheckEmailUniqueness(email, exclUsers...); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Authenticate implements the demo login contract: case-insensitive email
// lookup, exact plaintext password match. It reports success only; callers
// get no user-not-found vs wrong-password distinction.
func (svc *Service) Authenticate(email, pwd string) (User, bool) {
	usr, err := svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
	if err != nil {
		return User{}, false
	}
	if !usr.CheckPassword(pwd) {
		return User{}, false
	}
	return usr, true
}

func (svc *Service) Create(actor string, nu NewUser) (User, error) {
	usr, err := svc.repo.CreateUser(User{
		Name:           nu.Name,
		Email:          nu.Email,
		Designation:    nu.Designation,
		Campus:         nu.Campus,
		Password:       nu.Password,
		ProfilePicture: nu.ProfilePicture,
		Department:     nu.Department,
	})
	if err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}
	svc.rec.Record("User Created", actor, usr.Name, audit.TypeManagement)
	return usr, nil
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByEmpID(empID string) (User, error) {
	return svc.repo.GetUserByEmpID(empID)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) Teachers() ([]User, error) {
	return svc.repo.FilterUsersByDesignation(DesignationTeacher)
}

func (svc *Service) HeadsOfSchool() ([]User, error) {
	return svc.repo.FilterUsersByDesignation(DesignationHOS)
}

func (svc *Service) Admins() ([]User, error) {
	return svc.repo.FilterUsersByDesignation(DesignationAdmin)
}

func (svc *Service) TeachersByCampus(campus string) ([]User, error) {
	teachers, err := svc.Teachers()
	if err != nil {
		return nil, err
	}
	matches := make([]User, 0, len(teachers))
	for _, t := range teachers {
		if t.Campus == campus {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// Update merges set fields into the user. A missing empID is absorbed as a
// silent no-op, per the store contract.
func (svc *Service) Update(actor, empID string, uu UpdateUser) (User, error) {
	usr, err := svc.repo.UpdateUser(empID, uu)
	if err != nil {
		if err == ErrNotFound {
			return User{}, nil
		}
		return User{}, errors.Wrap(err, "updating user")
	}
	svc.rec.Record("User Updated", actor, empID, audit.TypeManagement)
	return usr, nil
}

// Delete removes the user only; their observations, goals and enrollments
// are deliberately orphaned. A missing empID is a silent no-op.
func (svc *Service) Delete(actor, empID string) error {
	usr, err := svc.repo.DeleteUser(empID)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return errors.Wrap(err, "deleting user")
	}
	target := usr.Name
	if target == "" {
		target = empID
	}
	svc.rec.Record("User Deleted", actor, target, audit.TypeManagement)
	return nil
}
