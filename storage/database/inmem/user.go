package inmemdb

import (
	"sort"
	"strings"

	"github.com/ekyaschools/pdi/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

// query must be called with db.mu held.
func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.users))
	for _, u := range repo.db.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].EmpID < users[j].EmpID })
	return users
}

func (repo *userRepository) CheckEmailUniqueness(email string, excludedUsers ...user.User) error {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.users {
		if !strings.EqualFold(usr.Email, email) {
			continue
		}
		excluded := false
		for _, excl := range excludedUsers {
			if excl.EmpID == usr.EmpID {
				excluded = true
				break
			}
		}
		if !excluded {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if usr.EmpID == "" {
		switch usr.Designation {
		case user.DesignationHOS:
			usr.EmpID = repo.db.nextID(seqHOS)
		case user.DesignationAdmin:
			usr.EmpID = repo.db.nextID(seqAdmin)
		default:
			usr.EmpID = repo.db.nextID(seqTeacher)
		}
	}
	repo.db.users[usr.EmpID] = &usr
	return usr, nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) GetUserByEmpID(empID string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if usr, ok := repo.db.users[empID]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.db.users {
		if strings.EqualFold(usr.Email, email) {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) FilterUsersByDesignation(designation string) ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	users := make([]user.User, 0)
	for _, usr := range repo.query() {
		if usr.Designation == designation {
			users = append(users, usr)
		}
	}
	return users, nil
}

func (repo *userRepository) UpdateUser(empID string, uu user.UpdateUser) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	usr, ok := repo.db.users[empID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	// only save set fields
	if uu.Name != nil {
		usr.Name = *uu.Name
	}
	if uu.Email != nil {
		usr.Email = *uu.Email
	}
	if uu.Designation != nil {
		usr.Designation = *uu.Designation
	}
	if uu.Campus != nil {
		usr.Campus = *uu.Campus
	}
	if uu.Password != nil {
		usr.Password = *uu.Password
	}
	if uu.ProfilePicture != nil {
		usr.ProfilePicture = *uu.ProfilePicture
	}
	if uu.Department != nil {
		usr.Department = *uu.Department
	}
	return *usr, nil
}

func (repo *userRepository) DeleteUser(empID string) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	usr, ok := repo.db.users[empID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	delete(repo.db.users, empID)
	return *usr, nil
}
