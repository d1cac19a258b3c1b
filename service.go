package users

import (
	"github.com/mirror520/users/user"
)

// Service is the one boundary every transport adapter goes through.
// It surfaces exactly two error kinds: user.ErrUserNotFound for absent
// ids, and anything else as an internal fault for the adapter to map.
type Service interface {
	Create(name string, email string) (*user.User, error)
	Find(id user.UserID) (*user.User, error)
	FindAll() ([]*user.User, error)
	Update(id user.UserID, name string, email string) (*user.User, error)
	Delete(id user.UserID) (*user.User, error)
}

type ServiceMiddleware func(Service) Service

type service struct {
	users user.Repository
}

func NewService(users user.Repository) Service {
	svc := new(service)
	svc.users = users
	return svc
}

func (svc *service) Create(name string, email string) (*user.User, error) {
	u := user.NewUser(name, email)

	if err := svc.users.Store(u); err != nil {
		return nil, err
	}

	return u, nil
}

func (svc *service) Find(id user.UserID) (*user.User, error) {
	return svc.users.Find(id)
}

func (svc *service) FindAll() ([]*user.User, error) {
	return svc.users.FindAll()
}

func (svc *service) Update(id user.UserID, name string, email string) (*user.User, error) {
	u, err := svc.users.Find(id)
	if err != nil {
		return nil, err
	}

	u.Update(name, email)

	if err := svc.users.Store(u); err != nil {
		return nil, err
	}

	return u, nil
}

func (svc *service) Delete(id user.UserID) (*user.User, error) {
	u, err := svc.users.Delete(id)
	if err != nil {
		return nil, err
	}

	u.Delete()
	return u, nil
}
