package inmem

import (
	"sync"

	"github.com/mirror520/users/events"
	"github.com/mirror520/users/user"
)

type userRepository struct {
	users map[user.UserID]*user.User // map[UserID]*user.User
	sync.RWMutex
}

func NewUserRepository() (user.Repository, error) {
	repo := new(userRepository)
	repo.users = make(map[user.UserID]*user.User)
	return repo, nil
}

func (repo *userRepository) Store(u *user.User) error {
	repo.Lock()

	newUser := new(user.User)
	*newUser = *u

	u = newUser
	u.EventStore = nil

	repo.users[u.ID] = u

	repo.Unlock()
	return nil
}

func (repo *userRepository) Find(id user.UserID) (*user.User, error) {
	repo.RLock()
	defer repo.RUnlock()

	u, ok := repo.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	found := new(user.User)
	*found = *u
	found.EventStore = events.NewEventStore()
	return found, nil
}

func (repo *userRepository) FindAll() ([]*user.User, error) {
	repo.RLock()
	defer repo.RUnlock()

	users := make([]*user.User, 0, len(repo.users))
	for _, u := range repo.users {
		found := new(user.User)
		*found = *u
		found.EventStore = events.NewEventStore()
		users = append(users, found)
	}

	return users, nil
}

func (repo *userRepository) Delete(id user.UserID) (*user.User, error) {
	repo.Lock()
	defer repo.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	delete(repo.users, id)

	u.EventStore = events.NewEventStore()
	return u, nil
}

func (repo *userRepository) Close() error {
	return nil
}
