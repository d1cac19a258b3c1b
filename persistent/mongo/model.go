package mongo

import (
	"time"

	"github.com/mirror520/users/events"
	"github.com/mirror520/users/model"
	"github.com/mirror520/users/user"
)

type User struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewUser(u *user.User) *User {
	return &User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (u *User) reconstitute() (*user.User, error) {
	id, err := user.ParseID(u.ID)
	if err != nil {
		return nil, err
	}

	return &user.User{
		ID:    id,
		Name:  u.Name,
		Email: u.Email,
		Model: model.Model{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		EventStore: events.NewEventStore(),
	}, nil
}
