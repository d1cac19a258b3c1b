package db

import (
	"gorm.io/gorm"

	"github.com/mirror520/users/events"
	"github.com/mirror520/users/model"
	"github.com/mirror520/users/user"
)

type User struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Email string
	model.DataModel
}

func NewUser(u *user.User) *User {
	return &User{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		DataModel: model.DataModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			DeletedAt: gorm.DeletedAt{
				Time:  u.DeletedAt,
				Valid: !u.DeletedAt.IsZero(),
			},
		},
	}
}

func (u *User) reconstitute() *user.User {
	id, err := user.ParseID(u.ID)
	if err != nil {
		panic(err.Error())
	}

	return &user.User{
		ID:    id,
		Name:  u.Name,
		Email: u.Email,
		Model: model.Model{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			DeletedAt: u.DeletedAt.Time,
		},
		EventStore: events.NewEventStore(),
	}
}
