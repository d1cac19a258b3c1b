package user

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mirror520/users/events"
	"github.com/mirror520/users/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserID ulid.ULID // AggregateRoot

func NewID() UserID {
	return UserID(ulid.Make())
}

func ParseID(s string) (UserID, error) {
	id, err := ulid.Parse(s)
	if err != nil {
		return UserID{}, err
	}

	return UserID(id), nil
}

func (id UserID) Bytes() []byte {
	return id[:]
}

func (id UserID) String() string {
	return ulid.ULID(id).String()
}

func (id UserID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *UserID) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("invalid user id")
	}

	parsed, err := ParseID(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

func (id UserID) Value() (driver.Value, error) {
	return id.String(), nil
}

func (id *UserID) Scan(src any) error {
	s, ok := src.(string)
	if !ok {
		return errors.New("invalid user id")
	}

	parsed, err := ParseID(s)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

type User struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	model.Model

	events.EventStore `json:"-" gorm:"-"`
}

func NewUser(name string, email string) *User {
	u := &User{
		ID:    NewID(),
		Name:  name,
		Email: email,
		Model: model.Model{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},

		EventStore: events.NewEventStore(),
	}

	e := NewUserCreatedEvent(u)
	u.AddEvent(e)

	return u
}

// Update overwrites the mutable fields; the id never changes.
func (u *User) Update(name string, email string) {
	u.Name = name
	u.Email = email
	u.UpdatedAt = time.Now()

	e := NewUserUpdatedEvent(u)
	u.AddEvent(e)
}

func (u *User) Delete() {
	u.DeletedAt = time.Now()

	e := NewUserDeletedEvent(u)
	u.AddEvent(e)
}
