package user

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/mirror520/users/events"
)

type EventName int

const (
	Unknown EventName = iota
	UserCreated
	UserUpdated
	UserDeleted
)

func ParseEventName(s string) EventName {
	switch s {
	case "user_created":
		return UserCreated
	case "user_updated":
		return UserUpdated
	case "user_deleted":
		return UserDeleted
	default:
		return Unknown
	}
}

func (name EventName) String() string {
	switch name {
	case UserCreated:
		return "user_created"
	case UserUpdated:
		return "user_updated"
	case UserDeleted:
		return "user_deleted"
	default:
		return ""
	}
}

func (name EventName) MarshalJSON() ([]byte, error) {
	jsonStr := `"` + name.String() + `"`
	return []byte(jsonStr), nil
}

func (name *EventName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*name = ParseEventName(s)
	return nil
}

type Event struct {
	Domain    string    `json:"domain"`
	Name      EventName `json:"name"`
	UserID    UserID    `json:"user_id"` // AggregateRoot
	OccuredAt time.Time `json:"occured_at"`
}

func NewEvent(name EventName, u *User) *Event {
	return &Event{
		Domain:    "users",
		Name:      name,
		UserID:    u.ID,
		OccuredAt: u.UpdatedAt,
	}
}

func (e *Event) EventName() string {
	return e.Name.String()
}

func (e *Event) Topic() string {
	name := strings.TrimPrefix(e.Name.String(), "user_")
	return "users." + e.UserID.String() + "." + name
}

type UserCreatedEvent struct {
	*Event
	User *User `json:"user"`
}

func NewUserCreatedEvent(u *User) events.DomainEvent {
	return &UserCreatedEvent{
		Event: NewEvent(UserCreated, u),
		User:  u,
	}
}

type UserUpdatedEvent struct {
	*Event
	User *User `json:"user"`
}

func NewUserUpdatedEvent(u *User) events.DomainEvent {
	return &UserUpdatedEvent{
		Event: NewEvent(UserUpdated, u),
		User:  u,
	}
}

type UserDeletedEvent struct {
	*Event
	User *User `json:"user"`
}

func NewUserDeletedEvent(u *User) events.DomainEvent {
	return &UserDeletedEvent{
		Event: NewEvent(UserDeleted, u),
		User:  u,
	}
}
