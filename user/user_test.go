package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	assert := assert.New(t)

	u := NewUser("Ada", "ada@x.com")
	assert.Equal("Ada", u.Name)
	assert.Equal("ada@x.com", u.Email)
	assert.NotEmpty(u.ID.String())

	events := u.Events()
	assert.Len(events, 1)
	assert.Equal("user_created", events[0].EventName())
}

func TestUpdate(t *testing.T) {
	assert := assert.New(t)

	u := NewUser("Ada", "ada@x.com")
	id := u.ID

	u.Update("Ada Lovelace", "lovelace@x.com")
	assert.Equal(id, u.ID)
	assert.Equal("Ada Lovelace", u.Name)
	assert.Equal("lovelace@x.com", u.Email)

	events := u.Events()
	assert.Len(events, 2)
	assert.Equal("user_updated", events[1].EventName())
}

func TestUserIDJSON(t *testing.T) {
	assert := assert.New(t)

	u := NewUser("Ada", "ada@x.com")

	bs, err := json.Marshal(u)
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	var decoded *User
	if err := json.Unmarshal(bs, &decoded); err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(u.ID, decoded.ID)
	assert.Equal(u.Name, decoded.Name)
}

func TestParseID(t *testing.T) {
	assert := assert.New(t)

	id := NewID()

	parsed, err := ParseID(id.String())
	if err != nil {
		assert.Fail(err.Error())
		return
	}

	assert.Equal(id, parsed)

	_, err = ParseID("not-an-id")
	assert.Error(err)
}
