package inmem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mirror520/users/user"
)

type userRepositoryTestSuite struct {
	suite.Suite
	users user.Repository
	user  *user.User
}

func (suite *userRepositoryTestSuite) SetupTest() {
	users, err := NewUserRepository()
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	u := user.NewUser("Ada", "ada@x.com")
	users.Store(u)

	suite.users = users
	suite.user = u
}

func (suite *userRepositoryTestSuite) TestFind() {
	u, err := suite.users.Find(suite.user.ID)
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Equal("Ada", u.Name)
	suite.Equal("ada@x.com", u.Email)
}

func (suite *userRepositoryTestSuite) TestFindNotFound() {
	_, err := suite.users.Find(user.NewID())
	suite.True(errors.Is(err, user.ErrUserNotFound))
}

func (suite *userRepositoryTestSuite) TestFindAll() {
	suite.users.Store(user.NewUser("Grace", "grace@x.com"))

	us, err := suite.users.FindAll()
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Len(us, 2)
}

func (suite *userRepositoryTestSuite) TestDelete() {
	deleted, err := suite.users.Delete(suite.user.ID)
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Equal(suite.user.ID, deleted.ID)

	_, err = suite.users.Find(suite.user.ID)
	suite.True(errors.Is(err, user.ErrUserNotFound))

	// a second delete is not idempotent
	_, err = suite.users.Delete(suite.user.ID)
	suite.True(errors.Is(err, user.ErrUserNotFound))
}

func (suite *userRepositoryTestSuite) TearDownTest() {
	suite.users.Close()
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(userRepositoryTestSuite))
}
