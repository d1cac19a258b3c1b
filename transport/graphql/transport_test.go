package graphql_test

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/suite"

	"github.com/mirror520/users"
	"github.com/mirror520/users/persistent/inmem"
	"github.com/mirror520/users/user"

	transport "github.com/mirror520/users/transport/graphql"
)

type transportTestSuite struct {
	suite.Suite
	schema graphql.Schema
}

func (suite *transportTestSuite) SetupTest() {
	repo, err := inmem.NewUserRepository()
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	svc := users.NewService(repo)
	endpoints := users.MakeEndpoints(svc)

	schema, err := transport.NewSchema(endpoints)
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.schema = schema
}

func (suite *transportTestSuite) do(query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        suite.schema,
		RequestString: query,
	})
}

func (suite *transportTestSuite) createUser(name string, email string) map[string]any {
	result := suite.do(`mutation { createUser(name: "` + name + `", email: "` + email + `") { id name email } }`)
	if suite.Empty(result.Errors) {
		data := result.Data.(map[string]any)
		return data["createUser"].(map[string]any)
	}

	return nil
}

func (suite *transportTestSuite) TestCreateUser() {
	created := suite.createUser("Ada", "ada@x.com")

	suite.NotEmpty(created["id"])
	suite.Equal("Ada", created["name"])
	suite.Equal("ada@x.com", created["email"])
}

func (suite *transportTestSuite) TestQueryUser() {
	created := suite.createUser("Ada", "ada@x.com")
	id := created["id"].(string)

	result := suite.do(`{ user(id: "` + id + `") { id name email } }`)
	if !suite.Empty(result.Errors) {
		return
	}

	data := result.Data.(map[string]any)
	u := data["user"].(map[string]any)

	suite.Equal(id, u["id"])
	suite.Equal("Ada", u["name"])
}

func (suite *transportTestSuite) TestQueryUserNotFound() {
	result := suite.do(`{ user(id: "` + user.NewID().String() + `") { id } }`)

	if suite.Len(result.Errors, 1) {
		suite.Equal("User not found", result.Errors[0].Message)
	}
}

func (suite *transportTestSuite) TestQueryUsers() {
	suite.createUser("Ada", "ada@x.com")
	suite.createUser("Grace", "grace@x.com")

	result := suite.do(`{ users { id name email } }`)
	if !suite.Empty(result.Errors) {
		return
	}

	data := result.Data.(map[string]any)
	us := data["users"].([]any)

	suite.Len(us, 2)
}

func (suite *transportTestSuite) TestUpdateUser() {
	created := suite.createUser("Ada", "ada@x.com")
	id := created["id"].(string)

	result := suite.do(`mutation { updateUser(id: "` + id + `", name: "Ada Lovelace", email: "lovelace@x.com") { id name email } }`)
	if !suite.Empty(result.Errors) {
		return
	}

	data := result.Data.(map[string]any)
	u := data["updateUser"].(map[string]any)

	suite.Equal(id, u["id"])
	suite.Equal("Ada Lovelace", u["name"])
	suite.Equal("lovelace@x.com", u["email"])
}

func (suite *transportTestSuite) TestUpdateUserNotFound() {
	result := suite.do(`mutation { updateUser(id: "` + user.NewID().String() + `", name: "Nobody", email: "nobody@x.com") { id } }`)

	if suite.Len(result.Errors, 1) {
		suite.Equal("User not found", result.Errors[0].Message)
	}
}

func (suite *transportTestSuite) TestDeleteUser() {
	created := suite.createUser("Ada", "ada@x.com")
	id := created["id"].(string)

	result := suite.do(`mutation { deleteUser(id: "` + id + `") { id name } }`)
	if !suite.Empty(result.Errors) {
		return
	}

	data := result.Data.(map[string]any)
	u := data["deleteUser"].(map[string]any)
	suite.Equal(id, u["id"])

	result = suite.do(`{ user(id: "` + id + `") { id } }`)
	if suite.Len(result.Errors, 1) {
		suite.Equal("User not found", result.Errors[0].Message)
	}
}

func TestTransportTestSuite(t *testing.T) {
	suite.Run(t, new(transportTestSuite))
}
