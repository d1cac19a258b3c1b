package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/mirror520/users"
	"github.com/mirror520/users/model"
	"github.com/mirror520/users/persistent/inmem"
	"github.com/mirror520/users/user"

	transport "github.com/mirror520/users/transport/http"
)

type userJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type transportTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *transportTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	repo, err := inmem.NewUserRepository()
	if err != nil {
		suite.Fail(err.Error())
		return
	}

	svc := users.NewService(repo)
	endpoints := users.MakeEndpoints(svc)

	r := gin.New()
	transport.SetRouter(r, endpoints)

	suite.router = r
}

func (suite *transportTestSuite) request(method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *transportTestSuite) create(name string, email string) userJSON {
	w := suite.request(http.MethodPost, "/users", `{"name":"`+name+`","email":"`+email+`"}`)
	suite.Equal(http.StatusCreated, w.Code)

	var u userJSON
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		suite.Fail(err.Error())
	}

	return u
}

func (suite *transportTestSuite) TestCreateUser() {
	u := suite.create("Ada", "ada@x.com")

	suite.NotEmpty(u.ID)
	suite.Equal("Ada", u.Name)
	suite.Equal("ada@x.com", u.Email)
}

func (suite *transportTestSuite) TestCreateUserMissingFields() {
	w := suite.request(http.MethodPost, "/users", `{"name":"Ada"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *transportTestSuite) TestGetUser() {
	created := suite.create("Ada", "ada@x.com")

	w := suite.request(http.MethodGet, "/users/"+created.ID, "")
	suite.Equal(http.StatusOK, w.Code)

	var u userJSON
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Equal(created.ID, u.ID)
	suite.Equal("Ada", u.Name)
}

func (suite *transportTestSuite) TestGetUserNotFound() {
	w := suite.request(http.MethodGet, "/users/"+user.NewID().String(), "")
	suite.Equal(http.StatusNotFound, w.Code)

	var result model.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Equal(model.FAILURE, result.Status)
	suite.Equal("user not found", result.Msg)
}

func (suite *transportTestSuite) TestListUsers() {
	suite.create("Ada", "ada@x.com")
	suite.create("Grace", "grace@x.com")

	w := suite.request(http.MethodGet, "/users", "")
	suite.Equal(http.StatusOK, w.Code)

	var us []userJSON
	if err := json.Unmarshal(w.Body.Bytes(), &us); err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Len(us, 2)
}

func (suite *transportTestSuite) TestUpdateUser() {
	created := suite.create("Ada", "ada@x.com")

	w := suite.request(http.MethodPut, "/users/"+created.ID, `{"name":"Ada Lovelace","email":"lovelace@x.com"}`)
	suite.Equal(http.StatusOK, w.Code)

	var u userJSON
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		suite.Fail(err.Error())
		return
	}

	suite.Equal(created.ID, u.ID)
	suite.Equal("Ada Lovelace", u.Name)
	suite.Equal("lovelace@x.com", u.Email)
}

func (suite *transportTestSuite) TestUpdateUserNotFound() {
	w := suite.request(http.MethodPut, "/users/"+user.NewID().String(), `{"name":"Nobody","email":"nobody@x.com"}`)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *transportTestSuite) TestDeleteUser() {
	created := suite.create("Ada", "ada@x.com")

	w := suite.request(http.MethodDelete, "/users/"+created.ID, "")
	suite.Equal(http.StatusOK, w.Code)

	var u userJSON
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		suite.Fail(err.Error())
		return
	}
	suite.Equal(created.ID, u.ID)

	w = suite.request(http.MethodGet, "/users/"+created.ID, "")
	suite.Equal(http.StatusNotFound, w.Code)

	// second delete on the same id
	w = suite.request(http.MethodDelete, "/users/"+created.ID, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTransportTestSuite(t *testing.T) {
	suite.Run(t, new(transportTestSuite))
}
