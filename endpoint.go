package users

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/mirror520/users/user"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	ID    user.UserID `json:"-"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}

func CreateUserEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(CreateUserRequest)
		u, err := svc.Create(req.Name, req.Email)
		if err != nil {
			return nil, err
		}

		return u, nil
	}
}

func GetUserEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		id := request.(user.UserID)
		u, err := svc.Find(id)
		if err != nil {
			return nil, err
		}

		return u, nil
	}
}

func ListUsersEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		us, err := svc.FindAll()
		if err != nil {
			return nil, err
		}

		return us, nil
	}
}

func UpdateUserEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		req := request.(UpdateUserRequest)
		u, err := svc.Update(req.ID, req.Name, req.Email)
		if err != nil {
			return nil, err
		}

		return u, nil
	}
}

func DeleteUserEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request any) (response any, err error) {
		id := request.(user.UserID)
		u, err := svc.Delete(id)
		if err != nil {
			return nil, err
		}

		return u, nil
	}
}

// Endpoints bundles the five operations so each transport can be wired
// from a single value.
type Endpoints struct {
	CreateUser endpoint.Endpoint
	GetUser    endpoint.Endpoint
	ListUsers  endpoint.Endpoint
	UpdateUser endpoint.Endpoint
	DeleteUser endpoint.Endpoint
}

func MakeEndpoints(svc Service) Endpoints {
	return Endpoints{
		CreateUser: CreateUserEndpoint(svc),
		GetUser:    GetUserEndpoint(svc),
		ListUsers:  ListUsersEndpoint(svc),
		UpdateUser: UpdateUserEndpoint(svc),
		DeleteUser: DeleteUserEndpoint(svc),
	}
}
