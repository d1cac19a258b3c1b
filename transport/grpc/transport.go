package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mirror520/users"
	pb "github.com/mirror520/users/proto"
	"github.com/mirror520/users/user"
)

// transportError renders the shared error vocabulary as gRPC statuses:
// NotFound for absent ids, Internal for everything else.
func transportError(err error) error {
	if errors.Is(err, user.ErrUserNotFound) {
		return status.Error(codes.NotFound, "User not found")
	}

	return status.Error(codes.Internal, err.Error())
}

func NewUser(u *user.User) *pb.User {
	return &pb.User{
		Id:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

type userServiceServer struct {
	pb.UnimplementedUserServiceServer
	endpoints users.Endpoints
}

func NewUserServiceServer(endpoints users.Endpoints) pb.UserServiceServer {
	return &userServiceServer{endpoints: endpoints}
}

func (s *userServiceServer) GetUser(ctx context.Context, req *pb.UserRequest) (*pb.UserResponse, error) {
	id, err := user.ParseID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := s.endpoints.GetUser(ctx, id)
	if err != nil {
		return nil, transportError(err)
	}

	return &pb.UserResponse{User: NewUser(resp.(*user.User))}, nil
}

func (s *userServiceServer) GetUsers(ctx context.Context, req *pb.UsersRequest) (*pb.UsersResponse, error) {
	resp, err := s.endpoints.ListUsers(ctx, nil)
	if err != nil {
		return nil, transportError(err)
	}

	us := resp.([]*user.User)

	pbUsers := make([]*pb.User, len(us))
	for i, u := range us {
		pbUsers[i] = NewUser(u)
	}

	return &pb.UsersResponse{Users: pbUsers}, nil
}

func (s *userServiceServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {
	createReq := users.CreateUserRequest{
		Name:  req.GetName(),
		Email: req.GetEmail(),
	}

	resp, err := s.endpoints.CreateUser(ctx, createReq)
	if err != nil {
		return nil, transportError(err)
	}

	return &pb.UserResponse{User: NewUser(resp.(*user.User))}, nil
}

func (s *userServiceServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserResponse, error) {
	id, err := user.ParseID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updateReq := users.UpdateUserRequest{
		ID:    id,
		Name:  req.GetName(),
		Email: req.GetEmail(),
	}

	resp, err := s.endpoints.UpdateUser(ctx, updateReq)
	if err != nil {
		return nil, transportError(err)
	}

	return &pb.UserResponse{User: NewUser(resp.(*user.User))}, nil
}

func (s *userServiceServer) DeleteUser(ctx context.Context, req *pb.UserRequest) (*pb.UserResponse, error) {
	id, err := user.ParseID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := s.endpoints.DeleteUser(ctx, id)
	if err != nil {
		return nil, transportError(err)
	}

	return &pb.UserResponse{User: NewUser(resp.(*user.User))}, nil
}
