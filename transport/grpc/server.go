package grpc

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/mirror520/users"
	pb "github.com/mirror520/users/proto"
)

// Run blocks serving the UserService on addr over an insecure listener.
func Run(addr string, endpoints users.Endpoints) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	server := grpc.NewServer()
	pb.RegisterUserServiceServer(server, NewUserServiceServer(endpoints))
	return server.Serve(lis)
}
