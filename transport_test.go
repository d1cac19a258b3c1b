package users_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mirror520/users"
	"github.com/mirror520/users/persistent/inmem"

	pb "github.com/mirror520/users/proto"
	graphqltransport "github.com/mirror520/users/transport/graphql"
	grpctransport "github.com/mirror520/users/transport/grpc"
	httptransport "github.com/mirror520/users/transport/http"
)

// TestCrossTransportEquivalence creates a user over REST and reads it
// back over gRPC and GraphQL against the same repository.
func TestCrossTransportEquivalence(t *testing.T) {
	repo, err := inmem.NewUserRepository()
	if err != nil {
		t.Fatal(err.Error())
	}

	svc := users.NewService(repo)
	endpoints := users.MakeEndpoints(svc)

	// REST
	gin.SetMode(gin.TestMode)
	router := gin.New()
	httptransport.SetRouter(router, endpoints)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Ada","email":"ada@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 from REST create, got %d", w.Code)
	}

	var created struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err.Error())
	}

	// gRPC
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err.Error())
	}

	server := grpc.NewServer()
	pb.RegisterUserServiceServer(server, grpctransport.NewUserServiceServer(endpoints))
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.Dial(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatal(err.Error())
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := pb.NewUserServiceClient(conn).GetUser(ctx, &pb.UserRequest{Id: created.ID})
	if err != nil {
		t.Fatalf("GetUser RPC failed: %v", err)
	}

	if resp.GetUser().GetName() != created.Name || resp.GetUser().GetEmail() != created.Email {
		t.Fatalf("gRPC returned a different user: %+v", resp.GetUser())
	}

	// GraphQL
	schema, err := graphqltransport.NewSchema(endpoints)
	if err != nil {
		t.Fatal(err.Error())
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ user(id: "` + created.ID + `") { id name email } }`,
	})
	if len(result.Errors) > 0 {
		t.Fatalf("GraphQL query failed: %v", result.Errors)
	}

	data := result.Data.(map[string]any)
	u := data["user"].(map[string]any)

	if u["name"] != created.Name || u["email"] != created.Email {
		t.Fatalf("GraphQL returned a different user: %+v", u)
	}
}
