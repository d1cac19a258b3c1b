package graphql

import (
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/mirror520/users"
	"github.com/mirror520/users/user"
)

// transportError keeps the wire message of the original API: absent
// ids read "User not found", anything else carries the fault through.
func transportError(err error) error {
	if errors.Is(err, user.ErrUserNotFound) {
		return errors.New("User not found")
	}

	return err
}

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				u, ok := p.Source.(*user.User)
				if !ok {
					return nil, errors.New("invalid source")
				}

				return u.ID.String(), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"email": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

func NewSchema(endpoints users.Endpoints) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, err := user.ParseID(p.Args["id"].(string))
					if err != nil {
						return nil, err
					}

					resp, err := endpoints.GetUser(p.Context, id)
					if err != nil {
						return nil, transportError(err)
					}

					return resp, nil
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewList(userType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					resp, err := endpoints.ListUsers(p.Context, nil)
					if err != nil {
						return nil, transportError(err)
					}

					return resp, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					req := users.CreateUserRequest{
						Name:  p.Args["name"].(string),
						Email: p.Args["email"].(string),
					}

					resp, err := endpoints.CreateUser(p.Context, req)
					if err != nil {
						return nil, transportError(err)
					}

					return resp, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, err := user.ParseID(p.Args["id"].(string))
					if err != nil {
						return nil, err
					}

					req := users.UpdateUserRequest{
						ID:    id,
						Name:  p.Args["name"].(string),
						Email: p.Args["email"].(string),
					}

					resp, err := endpoints.UpdateUser(p.Context, req)
					if err != nil {
						return nil, transportError(err)
					}

					return resp, nil
				},
			},
			"deleteUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					id, err := user.ParseID(p.Args["id"].(string))
					if err != nil {
						return nil, err
					}

					resp, err := endpoints.DeleteUser(p.Context, id)
					if err != nil {
						return nil, transportError(err)
					}

					return resp, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func NewHandler(schema graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
