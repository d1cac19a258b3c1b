package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mirror520/users/conf"
	"github.com/mirror520/users/user"
)

const connectTimeout = 10 * time.Second

type userRepository struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewUserRepository connects and pings before returning, so a dead
// store fails startup instead of every later request.
func NewUserRepository(cfg conf.Persistent) (user.Repository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	repo := new(userRepository)
	repo.client = client
	repo.users = client.Database(cfg.Name).Collection("users")

	return repo, nil
}

func (repo *userRepository) Store(u *user.User) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"_id": u.ID.String()}

	_, err := repo.users.ReplaceOne(context.Background(), filter, NewUser(u), opts)
	return err
}

func (repo *userRepository) Find(id user.UserID) (*user.User, error) {
	filter := bson.M{"_id": id.String()}

	var u User
	if err := repo.users.FindOne(context.Background(), filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}

		return nil, err
	}

	return u.reconstitute()
}

func (repo *userRepository) FindAll() ([]*user.User, error) {
	ctx := context.Background()

	cursor, err := repo.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]*user.User, 0)
	for cursor.Next(ctx) {
		var u User
		if err := cursor.Decode(&u); err != nil {
			return nil, err
		}

		reconstituted, err := u.reconstitute()
		if err != nil {
			return nil, err
		}

		users = append(users, reconstituted)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (repo *userRepository) Delete(id user.UserID) (*user.User, error) {
	filter := bson.M{"_id": id.String()}

	var u User
	if err := repo.users.FindOneAndDelete(context.Background(), filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}

		return nil, err
	}

	return u.reconstitute()
}

func (repo *userRepository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	return repo.client.Disconnect(ctx)
}
