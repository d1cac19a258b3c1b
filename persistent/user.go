package persistent

import (
	"errors"

	"github.com/mirror520/users/conf"
	"github.com/mirror520/users/persistent/db"
	"github.com/mirror520/users/persistent/inmem"
	"github.com/mirror520/users/persistent/kv"
	"github.com/mirror520/users/persistent/mongo"
	"github.com/mirror520/users/user"
)

func NewUserRepository(cfg conf.Persistent) (user.Repository, error) {
	switch cfg.Driver {
	case conf.MongoDB:
		return mongo.NewUserRepository(cfg)
	case conf.SQLite:
		return db.NewUserRepository(cfg)
	case conf.BadgerDB:
		return kv.NewUserRepository(cfg)
	case conf.InMem:
		return inmem.NewUserRepository()
	default:
		return nil, errors.New("driver not supported")
	}
}
