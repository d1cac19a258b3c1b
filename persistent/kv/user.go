package kv

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/mirror520/users/conf"
	"github.com/mirror520/users/events"
	"github.com/mirror520/users/user"
)

type userRepository struct {
	db *badger.DB
}

func NewUserRepository(cfg conf.Persistent) (user.Repository, error) {
	opts := badger.DefaultOptions(cfg.Name)
	if cfg.InMem {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	repo := new(userRepository)
	repo.db = db

	return repo, nil
}

func (repo *userRepository) Store(u *user.User) error {
	bs, err := json.Marshal(u)
	if err != nil {
		return err
	}

	return repo.db.Update(func(txn *badger.Txn) error {
		return txn.Set(u.ID.Bytes(), bs)
	})
}

func (repo *userRepository) Find(id user.UserID) (*user.User, error) {
	var u *user.User

	if err := repo.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(id.Bytes())
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return user.ErrUserNotFound
			}

			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &u)
		})
	}); err != nil {
		return nil, err
	}

	u.EventStore = events.NewEventStore()
	return u, nil
}

func (repo *userRepository) FindAll() ([]*user.User, error) {
	users := make([]*user.User, 0)

	if err := repo.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var u *user.User
				if err := json.Unmarshal(val, &u); err != nil {
					return err
				}

				u.EventStore = events.NewEventStore()
				users = append(users, u)
				return nil
			})

			if err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return users, nil
}

func (repo *userRepository) Delete(id user.UserID) (*user.User, error) {
	u, err := repo.Find(id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(id.Bytes())
	}); err != nil {
		return nil, err
	}

	return u, nil
}

func (repo *userRepository) Close() error {
	return repo.db.Close()
}

func (repo *userRepository) DB() *badger.DB {
	return repo.db
}
