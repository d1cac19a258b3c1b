package db

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mirror520/users/conf"
	"github.com/mirror520/users/user"
)

type DBPersistent interface {
	DB() *gorm.DB
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(cfg conf.Persistent) (user.Repository, error) {
	name := cfg.Name + ".sql"
	if cfg.InMem {
		name = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db.AutoMigrate(&User{})

	repo := new(userRepository)
	repo.db = db
	return repo, nil
}

func (repo *userRepository) Store(u *user.User) error {
	result := repo.db.Save(NewUser(u))
	if err := result.Error; err != nil {
		return err
	}

	return nil
}

func (repo *userRepository) Find(id user.UserID) (*user.User, error) {
	var u *User

	result := repo.db.Take(&u, "id = ?", id.String())

	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}

		return nil, err
	}

	return u.reconstitute(), nil
}

func (repo *userRepository) FindAll() ([]*user.User, error) {
	var us []*User

	result := repo.db.Find(&us)
	if err := result.Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, len(us))
	for i, u := range us {
		users[i] = u.reconstitute()
	}

	return users, nil
}

func (repo *userRepository) Delete(id user.UserID) (*user.User, error) {
	u, err := repo.Find(id)
	if err != nil {
		return nil, err
	}

	result := repo.db.Delete(&User{}, "id = ?", id.String())
	if err := result.Error; err != nil {
		return nil, err
	}

	return u, nil
}

func (repo *userRepository) Close() error {
	db, err := repo.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func (repo *userRepository) DB() *gorm.DB {
	return repo.db
}
