package users

import (
	"go.uber.org/zap"

	"github.com/mirror520/users/user"
)

func LoggingMiddleware(log *zap.Logger) ServiceMiddleware {
	return func(next Service) Service {
		return &loggingMiddleware{
			log.With(
				zap.String("service", "users"),
				zap.String("middleware", "logging"),
			),
			next,
		}
	}
}

type loggingMiddleware struct {
	log  *zap.Logger
	next Service
}

func (mw *loggingMiddleware) Create(name string, email string) (*user.User, error) {
	log := mw.log.With(
		zap.String("action", "create"),
	)

	u, err := mw.next.Create(name, email)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("user created", zap.String("user_id", u.ID.String()))
	return u, nil
}

func (mw *loggingMiddleware) Find(id user.UserID) (*user.User, error) {
	log := mw.log.With(
		zap.String("action", "find"),
		zap.String("user_id", id.String()),
	)

	u, err := mw.next.Find(id)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	return u, nil
}

func (mw *loggingMiddleware) FindAll() ([]*user.User, error) {
	log := mw.log.With(
		zap.String("action", "find_all"),
	)

	users, err := mw.next.FindAll()
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("users listed", zap.Int("count", len(users)))
	return users, nil
}

func (mw *loggingMiddleware) Update(id user.UserID, name string, email string) (*user.User, error) {
	log := mw.log.With(
		zap.String("action", "update"),
		zap.String("user_id", id.String()),
	)

	u, err := mw.next.Update(id, name, email)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("user updated")
	return u, nil
}

func (mw *loggingMiddleware) Delete(id user.UserID) (*user.User, error) {
	log := mw.log.With(
		zap.String("action", "delete"),
		zap.String("user_id", id.String()),
	)

	u, err := mw.next.Delete(id)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}

	log.Info("user deleted")
	return u, nil
}
