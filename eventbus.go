package users

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mirror520/users/pubsub"
	"github.com/mirror520/users/user"
)

// ListenEvents subscribes to every user event on the bus and logs it,
// so a running instance records the mutations its peers publish.
func ListenEvents(ps pubsub.PubSub, log *zap.Logger) error {
	log = log.With(
		zap.String("service", "users"),
		zap.String("listener", "events"),
	)

	return ps.Subscribe("users.>", func(ctx context.Context, msg *pubsub.Message) error {
		var e *user.Event
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			return err
		}

		log.Info("event received",
			zap.String("topic", msg.Topic),
			zap.String("event", e.EventName()),
			zap.String("user_id", e.UserID.String()),
		)
		return nil
	})
}

// EventPublishingMiddleware drains the domain events a mutation
// recorded on the aggregate and publishes them on the event bus.
// Publishing is best effort: the write already committed, so a bus
// failure is logged and the caller still gets its result.
func EventPublishingMiddleware(ps pubsub.PubSub) ServiceMiddleware {
	return func(next Service) Service {
		return &eventPublishingMiddleware{
			log: zap.L().With(
				zap.String("service", "users"),
				zap.String("middleware", "event_publishing"),
			),
			ps:   ps,
			next: next,
		}
	}
}

type eventPublishingMiddleware struct {
	log  *zap.Logger
	ps   pubsub.PubSub
	next Service
}

type topicEvent interface {
	Topic() string
}

func (mw *eventPublishingMiddleware) publish(u *user.User) {
	if u.EventStore == nil {
		return
	}

	for _, e := range u.Drain() {
		te, ok := e.(topicEvent)
		if !ok {
			continue
		}

		log := mw.log.With(
			zap.String("event", e.EventName()),
			zap.String("topic", te.Topic()),
		)

		data, err := json.Marshal(e)
		if err != nil {
			log.Error(err.Error())
			continue
		}

		if err := mw.ps.Publish(te.Topic(), data); err != nil {
			log.Error(err.Error())
			continue
		}

		log.Info("event published")
	}
}

func (mw *eventPublishingMiddleware) Create(name string, email string) (*user.User, error) {
	u, err := mw.next.Create(name, email)
	if err != nil {
		return nil, err
	}

	mw.publish(u)
	return u, nil
}

func (mw *eventPublishingMiddleware) Find(id user.UserID) (*user.User, error) {
	return mw.next.Find(id)
}

func (mw *eventPublishingMiddleware) FindAll() ([]*user.User, error) {
	return mw.next.FindAll()
}

func (mw *eventPublishingMiddleware) Update(id user.UserID, name string, email string) (*user.User, error) {
	u, err := mw.next.Update(id, name, email)
	if err != nil {
		return nil, err
	}

	mw.publish(u)
	return u, nil
}

func (mw *eventPublishingMiddleware) Delete(id user.UserID) (*user.User, error) {
	u, err := mw.next.Delete(id)
	if err != nil {
		return nil, err
	}

	mw.publish(u)
	return u, nil
}
