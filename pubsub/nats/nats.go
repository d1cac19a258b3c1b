package nats

import (
	"context"
	"os"
	"sync"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/mirror520/users/pubsub"
)

func NewPubSub() (pubsub.PubSub, error) {
	log := zap.L().With(
		zap.String("pubsub", "nats"),
	)

	url, ok := os.LookupEnv("NATS_URL")
	if !ok {
		url = nats.DefaultURL
	}

	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	js, err := nc.JetStream()
	if err != nil {
		return nil, err
	}

	return &pubSub{
		log:           log,
		nc:            nc,
		js:            js,
		subscriptions: make(map[string]*nats.Subscription),
	}, nil
}

type pubSub struct {
	log           *zap.Logger
	nc            *nats.Conn
	js            nats.JetStreamContext
	subscriptions map[string]*nats.Subscription // map[topic]*nats.Subscription
	sync.Mutex
}

func (ps *pubSub) Publish(topic string, data []byte) error {
	_, err := ps.js.Publish(topic, data)
	return err
}

func (ps *pubSub) Subscribe(topic string, callback pubsub.MessageHandler) error {
	sub, err := ps.js.Subscribe(topic, func(m *nats.Msg) {
		msg := &pubsub.Message{
			Topic: m.Subject,
			Data:  m.Data,
		}

		if err := callback(context.Background(), msg); err != nil {
			ps.log.Error(err.Error(), zap.String("topic", m.Subject))
		}
	})

	if err != nil {
		return err
	}

	ps.Lock()
	ps.subscriptions[topic] = sub
	ps.Unlock()
	return nil
}

func (ps *pubSub) Close() error {
	ps.Lock()
	defer ps.Unlock()

	for topic, sub := range ps.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			ps.log.Error(err.Error(), zap.String("topic", topic))
		}
	}

	ps.nc.Close()
	return nil
}
