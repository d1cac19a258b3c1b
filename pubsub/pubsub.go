package pubsub

import "context"

type PubSub interface {
	Publish(topic string, data []byte) error
	Subscribe(topic string, callback MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, msg *Message) error

type Message struct {
	Topic string
	Data  []byte
}
