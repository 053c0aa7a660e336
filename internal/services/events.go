package services

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

const eventStream = "item-events"

// EventPublisher publishes item lifecycle events to NATS JetStream. A nil
// publisher is valid and drops everything, so the service runs without NATS.
type EventPublisher struct {
	nc *nats.Conn
	js nats.JetStreamContext
}

// ConnectEvents connects to NATS and ensures the item-events stream exists.
func ConnectEvents(url string) (*EventPublisher, error) {
	opts := []nats.Option{
		nats.Name("item-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("[NATS] disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("[NATS] reconnected")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if err := ensureStream(js); err != nil {
		log.Warn().Err(err).Msg("[NATS] failed to ensure stream")
	}

	log.Info().Str("url", url).Msg("[NATS] connected")
	return &EventPublisher{nc: nc, js: js}, nil
}

func ensureStream(js nats.JetStreamContext) error {
	if _, err := js.StreamInfo(eventStream); err == nil {
		return nil
	}
	_, err := js.AddStream(&nats.StreamConfig{
		Name:     eventStream,
		Subjects: []string{"items.*"},
		Storage:  nats.FileStorage,
		MaxAge:   30 * 24 * time.Hour,
	})
	return err
}

// Publish sends one event, e.g. subject "items.reported".
func (p *EventPublisher) Publish(subject string, payload any) error {
	if p == nil || p.js == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if _, err := p.js.Publish(subject, data, nats.MsgId(uuid.New().String())); err != nil {
		log.Warn().Str("subject", subject).Err(err).Msg("[NATS] publish failed")
		return err
	}
	return nil
}

func (p *EventPublisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}
