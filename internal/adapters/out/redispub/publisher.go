// Package redispub fans stored notifications out over Redis pub/sub.
package redispub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/notification"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notifications:"

type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// Ping checks the connection once at startup.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Message is the JSON payload real-time clients receive.
type Message struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Channel returns the channel a user's client subscribes to.
func Channel(userID string) string {
	return channelPrefix + userID
}

type Publisher struct {
	client redis.UniversalClient
}

func NewPublisher(client redis.UniversalClient) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) Publish(ctx context.Context, n *notification.Notification) error {
	payload, err := json.Marshal(Message{
		ID:        n.ID().String(),
		Recipient: n.Recipient().String(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt().UTC(),
	})
	if err != nil {
		return err
	}

	if err = p.client.Publish(ctx, Channel(n.Recipient().String()), payload).Err(); err != nil {
		return fmt.Errorf("publish notification %s: %w", n.ID(), err)
	}
	return nil
}
