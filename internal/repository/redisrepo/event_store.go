// Package redisrepo хранит идентификаторы уже принятых событий платежного провайдера.
package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "store:webhook:event:"
	DefaultEventTTL  = 72 * time.Hour
)

// EventStore дедупликация вебхуков через SETNX. База данных остается источником истины,
// здесь только быстрый отсев повторных доставок.
type EventStore struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

func NewEventStore(client redis.Cmdable, ttl time.Duration) *EventStore {
	if ttl <= 0 {
		ttl = DefaultEventTTL
	}
	return &EventStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
}

// Acquire занимает eventID. Возвращает false, если событие уже занято другой доставкой.
func (s *EventStore) Acquire(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("[redis/event_store] acquire event `%s`: %w", eventID, err)
	}
	return ok, nil
}

// Release освобождает eventID, чтобы повторная доставка события была обработана.
func (s *EventStore) Release(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("[redis/event_store] release event `%s`: %w", eventID, err)
	}
	return nil
}

// Connect создает клиента и проверяет соединение.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second) //nolint:mnd
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", addr, err)
	}
	return client, nil
}
