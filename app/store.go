package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Store is a small key-value store used for ephemeral session records. It
// is intentionally narrower than Database: get/set/delete of opaque bytes.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

type redisStore struct {
	client *redis.Client
}

var (
	SessionStore Store
)

func (s *redisStore) timeout() time.Duration {
	millis := Config.Redis.TimeoutMillis
	if millis == 0 {
		millis = 2000
	}
	return time.Duration(millis) * time.Millisecond
}

// Get returns the stored value and whether the key exists.
func (s *redisStore) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout())
	defer cancel()

	return s.client.Del(ctx, key).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

// InitSessionStore connects the session store
func InitSessionStore() {
	opts, err := redis.ParseURL(Config.Redis.URI)
	if err != nil {
		log.Fatal("[STORE] Error parsing redis uri: ", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(Config.Redis.TimeoutMillis)*time.Millisecond)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("[STORE] Error connecting to redis: ", err)
	}

	SessionStore = &redisStore{client: client}
	log.Info("[STORE] Session store initialized")
}
