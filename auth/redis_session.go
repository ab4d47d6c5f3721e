package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore menyimpan sesi di Redis, untuk deployment dengan
// lebih dari satu instance server.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(redisURL string, ttl time.Duration) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

func sessionKey(token string) string {
	return "admin_session:" + token
}

func (s *RedisSessionStore) Load(token string) (*AdminUser, error) {
	data, err := s.client.Get(context.Background(), sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var user AdminUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *RedisSessionStore) Save(token string, user *AdminUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), sessionKey(token), data, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(token string) error {
	return s.client.Del(context.Background(), sessionKey(token)).Err()
}
