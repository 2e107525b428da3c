package storage

import (
	"context"
	"errors"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/redis/go-redis/v9"
)

// RedisKeyValueStorage keeps each slot as a plain string key without expiry.
type RedisKeyValueStorage struct {
	Client *redis.Client
}

func (s *RedisKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		logging.Log.Errorf("KV: GET %q failed: %v", key, err)
		return nil, err
	}
	return b, nil
}

func (s *RedisKeyValueStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.Client.Set(ctx, key, value, 0).Err(); err != nil {
		logging.Log.Errorf("KV: SET %q failed: %v", key, err)
		return err
	}
	return nil
}

func (s *RedisKeyValueStorage) Delete(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		logging.Log.Errorf("KV: DEL %q failed: %v", key, err)
		return err
	}
	return nil
}
