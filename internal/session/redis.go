package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-admin-gateway/internal/models"
)

// redisPersistence хранит сессию как JSON под одним фиксированным ключом.
type redisPersistence struct {
	rdb *redis.Client
	key string
	ttl time.Duration // 0 — без TTL; истечение сессии определяет access-токен.
}

// NewRedisPersistence создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если key пустой — используется "admin:session".
func NewRedisPersistence(redisURL, key string, ttl time.Duration) (Persistence, func() error, error) {
	if key == "" {
		key = "admin:session"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	p := &redisPersistence{rdb: rdb, key: key, ttl: ttl}
	return p, rdb.Close, nil
}

func (p *redisPersistence) Save(ctx context.Context, s *models.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return p.rdb.Set(ctx, p.key, raw, p.ttl).Err()
}

func (p *redisPersistence) Load(ctx context.Context) (*models.Session, bool, error) {
	raw, err := p.rdb.Get(ctx, p.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, err
	}

	return &s, true, nil
}

func (p *redisPersistence) Delete(ctx context.Context) error {
	return p.rdb.Del(ctx, p.key).Err()
}
