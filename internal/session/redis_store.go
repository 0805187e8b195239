package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"meetingrooms/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis with a TTL matching their expiry.
// A per-user set indexes session ids for RevokeUser.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// ConnectRedis opens a client and checks the connection.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func sessionKey(id string) string       { return "session:" + id }
func userSessionsKey(id string) string { return "user_sessions:" + id }

func (s *RedisStore) Save(ctx context.Context, sess *domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), payload, ttl)
	pipe.SAdd(ctx, userSessionsKey(sess.UserID), sess.ID)
	pipe.Expire(ctx, userSessionsKey(sess.UserID), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, userSessionsKey(sess.UserID), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) DeleteByUser(ctx context.Context, userID string) error {
	ids, err := s.rdb.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(userID))
	return s.rdb.Del(ctx, keys...).Err()
}
