package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/granit-next/internal/constants"
	"github.com/granit-next/internal/repository"
)

// CartStore 购物车快照存储端口。
// Load 返回 nil 表示无快照；每次购物车变更后整体覆写快照。
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, blob []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// DBCartStore 数据库快照存储（键值对表）
type DBCartStore struct {
	repo repository.CartSnapshotRepository
}

// NewDBCartStore 创建数据库快照存储
func NewDBCartStore(repo repository.CartSnapshotRepository) *DBCartStore {
	return &DBCartStore{repo: repo}
}

// Load 读取快照
func (s *DBCartStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	snapshot, err := s.repo.GetByKey(snapshotKey(sessionID))
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}
	return []byte(snapshot.Value), nil
}

// Save 覆写快照
func (s *DBCartStore) Save(_ context.Context, sessionID string, blob []byte) error {
	_, err := s.repo.Upsert(snapshotKey(sessionID), string(blob))
	return err
}

// Delete 删除快照
func (s *DBCartStore) Delete(_ context.Context, sessionID string) error {
	return s.repo.DeleteByKey(snapshotKey(sessionID))
}

// RedisCartStore Redis 快照存储
type RedisCartStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCartStore 创建 Redis 快照存储，ttl 为 0 表示不过期
func NewRedisCartStore(client *redis.Client, prefix string, ttl time.Duration) *RedisCartStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = constants.RedisPrefixDefault
	}
	return &RedisCartStore{client: client, prefix: prefix, ttl: ttl}
}

// Load 读取快照
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return blob, nil
}

// Save 覆写快照
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, blob []byte) error {
	return s.client.Set(ctx, s.key(sessionID), blob, s.ttl).Err()
}

// Delete 删除快照
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *RedisCartStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, snapshotKey(sessionID))
}

func snapshotKey(sessionID string) string {
	return constants.CartSnapshotKeyPrefix + sessionID
}
