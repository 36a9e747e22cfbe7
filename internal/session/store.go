// Package session はログインセッションの発行・参照・破棄を提供します。
//
// Cookie にはランダムなトークンだけを署名付きで保持し、
// トークンとユーザーの対応はサーバー側の Store が管理します。
// ログアウト後に古い Cookie を再送しても Store に対応が無いため匿名扱いになります。
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Store はトークンからユーザーIDへの対応を保存します。
type Store interface {
	// Put はトークンにユーザーIDを関連付けます。
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get はトークンに対応するユーザーIDを返します。存在しない場合は空文字です。
	Get(ctx context.Context, token string) (string, error)
	// Delete はトークンを無効化します。存在しなくてもエラーにしません。
	Delete(ctx context.Context, token string) error
}

// RedisStore はセッションを Redis に保存します。
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore は RedisStore を作成します。
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Put はトークンを TTL 付きで保存します。
func (s *RedisStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	return s.rdb.Set(ctx, sessionKey(token), userID, ttl).Err()
}

// Get はトークンに対応するユーザーIDを取得します。
func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	userID, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

// Delete はトークンを削除します。
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore はプロセス内にセッションを保持します（開発・テスト用）。
type MemoryStore struct {
	lock    sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore は MemoryStore を作成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Put はトークンを保存します。
func (s *MemoryStore) Put(_ context.Context, token, userID string, ttl time.Duration) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries[token] = memoryEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get は期限内のトークンに対応するユーザーIDを返します。
func (s *MemoryStore) Get(_ context.Context, token string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return "", nil
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, token)
		return "", nil
	}
	return entry.userID, nil
}

// Delete はトークンを削除します。
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, token)
	return nil
}
