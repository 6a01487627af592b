package app

import (
	"context"
	"errors"
	"sync"
	"time"

	errorc "storyhub/pkg/core/err"

	"github.com/bsm/redislock"
)

const (
	lockTTL     = 5 * time.Second
	lockRetry   = 50 * time.Millisecond
	lockRetries = 40
)

// Locker 按 key 互斥，release 必须调用
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// RedisLocker 基于 redislock 的分布式锁，多实例部署时使用
type RedisLocker struct {
	client *redislock.Client
	err    *errorc.ErrorBuilder
}

func NewRedisLocker(client *redislock.Client) *RedisLocker {
	return &RedisLocker{client: client, err: errorc.NewErrorBuilder("RedisLocker")}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := l.client.Obtain(ctx, key, lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(lockRetry), lockRetries),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, l.err.New("操作过于频繁，请稍后重试", err).Conflict()
		}
		return nil, l.err.New("获取分布式锁失败", err).Third()
	}
	return func() {
		// 锁可能已过期，释放失败不影响结果
		_ = lock.Release(context.Background())
	}, nil
}

// LocalLocker 进程内锁，单实例或测试时使用
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*localEntry
}

type localEntry struct {
	mu   sync.Mutex
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*localEntry)}
}

func (l *LocalLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &localEntry{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}, nil
}
