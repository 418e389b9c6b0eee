package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const jobLockKeyPrefix = "walletboard:lock:"

// releaseScript deletes the lock only while it still carries this holder's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LocalJobLock serialises jobs inside one process.
type LocalJobLock struct {
	mu     sync.Mutex
	leases map[string]localLease
}

type localLease struct {
	token     string
	expiresAt time.Time
}

func NewLocalJobLock() JobLockInterface {
	return &LocalJobLock{leases: make(map[string]localLease)}
}

func (l *LocalJobLock) Acquire(_ context.Context, name string, ttl time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if lease, held := l.leases[name]; held && now.Before(lease.expiresAt) {
		return func() {}, false, nil
	}

	token := uuid.NewString()
	l.leases[name] = localLease{token: token, expiresAt: now.Add(ttl)}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if lease, held := l.leases[name]; held && lease.token == token {
			delete(l.leases, name)
		}
	}, true, nil
}

// RedisJobLock is a lease shared by every instance pointed at the same redis.
type RedisJobLock struct {
	client redis.UniversalClient
}

func NewRedisJobLock(client redis.UniversalClient) JobLockInterface {
	return &RedisJobLock{client: client}
}

func (l *RedisJobLock) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), bool, error) {
	key := jobLockKeyPrefix + name
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return func() {}, false, fmt.Errorf("failed to acquire job lock %s: %w", name, err)
	}
	if !acquired {
		return func() {}, false, nil
	}

	return func() {
		// the caller's context may already be cancelled when the job ends
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		releaseScript.Run(releaseCtx, l.client, []string{key}, token)
	}, true, nil
}
