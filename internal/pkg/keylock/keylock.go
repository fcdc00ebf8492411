// Package keylock provides bounded-wait mutual exclusion keyed by an arbitrary
// string, used to serialize concurrent operations on the same parcel barcode.
//
// Each key is backed by a weight-1 semaphore. Acquire waits at most the lock's
// configured timeout; contention beyond that surfaces as ErrLockTimeout, which
// callers should treat as retryable.
package keylock

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrLockTimeout is returned when a lock could not be acquired within the
// configured bound. Safe to retry with backoff.
var ErrLockTimeout = errors.New("lock acquisition timed out")

// DefaultTimeout bounds lock waits when no explicit timeout is configured.
const DefaultTimeout = 3 * time.Second

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// KeyLock hands out per-key exclusive locks with a bounded wait.
// The zero value is not usable; create instances via NewKeyLock.
type KeyLock struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
}

// NewKeyLock creates a KeyLock whose Acquire calls wait at most timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewKeyLock(timeout time.Duration) *KeyLock {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &KeyLock{
		entries: make(map[string]*entry),
		timeout: timeout,
	}
}

// Acquire takes the exclusive lock for key, waiting at most the configured
// timeout (or less if ctx is cancelled first). On success it returns a release
// function that must be called exactly once. On contention past the bound it
// returns ErrLockTimeout.
func (l *KeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	e := l.retain(key)

	waitCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := e.sem.Acquire(waitCtx, 1); err != nil {
		l.release(key)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrLockTimeout
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			l.release(key)
		})
	}, nil
}

// AcquireAll takes the locks for every key in ascending order, preventing
// deadlock between overlapping multi-key operations. On any failure the locks
// already taken are released and the error of the failing key is returned.
func (l *KeyLock) AcquireAll(ctx context.Context, keys []string) (func(), error) {
	ordered := make([]string, len(keys))
	copy(ordered, keys)
	sort.Strings(ordered)

	releases := make([]func(), 0, len(ordered))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, key := range ordered {
		release, err := l.Acquire(ctx, key)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}

	var once sync.Once
	return func() {
		once.Do(releaseAll)
	}, nil
}

// retain returns the semaphore entry for key, creating it on first use.
// Reference counting keeps the map from growing with dead keys.
func (l *KeyLock) retain(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *KeyLock) release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(l.entries, key)
	}
}
