// Package session keeps the round currently being played by each chat or
// HTTP client. Only the latest state per key is stored.
package session

import (
	"context"
	"errors"
	"sync"

	"blackjack/internal/game"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Get(ctx context.Context, key string) (game.State, error)
	Put(ctx context.Context, key string, state game.State) error
	Delete(ctx context.Context, key string) error
}

// Locks hands out one mutex per key so a read-transition-write on a session
// is not interleaved with another update to the same session.
type Locks struct {
	mu sync.Mutex
	m  map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewLocks() *Locks {
	return &Locks{m: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (l *Locks) Lock(key string) func() {
	l.mu.Lock()
	kl, ok := l.m[key]
	if !ok {
		kl = &keyLock{}
		l.m[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()

	return func() {
		kl.mu.Unlock()

		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.m, key)
		}
		l.mu.Unlock()
	}
}
