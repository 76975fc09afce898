package session

import (
	"context"
	"sync"

	"blackjack/internal/game"
)

// MemoryStore держит раунды в памяти, теряются при рестарте
type MemoryStore struct {
	games map[string]game.State
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]game.State),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.games[key]
	if !ok {
		return game.State{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Put(_ context.Context, key string, state game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[key] = state
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, key)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
