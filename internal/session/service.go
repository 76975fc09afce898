package session

import (
	"context"
	"errors"
	"fmt"

	"blackjack/internal/game"
)

// ErrNotPlayerTurn is returned when a shell tries to hit after the player stood.
var ErrNotPlayerTurn = errors.New("not the player's turn")

// Service runs game transitions against a Store, one at a time per key.
type Service struct {
	store Store
	locks *Locks
	rng   game.Rand
}

func NewService(store Store, rng game.Rand) *Service {
	return &Service{
		store: store,
		locks: NewLocks(),
		rng:   rng,
	}
}

// Deal starts a new round for key, replacing any round in progress.
func (s *Service) Deal(ctx context.Context, key string) (game.State, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	state := game.Setup(s.rng)
	if err := s.store.Put(ctx, key, state); err != nil {
		return game.State{}, err
	}
	return state, nil
}

// Redeal starts a new round only if key already has one. The check and the
// deal happen under the same lock, so a concurrent Delete is not undone.
func (s *Service) Redeal(ctx context.Context, key string) (game.State, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	if _, err := s.store.Get(ctx, key); err != nil {
		return game.State{}, err
	}

	state := game.Setup(s.rng)
	if err := s.store.Put(ctx, key, state); err != nil {
		return game.State{}, err
	}
	return state, nil
}

func (s *Service) Get(ctx context.Context, key string) (game.State, error) {
	return s.store.Get(ctx, key)
}

// Hit is refused once the turn has passed to the dealer.
func (s *Service) Hit(ctx context.Context, key string) (game.State, error) {
	return s.update(ctx, key, func(st game.State) (game.State, error) {
		if st.Turn != game.PlayerTurn {
			return st, ErrNotPlayerTurn
		}
		return game.PlayerHits(st)
	})
}

func (s *Service) Stand(ctx context.Context, key string) (game.State, error) {
	return s.update(ctx, key, game.PlayerStands)
}

func (s *Service) Delete(ctx context.Context, key string) error {
	unlock := s.locks.Lock(key)
	defer unlock()
	return s.store.Delete(ctx, key)
}

func (s *Service) update(ctx context.Context, key string, fn func(game.State) (game.State, error)) (game.State, error) {
	unlock := s.locks.Lock(key)
	defer unlock()

	state, err := s.store.Get(ctx, key)
	if err != nil {
		return game.State{}, err
	}

	next, err := fn(state)
	if err != nil {
		return state, err
	}

	if err := s.store.Put(ctx, key, next); err != nil {
		return state, fmt.Errorf("failed to store %s: %w", key, err)
	}
	return next, nil
}
