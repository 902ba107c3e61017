// Package presence tracks which users are online. Each heartbeat refreshes a
// Redis key with a short TTL, so a user drops off the online list by simply
// going quiet. Keys live in Redis rather than process memory so every
// instance of the API sees the same list.
package presence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const prefijo = "online:"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Marcar registers a heartbeat for the user.
func (s *Store) Marcar(ctx context.Context, usuarioID uuid.UUID) error {
	return s.rdb.Set(ctx, prefijo+usuarioID.String(), "1", s.ttl).Err()
}

// Remover drops the user immediately, without waiting for the TTL.
func (s *Store) Remover(ctx context.Context, usuarioID uuid.UUID) error {
	return s.rdb.Del(ctx, prefijo+usuarioID.String()).Err()
}

// Listar returns the IDs of every user with a live heartbeat.
func (s *Store) Listar(ctx context.Context) ([]uuid.UUID, error) {
	var (
		ids    []uuid.UUID
		cursor uint64
	)
	for {
		claves, siguiente, err := s.rdb.Scan(ctx, cursor, prefijo+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, clave := range claves {
			id, err := uuid.Parse(strings.TrimPrefix(clave, prefijo))
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		if siguiente == 0 {
			return ids, nil
		}
		cursor = siguiente
	}
}
