package memory

import (
	"context"
	"fmt"

	"trattoria/internal/storage"

	"github.com/patrickmn/go-cache"
)

// Storage хранилище снимков в памяти процесса. Живет столько же, сколько процесс.
type Storage struct {
	c        *cache.Cache
	maxBytes int
}

type Option func(*Storage)

// WithQuota ограничивает суммарный размер значений в байтах, как квота localStorage
func WithQuota(maxBytes int) Option {
	return func(s *Storage) {
		s.maxBytes = maxBytes
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		c: cache.New(cache.NoExpiration, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	const op = "storage.memory.Get"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	v, ok := s.c.Get(key)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrorNoSuchKey)
	}

	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidSnapshot)
	}

	return str, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	const op = "storage.memory.Set"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.maxBytes > 0 && s.usedWithout(key)+len(key)+len(value) > s.maxBytes {
		return fmt.Errorf("%s: %w", op, storage.ErrQuotaExceeded)
	}

	s.c.Set(key, value, cache.NoExpiration)

	return nil
}

// usedWithout считает занятое место без учета значения под key
func (s *Storage) usedWithout(key string) int {
	used := 0
	for k, item := range s.c.Items() {
		if k == key {
			continue
		}
		if str, ok := item.Object.(string); ok {
			used += len(k) + len(str)
		}
	}

	return used
}
