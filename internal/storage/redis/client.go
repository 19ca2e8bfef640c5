package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// Options подключение к redis, в котором живут снимки коллекций
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Client go-redis клиент с проверкой доступности для /health
type Client struct {
	*redis.Client
	addr string
}

func NewClient(opts Options) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			DialTimeout:  pingTimeout,
			ReadTimeout:  pingTimeout,
			WriteTimeout: pingTimeout,
		}),
		addr: opts.Addr,
	}
}

// HealthCheck PING с собственным таймаутом, чтобы зависший redis не держал запрос
func (c *Client) HealthCheck(ctx context.Context) error {
	const op = "storage.redis.HealthCheck"

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %s: %w", op, c.addr, err)
	}

	return nil
}
