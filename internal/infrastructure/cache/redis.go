package cache

import (
	"context"
	"log"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// OpenEmbedded starts an in-process miniredis and returns a client bound to
// it. Used when no REDIS_ADDR is configured so the demo runs without any
// external service; like everything else here, its contents die with the
// process.
func OpenEmbedded() (*redis.Client, error) {
	m, err := miniredis.Run()
	if err != nil {
		return nil, err
	}
	log.Printf("cache: embedded redis on %s", m.Addr())
	return redis.NewClient(&redis.Options{Addr: m.Addr()}), nil
}
