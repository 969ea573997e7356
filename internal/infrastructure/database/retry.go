package database

import (
	"context"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ConnectWithRetry calls connect with exponential backoff until it succeeds,
// ctx is done, or budget has elapsed. Only used at startup.
func ConnectWithRetry[T any](ctx context.Context, budget time.Duration, name string, connect func() (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = budget

	attempt := 0
	return backoff.RetryNotifyWithData(func() (T, error) {
		attempt++
		return connect()
	}, backoff.WithContext(bo, ctx), func(err error, wait time.Duration) {
		log.Printf("⚠️  %s not ready (attempt %d): %v, retrying in %s", name, attempt, err, wait)
	})
}
