package etl

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/pixperk/sheetsql/internal/logx"
	"go.uber.org/zap"
)

// RetryConfig controls Retry. A nil Retryable treats every error as
// transient.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
	Retryable   func(error) bool
}

// DefaultRetryConfig suits a spreadsheet that is still being saved when a
// change is first noticed.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts: 3,
	BaseDelay:   250 * time.Millisecond,
	MaxDelay:    2 * time.Second,
	Jitter:      true,
}

func Retry(ctx context.Context, config RetryConfig, operation func() error) error {
	var attempt int
	for {
		err := operation()
		if err == nil {
			return nil
		}
		if config.Retryable != nil && !config.Retryable(err) {
			return err
		}
		attempt++
		if attempt >= config.MaxAttempts {
			return fmt.Errorf("max retry attempts reached: %w", err)
		}

		// Exponential backoff with jitter
		backoff := min(config.BaseDelay*time.Duration(math.Pow(2, float64(attempt))), config.MaxDelay)
		if config.Jitter && backoff > 1 {
			backoff += time.Duration(rand.Int63n(int64(backoff / 2)))
		}

		logx.Logger.Warn("Operation failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
			zap.Duration("backoff", backoff),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
}
