package poller

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pixperk/sheetsql/internal/logx"
	"go.uber.org/zap"
)

type PollConfig struct {
	Path     string
	Interval time.Duration
	OnChange func(modTime time.Time) error
}

// Poller calls OnChange once at start and again whenever the file's
// modification time or size changes.
type Poller struct {
	config PollConfig
	stat   func(string) (os.FileInfo, error)
}

func NewPoller(config PollConfig) *Poller {
	return &Poller{
		config: config,
		stat:   os.Stat,
	}
}

type fileState struct {
	modTime time.Time
	size    int64
}

func (p *Poller) Start(ctx context.Context) error {
	if p.config.Interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", p.config.Interval)
	}

	var lastSeen fileState
	check := func() {
		info, err := p.stat(p.config.Path)
		if err != nil {
			logx.Logger.Warn("Failed to stat watched file",
				zap.String("path", p.config.Path),
				zap.Error(err))
			return
		}

		current := fileState{modTime: info.ModTime(), size: info.Size()}
		if current == lastSeen {
			logx.Logger.Debug("No change detected", zap.String("path", p.config.Path))
			return
		}
		lastSeen = current

		logx.Logger.Info("Change detected",
			zap.String("path", p.config.Path),
			zap.Time("mod_time", current.modTime),
			zap.Int64("size", current.size))

		if err := p.config.OnChange(current.modTime); err != nil {
			logx.Logger.Error("Failed to process change",
				zap.String("path", p.config.Path),
				zap.Error(err))
		}
	}

	logx.Logger.Info("Starting poller",
		zap.String("path", p.config.Path),
		zap.Duration("interval", p.config.Interval))

	check()

	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logx.Logger.Info("Stopping (context cancelled)")
			return ctx.Err()
		case <-ticker.C:
			check()
		}
	}
}
