package availability_checks

import (
	"context"
	"sync"
	"time"
)

// Janitor периодически удаляет зависшие запросы
type Janitor struct {
	purger   Purger
	interval time.Duration
	logger   Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewJanitor создает планировщик очистки
func NewJanitor(purger Purger, interval time.Duration, logger Logger) *Janitor {
	return &Janitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start блокирует до Stop или отмены контекста
func (j *Janitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("Janitor: started, interval=%s", j.interval)

	j.purge(ctx)

	for {
		select {
		case <-ticker.C:
			j.purge(ctx)
		case <-j.stopChan:
			j.logger.Info("Janitor: stopped")
			return
		case <-ctx.Done():
			j.logger.Info("Janitor: context cancelled")
			return
		}
	}
}

// Stop останавливает планировщик; повторный вызов безопасен
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() { close(j.stopChan) })
}

func (j *Janitor) purge(ctx context.Context) {
	if _, err := j.purger.PurgeStale(ctx); err != nil {
		j.logger.Error("Janitor: purge failed: %v", err)
	}
}
