package alloc

import (
	"log/slog"

	"github.com/pavanmanishd/vector/internal/logger"
)

// Logged reports buffer traffic of its inner strategy: allocations and
// deallocations at debug level, failed allocations at warn level. Element
// events are not logged.
type Logged[T any] struct {
	Strategy[T]
	log *slog.Logger
}

// NewLogged wraps inner. A nil log means the module logger, resolved at
// each call so a later logger.Init takes effect.
func NewLogged[T any](inner Strategy[T], log *slog.Logger) *Logged[T] {
	return &Logged[T]{Strategy: inner, log: log}
}

func (l *Logged[T]) sink() *slog.Logger {
	if l.log != nil {
		return l.log
	}
	return logger.L
}

func (l *Logged[T]) Allocate(n int) ([]T, error) {
	buf, err := l.Strategy.Allocate(n)
	if err != nil {
		l.sink().Warn("allocate failed", "slots", n, "err", err)
		return nil, err
	}
	l.sink().Debug("allocate", "slots", n, "bytes", n*elemSize[T]())
	return buf, nil
}

func (l *Logged[T]) Deallocate(buf []T) {
	l.sink().Debug("deallocate", "slots", len(buf), "bytes", len(buf)*elemSize[T]())
	l.Strategy.Deallocate(buf)
}
