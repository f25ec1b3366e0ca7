package search

import (
	"context"

	"github.com/rs/zerolog"
)

// Functional option for NewTree
type Option func(*Tree)

// Use custom limits, the depth is always overridden by the tree's deepest level
func WithLimits(limits *Limits) Option {
	return func(t *Tree) {
		if limits != nil {
			t.Limiter.SetLimits(limits.Clone())
		}
	}
}

// Cancel the search through the context
func WithContext(ctx context.Context) Option {
	return func(t *Tree) {
		t.Limiter.SetContext(ctx)
	}
}

func WithListener(listener StatsListener) Option {
	return func(t *Tree) {
		t.listener = listener
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// Plain minimax, every branch is searched to the end
func WithoutPruning() Option {
	return func(t *Tree) {
		t.pruning = false
	}
}
