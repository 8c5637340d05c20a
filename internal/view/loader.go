package view

import (
	"context"

	"github.com/Makepad-fr/postview/internal/model"
)

// Loader reads the whole record collection once. Transport, URL and
// timeouts belong to the implementation.
type Loader interface {
	Load(ctx context.Context) ([]model.Record, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context) ([]model.Record, error)

func (f LoaderFunc) Load(ctx context.Context) ([]model.Record, error) { return f(ctx) }

// Apply runs l and folds its outcome into s.
func Apply(ctx context.Context, s State, l Loader) State {
	records, err := l.Load(ctx)
	if err != nil {
		return s.LoadFailed(err)
	}
	return s.Loaded(records)
}
