package builder

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// AsyncSource is a configuration layer whose loading may block and should
// honour cancellation.
type AsyncSource interface {
	Name() string
	LoadContext(ctx context.Context, k *koanf.Koanf) error
}

// AsyncBuilder is the context-aware counterpart of [Builder]. It accepts both
// plain and [AsyncSource] layers and loads them in registration order,
// stopping as soon as ctx is done.
type AsyncBuilder struct {
	sources []AsyncSource
}

// NewAsync returns an empty async builder.
func NewAsync() *AsyncBuilder {
	return &AsyncBuilder{
		sources: make([]AsyncSource, 0, 4),
	}
}

// AddSource registers a plain source.
func (b *AsyncBuilder) AddSource(s Source) *AsyncBuilder {
	if s == nil {
		b.sources = append(b.sources, nil)
		return b
	}
	return b.AddAsyncSource(syncSource{s})
}

// AddAsyncSource registers a context-aware source.
func (b *AsyncBuilder) AddAsyncSource(s AsyncSource) *AsyncBuilder {
	b.sources = append(b.sources, s)
	return b
}

// Sources returns the registered sources in load order.
func (b *AsyncBuilder) Sources() []AsyncSource {
	return append([]AsyncSource(nil), b.sources...)
}

// Build loads every source in order. ctx is checked before each source.
func (b *AsyncBuilder) Build(ctx context.Context) (*koanf.Koanf, error) {
	k := koanf.New(Delim)
	for _, src := range b.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if src == nil {
			return nil, ErrNilSource
		}
		if err := src.LoadContext(ctx, k); err != nil {
			return nil, fmt.Errorf("error loading config from %s: %w", src.Name(), err)
		}
	}

	return k, nil
}

type syncSource struct {
	Source
}

func (s syncSource) LoadContext(_ context.Context, k *koanf.Koanf) error {
	return s.Load(k)
}

type funcSource struct {
	name string
	fn   func(ctx context.Context) (map[string]any, error)
}

// AsyncFunc adapts fn into an [AsyncSource]. The returned map is merged like
// a [Map] source.
func AsyncFunc(name string, fn func(ctx context.Context) (map[string]any, error)) AsyncSource {
	return &funcSource{name: name, fn: fn}
}

func (s *funcSource) Name() string {
	return "func " + s.name
}

func (s *funcSource) LoadContext(ctx context.Context, k *koanf.Koanf) error {
	values, err := s.fn(ctx)
	if err != nil {
		return err
	}

	return k.Load(confmap.Provider(values, Delim), nil)
}
