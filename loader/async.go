package loader

import (
	"context"

	"github.com/MKhiriev/go-config-load/builder"
	"github.com/MKhiriev/go-config-load/internal/pathlist"
	"github.com/MKhiriev/go-config-load/location"
)

// AsyncLoader is the flavor of [Loader] that produces a
// [builder.AsyncBuilder]. Path accumulation is identical; only the builder
// and the load signatures differ.
type AsyncLoader struct {
	paths pathlist.List
	opts  options
	spent bool
}

// NewAsync returns an empty asynchronous loader.
func NewAsync(opts ...Option) *AsyncLoader {
	return &AsyncLoader{opts: newOptions(opts)}
}

// Add consumes loc and appends the path it resolves to, if any.
func (l *AsyncLoader) Add(loc location.Location) *AsyncLoader {
	l.checkUsable("Add")

	if path, ok := l.paths.Add(loc); ok {
		l.opts.log.Debug().Str("path", path).Msg("config location resolved")
	} else {
		l.opts.log.Debug().Msg("config location resolved to nothing")
	}

	return l
}

// ExcludeNotExists drops every accumulated path that is not a regular file.
func (l *AsyncLoader) ExcludeNotExists() *AsyncLoader {
	l.checkUsable("ExcludeNotExists")

	for _, path := range l.paths.Retain(l.opts.sys.IsFile) {
		l.opts.log.Debug().Str("path", path).Msg("config file does not exist, excluded")
	}

	return l
}

// Paths returns the accumulated paths without spending the loader.
func (l *AsyncLoader) Paths() []string {
	return l.paths.Paths()
}

// Builder spends the loader and returns an async builder with one required
// file source per accumulated path.
func (l *AsyncLoader) Builder() *builder.AsyncBuilder {
	l.checkUsable("Builder")
	l.spent = true

	b := builder.NewAsync()
	for _, path := range l.paths.Paths() {
		b.AddSource(builder.File(path))
	}

	return b
}

// LoadInto spends the loader and lets target fill itself from the builder.
func (l *AsyncLoader) LoadInto(ctx context.Context, target AsyncTarget) error {
	return target.LoadAsync(ctx, l.Builder())
}

// LoadAsync spends l and hands its builder to fn, an [AsyncLoadFunc].
func LoadAsync[T any](ctx context.Context, l *AsyncLoader, fn func(ctx context.Context, b *builder.AsyncBuilder) (T, error)) (T, error) {
	return fn(ctx, l.Builder())
}

func (l *AsyncLoader) checkUsable(op string) {
	if l.spent {
		panic("loader: " + op + " called on a spent AsyncLoader")
	}
}
