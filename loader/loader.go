// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"github.com/MKhiriev/go-config-load/builder"
	"github.com/MKhiriev/go-config-load/internal/pathlist"
	"github.com/MKhiriev/go-config-load/location"
)

// Loader accumulates configuration file paths from locations, in the order
// they are added, and turns them into a [builder.Builder].
//
// A Loader is single use: [Loader.Builder], [Loader.LoadInto] and [Load]
// spend it, and any further call panics.
type Loader struct {
	paths pathlist.List
	opts  options
	spent bool
}

// New returns an empty synchronous loader.
func New(opts ...Option) *Loader {
	return &Loader{opts: newOptions(opts)}
}

// Add consumes loc and appends the path it resolves to. A location that
// resolves to nothing is skipped silently.
func (l *Loader) Add(loc location.Location) *Loader {
	l.checkUsable("Add")

	if path, ok := l.paths.Add(loc); ok {
		l.opts.log.Debug().Str("path", path).Msg("config location resolved")
	} else {
		l.opts.log.Debug().Msg("config location resolved to nothing")
	}

	return l
}

// ExcludeNotExists drops every accumulated path that does not name a regular
// file. Applying it more than once has no further effect.
func (l *Loader) ExcludeNotExists() *Loader {
	l.checkUsable("ExcludeNotExists")

	for _, path := range l.paths.Retain(l.opts.sys.IsFile) {
		l.opts.log.Debug().Str("path", path).Msg("config file does not exist, excluded")
	}

	return l
}

// Paths returns the accumulated paths without spending the loader.
func (l *Loader) Paths() []string {
	return l.paths.Paths()
}

// Builder spends the loader and returns a builder with one required file
// source per accumulated path, in order.
func (l *Loader) Builder() *builder.Builder {
	l.checkUsable("Builder")
	l.spent = true

	b := builder.New()
	for _, path := range l.paths.Paths() {
		b.AddSource(builder.File(path))
	}

	return b
}

// LoadInto spends the loader and lets target fill itself from the builder.
// Errors are returned as target reports them.
func (l *Loader) LoadInto(target Target) error {
	return target.Load(l.Builder())
}

// Load spends l and hands its builder to fn, a [LoadFunc].
func Load[T any](l *Loader, fn func(b *builder.Builder) (T, error)) (T, error) {
	return fn(l.Builder())
}

func (l *Loader) checkUsable(op string) {
	if l.spent {
		panic("loader: " + op + " called on a spent Loader")
	}
}
