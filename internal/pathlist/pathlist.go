// Package pathlist holds the ordered list of resolved configuration paths
// shared by the synchronous and asynchronous loaders.
package pathlist

import (
	"github.com/MKhiriev/go-config-load/location"
)

// List is an ordered, append-only list of paths. The order is the layering
// order of the configuration files built from it.
type List struct {
	paths []string
}

// Add consumes loc and appends the path it resolves to, if any. It reports
// the appended path and whether anything was added.
func (l *List) Add(loc location.Location) (string, bool) {
	if loc == nil {
		return "", false
	}

	path, ok := loc.Path()
	if !ok {
		return "", false
	}

	l.paths = append(l.paths, path)
	return path, true
}

// Retain keeps only the paths for which keep reports true, preserving order.
// It returns the dropped paths.
func (l *List) Retain(keep func(path string) bool) []string {
	var dropped []string

	kept := l.paths[:0]
	for _, path := range l.paths {
		if keep(path) {
			kept = append(kept, path)
			continue
		}
		dropped = append(dropped, path)
	}
	clear(l.paths[len(kept):])
	l.paths = kept

	return dropped
}

// Paths returns a copy of the accumulated paths.
func (l *List) Paths() []string {
	return append([]string(nil), l.paths...)
}

// Len returns the number of accumulated paths.
func (l *List) Len() int {
	return len(l.paths)
}
