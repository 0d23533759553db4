// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=location.go -destination=../internal/mock/location_mock.go -package=mock

package location

// Location is anything that can resolve to a single configuration file path.
//
// Path reports the resolved path and true, or "" and false when the location
// produced nothing. A location is consumed by Path: implementations that hold
// lazily evaluated state must reset it so that a second call reports nothing.
type Location interface {
	Path() (string, bool)
}

// Path is a literal location. A non-empty value always resolves to itself,
// without any existence check.
type Path string

// Path implements [Location].
func (p Path) Path() (string, bool) {
	if p == "" {
		return "", false
	}

	return string(p), true
}
