// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package buildinfo carries build-time metadata embedded into binaries.
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// Info carries immutable build-time metadata.
//
// Values are typically injected by linker flags during CI/CD and shown in
// version output for diagnostics and release traceability.
type Info struct {
	version string
	date    string
	commit  string
}

// New constructs [Info]; empty values are reported as "N/A".
func New(version, date, commit string) Info {
	return Info{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

// Version returns the semantic version string of the build.
func (i Info) Version() string {
	return i.version
}

// Date returns the build timestamp string.
func (i Info) Date() string {
	return i.date
}

// Commit returns the source-control commit hash used for the build.
func (i Info) Commit() string {
	return i.commit
}

// Print writes the build info in the same three-line layout the binaries
// have always printed.
func (i Info) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", i.version, i.date, i.commit)
	return err
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
