// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package location

import (
	"path/filepath"
	"unicode/utf8"
)

// FileLocation resolves to the first present path among an ordered chain of
// sources. Each From* method appends one source and returns the receiver, so
// a chain reads in priority order:
//
//	location.FirstSomePath().
//		FromEnv("APP_ROOT_CONFIG").
//		FromHome(filepath.Join(".example_app", "AppConfig.toml"))
//
// Sources are evaluated only when [FileLocation.Path] is called, and only
// until one of them yields a value. Methods suffixed with Exists additionally
// require the candidate to name a regular file and fall through otherwise.
type FileLocation struct {
	sys        System
	candidates []Candidate
}

// FirstSomePath starts an empty chain backed by the running process.
func FirstSomePath() *FileLocation {
	return NewFileLocation(OS)
}

// NewFileLocation starts an empty chain backed by sys. A nil sys means [OS].
func NewFileLocation(sys System) *FileLocation {
	if sys == nil {
		sys = OS
	}

	return &FileLocation{
		sys:        sys,
		candidates: make([]Candidate, 0, 4),
	}
}

// FromFile adds an explicitly given path, e.g. one parsed from the command
// line. An empty path means "not given" and adds nothing. A relative path is
// resolved against the working directory as [FileLocation.FromCwd] does; an
// absolute path is accepted as is.
func (l *FileLocation) FromFile(path string) *FileLocation {
	if path == "" {
		return l
	}
	if !filepath.IsAbs(path) {
		return l.FromCwd(path)
	}

	return l.add(func() (string, bool) {
		return path, true
	})
}

// FromFileExists is [FileLocation.FromFile] with an existence check. Relative
// paths go through [FileLocation.FromCwdExists].
func (l *FileLocation) FromFileExists(path string) *FileLocation {
	if path == "" {
		return l
	}
	if !filepath.IsAbs(path) {
		return l.FromCwdExists(path)
	}

	return l.add(func() (string, bool) {
		return l.existing(path)
	})
}

// FromEnv adds the value of the environment variable name. An unset variable
// or one that is not valid UTF-8 adds nothing; otherwise the value is taken
// verbatim, even when empty.
func (l *FileLocation) FromEnv(name string) *FileLocation {
	return l.add(func() (string, bool) {
		return l.lookupEnv(name)
	})
}

// FromEnvExists is [FileLocation.FromEnv] with an existence check.
func (l *FileLocation) FromEnvExists(name string) *FileLocation {
	return l.add(func() (string, bool) {
		path, ok := l.lookupEnv(name)
		if !ok {
			return "", false
		}
		return l.existing(path)
	})
}

// FromHome adds relPath under the user's home directory.
func (l *FileLocation) FromHome(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return underDir(l.sys.UserHomeDir, relPath)
	})
}

// FromHomeExists is [FileLocation.FromHome] with an existence check.
func (l *FileLocation) FromHomeExists(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return l.existingUnderDir(l.sys.UserHomeDir, relPath)
	})
}

// FromConfigDir adds relPath under the user's configuration directory
// ($XDG_CONFIG_HOME or ~/.config on Unix).
func (l *FileLocation) FromConfigDir(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return underDir(l.sys.UserConfigDir, relPath)
	})
}

// FromConfigDirExists is [FileLocation.FromConfigDir] with an existence check.
func (l *FileLocation) FromConfigDirExists(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return l.existingUnderDir(l.sys.UserConfigDir, relPath)
	})
}

// FromCwd adds relPath under the current working directory.
func (l *FileLocation) FromCwd(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return underDir(l.sys.Getwd, relPath)
	})
}

// FromCwdExists is [FileLocation.FromCwd] with an existence check.
func (l *FileLocation) FromCwdExists(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		return l.existingUnderDir(l.sys.Getwd, relPath)
	})
}

// FromCwdAndParentsExists looks for relPath in the working directory and then
// in each of its ancestors up to and including the filesystem root. The
// first regular file found wins.
func (l *FileLocation) FromCwdAndParentsExists(relPath string) *FileLocation {
	return l.add(func() (string, bool) {
		cwd, err := l.sys.Getwd()
		if err != nil {
			return "", false
		}
		return l.findUpwards(cwd, relPath)
	})
}

// Path implements [Location]. The chain is emptied afterwards, so the
// location reports nothing on later calls.
func (l *FileLocation) Path() (string, bool) {
	if l == nil {
		return "", false
	}
	candidates := l.candidates
	l.candidates = nil

	return FirstSome(candidates...)
}

// Len returns the number of sources still pending in the chain.
func (l *FileLocation) Len() int {
	if l == nil {
		return 0
	}
	return len(l.candidates)
}

func (l *FileLocation) add(c Candidate) *FileLocation {
	l.candidates = append(l.candidates, c)
	return l
}

func (l *FileLocation) lookupEnv(name string) (string, bool) {
	v, ok := l.sys.LookupEnv(name)
	if !ok || !utf8.ValidString(v) {
		return "", false
	}
	return v, true
}

func (l *FileLocation) existing(path string) (string, bool) {
	if !l.sys.IsFile(path) {
		return "", false
	}
	return path, true
}

func (l *FileLocation) existingUnderDir(dir func() (string, error), relPath string) (string, bool) {
	path, ok := underDir(dir, relPath)
	if !ok {
		return "", false
	}
	return l.existing(path)
}

func (l *FileLocation) findUpwards(dir, relPath string) (string, bool) {
	for {
		if path, ok := l.existing(join(dir, relPath)); ok {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func underDir(dir func() (string, error), relPath string) (string, bool) {
	base, err := dir()
	if err != nil || base == "" {
		return "", false
	}
	return join(base, relPath), true
}

// join appends relPath to base. An absolute relPath replaces base.
func join(base, relPath string) string {
	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath)
	}
	return filepath.Join(base, relPath)
}
