package location

import (
	"errors"
	"os"
)

// System is the view of the process environment used while resolving
// locations. [OS] is backed by the running process; tests and embedders can
// substitute their own.
type System interface {
	LookupEnv(key string) (string, bool)
	Getwd() (string, error)
	UserHomeDir() (string, error)
	UserConfigDir() (string, error)
	// IsFile reports whether path names an existing regular file,
	// following symlinks.
	IsFile(path string) bool
}

// OS is the [System] of the running process.
var OS System = osSystem{}

type osSystem struct{}

func (osSystem) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osSystem) Getwd() (string, error)              { return os.Getwd() }
func (osSystem) UserHomeDir() (string, error)        { return os.UserHomeDir() }
func (osSystem) UserConfigDir() (string, error)      { return os.UserConfigDir() }
func (osSystem) IsFile(path string) bool             { return isRegularFile(path) }

// Errors reported by [StaticSystem] for directories it was not given.
var (
	ErrNoWorkingDir = errors.New("working directory is not set")
	ErrNoHomeDir    = errors.New("home directory is not set")
	ErrNoConfigDir  = errors.New("config directory is not set")
)

// StaticSystem serves a fixed environment and fixed directories, while file
// checks still go to the real filesystem. Empty directory fields are
// reported as unavailable.
type StaticSystem struct {
	Env       map[string]string
	Wd        string
	Home      string
	ConfigDir string
}

// LookupEnv implements [System].
func (s StaticSystem) LookupEnv(key string) (string, bool) {
	v, ok := s.Env[key]
	return v, ok
}

// Getwd implements [System].
func (s StaticSystem) Getwd() (string, error) {
	if s.Wd == "" {
		return "", ErrNoWorkingDir
	}
	return s.Wd, nil
}

// UserHomeDir implements [System].
func (s StaticSystem) UserHomeDir() (string, error) {
	if s.Home == "" {
		return "", ErrNoHomeDir
	}
	return s.Home, nil
}

// UserConfigDir implements [System].
func (s StaticSystem) UserConfigDir() (string, error) {
	if s.ConfigDir == "" {
		return "", ErrNoConfigDir
	}
	return s.ConfigDir, nil
}

// IsFile implements [System].
func (s StaticSystem) IsFile(path string) bool {
	return isRegularFile(path)
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
