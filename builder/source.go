package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Source is one layer of configuration. Layers are loaded in registration
// order and later layers override keys set by earlier ones.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Load merges the source into k.
	Load(k *koanf.Koanf) error
}

type fileSource struct {
	path     string
	format   Format
	required bool
}

// File is a required file source. The format is inferred from the extension;
// a missing or malformed file fails the build.
func File(path string) Source {
	return &fileSource{path: path, required: true}
}

// OptionalFile is like [File], but a file that does not exist contributes
// nothing instead of failing the build.
func OptionalFile(path string) Source {
	return &fileSource{path: path}
}

// FileWithFormat is a required file source parsed as format regardless of
// its extension.
func FileWithFormat(path string, format Format) Source {
	return &fileSource{path: path, format: format, required: true}
}

func (s *fileSource) Name() string {
	return "file " + s.path
}

// Path returns the file path of the source.
func (s *fileSource) Path() string {
	return s.path
}

func (s *fileSource) Load(k *koanf.Koanf) error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		if s.required {
			return err
		}
		return nil
	}

	format := s.format
	if format == "" {
		var err error
		if format, err = FormatFromPath(s.path); err != nil {
			return err
		}
	}

	parser, err := format.parser()
	if err != nil {
		return err
	}

	return k.Load(file.Provider(s.path), parser)
}

type envSource struct {
	prefix    string
	separator string
}

// Environment overlays environment variables. With prefix "APP" and
// separator "_", APP_SERVER_PORT=80 sets key "server.port". An empty prefix
// takes every variable.
func Environment(prefix, separator string) Source {
	return &envSource{prefix: prefix, separator: separator}
}

func (s *envSource) Name() string {
	return "environment " + s.prefix
}

func (s *envSource) Load(k *koanf.Koanf) error {
	match := ""
	if s.prefix != "" {
		match = s.prefix + s.separator
	}

	return k.Load(env.Provider(match, Delim, s.key(match)), nil)
}

func (s *envSource) key(match string) func(string) string {
	return func(name string) string {
		key := strings.ToLower(strings.TrimPrefix(name, match))
		if s.separator != "" {
			key = strings.ReplaceAll(key, strings.ToLower(s.separator), Delim)
		}
		return key
	}
}

type mapSource struct {
	name   string
	values map[string]any
}

// Map is an in-memory source, typically used for defaults registered before
// any file. Keys may be nested maps or use "." as a path delimiter.
func Map(name string, values map[string]any) Source {
	return &mapSource{name: name, values: values}
}

func (s *mapSource) Name() string {
	return fmt.Sprintf("map %s", s.name)
}

func (s *mapSource) Load(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(s.values, Delim), nil)
}
