package builder

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// Delim is the key path delimiter of built configurations.
const Delim = "."

// Tag is the struct tag read by [Unmarshal].
const Tag = "koanf"

// Builder collects configuration sources in priority order and merges them
// with koanf on [Builder.Build].
type Builder struct {
	sources []Source
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{
		sources: make([]Source, 0, 4),
	}
}

// AddSource registers s after all previously registered sources.
func (b *Builder) AddSource(s Source) *Builder {
	b.sources = append(b.sources, s)
	return b
}

// Sources returns the registered sources in load order.
func (b *Builder) Sources() []Source {
	return append([]Source(nil), b.sources...)
}

// Build loads every source in order into a fresh koanf instance.
func (b *Builder) Build() (*koanf.Koanf, error) {
	k := koanf.New(Delim)
	for _, src := range b.sources {
		if src == nil {
			return nil, ErrNilSource
		}
		if err := src.Load(k); err != nil {
			return nil, fmt.Errorf("error loading config from %s: %w", src.Name(), err)
		}
	}

	return k, nil
}

// Unmarshal decodes the whole of k into out using [Tag] struct tags.
// Strings such as "30s" decode into time.Duration fields.
func Unmarshal(k *koanf.Koanf, out any) error {
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{Tag: Tag})
}
