package loader

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-load/location"
)

type options struct {
	log zerolog.Logger
	sys location.System
}

// Option configures a [Loader] or [AsyncLoader].
type Option func(*options)

// WithLogger makes the loader report resolved and dropped paths at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithSystem sets the [location.System] used for existence checks.
func WithSystem(sys location.System) Option {
	return func(o *options) {
		if sys != nil {
			o.sys = sys
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log: zerolog.Nop(),
		sys: location.OS,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
