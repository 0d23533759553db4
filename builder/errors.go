package builder

import "errors"

var (
	// ErrUnknownFormat is returned when a file source has neither an explicit
	// format nor a recognised extension.
	ErrUnknownFormat = errors.New("unknown config file format")
	// ErrNilSource is returned by Build when a nil source was registered.
	ErrNilSource = errors.New("nil config source")
)
