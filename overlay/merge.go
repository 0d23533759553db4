package overlay

import (
	"fmt"

	"dario.cat/mergo"
)

// Defaults fills every zero field of dst with the matching field of
// defaults. Non-zero fields of dst are left alone. dst must be a pointer to
// a struct of the same type as defaults.
func Defaults(dst, defaults any) error {
	if err := mergo.Merge(dst, defaults); err != nil {
		return fmt.Errorf("error merging defaults: %w", err)
	}

	return nil
}

// Override copies every non-zero field of src over dst, the way command-line
// flags override values from files.
func Override(dst, src any) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging overrides: %w", err)
	}

	return nil
}
