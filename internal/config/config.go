// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/bananapeel/internal/peel"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config is populated from flags and BANANAPEEL_* environment variables.
type Config struct {
	// Common flags
	Quiet   bool
	Verbose bool
	Stats   bool
	Show    bool
	Output  string

	// Encode flags
	Preset     string  `validate:"omitempty,oneof=md5 sha1 sha256 sha512" label:"--preset"`
	Length     uint32  `label:"--length"`
	MinData    uint32  `mapstructure:"min-data"                           label:"--min-data"`
	SkipChance float64 `mapstructure:"skip-chance"                        label:"--skip-chance" validate:"gte=0,lte=1"`
	Parallel   int     `validate:"min=1"                                  label:"--parallel"`
	Suffix     string

	// Decode flags
	Key     string        `validate:"exclusive=KeyFile" label:"--key"      mask:"fixed"`
	KeyFile string        `mapstructure:"key-file"      label:"--key-file"`
	Timeout time.Duration `validate:"min=0"             label:"--timeout"`

	// Set by the subcommand
	Decode bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-"`
}

// Options returns the transform options described by the configuration.
func (c Config) Options() peel.Options {
	return peel.Options{
		OutputLen:          c.Length,
		MinDataInChunk:     c.MinData,
		MaxValueSkipChance: c.SkipChance,
	}
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags, then checks the rules
// that span several fields of the configuration.
// It returns a wrapped ErrUsage if any rule is violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if err := c.crossField(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return nil
}

// crossField checks the combinations of inputs and flags.
func (c Config) crossField() error {
	if c.Output != "" && len(c.Files) > 1 {
		return errors.New("--output requires a single input")
	}

	if c.Decode {
		if c.Key == "" && c.KeyFile == "" {
			return errors.New("decode requires --key or --key-file")
		}

		if len(c.Files) > 1 {
			return errors.New("decode takes at most one input")
		}

		return nil
	}

	if len(c.Files) > 1 && c.Suffix == "" {
		return errors.New("encoding several inputs requires a non-empty --suffix")
	}

	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("validating chunk options: %w", err)
	}

	return nil
}

// Stdin reports whether input is read from standard input.
func (c Config) Stdin() bool {
	return len(c.Files) == 0 || (len(c.Files) == 1 && c.Files[0] == "-")
}
