package inkan

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inkan package.
var (
	// ErrNilTarget is returned when Render is called without a drawing target.
	ErrNilTarget = errors.New("inkan: nil render target")

	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("inkan: invalid config")

	// ErrNoFont is returned when no usable font face could be loaded.
	ErrNoFont = errors.New("inkan: no font available")

	// ErrClosed is returned when a closed Renderer is used.
	ErrClosed = errors.New("inkan: renderer closed")
)

// ConfigError reports a Config field that violates its constraints.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("inkan: invalid config: %s %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// RenderError is returned when a drawing primitive fails mid-render.
// Index is the character being drawn, or -1 for the borders.
type RenderError struct {
	Op    string
	Index int
	Err   error
}

func (e *RenderError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("inkan: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("inkan: %s (char %d): %v", e.Op, e.Index, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
