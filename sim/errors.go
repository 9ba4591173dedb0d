package sim

import "errors"

// Sentinel errors for the engine's public contract. Callers match them with
// errors.Is; all wrap sites add field-level detail via fmt.Errorf and %w.
var (
	// ErrInvalidConfig is returned by NewModel for non-positive rates or
	// counts, or an empty custom_values when a custom distribution is
	// selected. Construction fails atomically: no partially-initialized
	// Model is ever observable.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedDistribution is returned when a distribution selector
	// names anything outside {exponential, uniform, normal, custom}.
	ErrUnsupportedDistribution = errors.New("unsupported distribution")

	// ErrInvalidDelay is returned when a requested or sampled duration is
	// negative, or when AdvanceTo targets a time before the current clock.
	ErrInvalidDelay = errors.New("invalid delay")
)
