package heat

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewStops is reported for gradients with less than two stops.
	ErrTooFewStops = errors.New("gradient must have at least 2 stops")

	// ErrUncovered is reported if no pair of consecutive stops brackets
	// a normalized weight, i.e. the gradient does not span [0,1] or is
	// not ordered.
	ErrUncovered = errors.New("gradient must cover offsets 0..1")

	// ErrNoViews is reported by a render pass without ViewProvider for a
	// series with points that have no view yet.
	ErrNoViews = errors.New("no view provider for new points")
)

// A ConfigurationError reports a gradient which cannot be used to color
// a weight. It aborts the render pass; the gradient has to be fixed before
// the next pass can succeed.
type ConfigurationError struct {
	Series string  // Series is the title of the offending series, may be empty.
	Offset float64 // Offset is the normalized weight, NaN if not computed.
	Err    error   // Err is ErrTooFewStops or ErrUncovered.
}

func (e *ConfigurationError) Error() string {
	msg := "heat: " + e.Err.Error()
	if e.Err == ErrUncovered {
		msg += fmt.Sprintf(" (offset %g)", e.Offset)
	}
	if e.Series != "" {
		msg = fmt.Sprintf("%s: series %q", msg, e.Series)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
