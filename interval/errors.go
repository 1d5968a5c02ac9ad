package interval

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is matched by every [InvalidIntervalError] under
// [errors.Is].
var ErrInvalidInterval = errors.New("invalid interval")

// InvalidIntervalError is returned when an interval ends before it starts.
type InvalidIntervalError[K Coordinate] struct {
	Start K
	End   K
}

func newInvalidIntervalError[K Coordinate](start, end K) error {
	return errors.WithStack(&InvalidIntervalError[K]{Start: start, End: end})
}

// Error implements the error interface.
func (e *InvalidIntervalError[K]) Error() string {
	return fmt.Sprintf("invalid interval (%d,%d), end < start", e.Start, e.End)
}

// Is reports whether target is [ErrInvalidInterval].
func (e *InvalidIntervalError[K]) Is(target error) bool {
	return target == ErrInvalidInterval
}
