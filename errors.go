package polylabel

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed polygon or a non-positive precision.
// It is detected eagerly, before any search work begins, and no partial
// result accompanies it.
var ErrInvalidInput = errors.New("polylabel: invalid input")

func errInvalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
