package internal

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks a programming error such as a value too wide for its
// bit field. It is only ever carried by a panic.
var ErrPrecondition = errors.New("precondition violated")

// Panics with an ErrPrecondition-wrapping error if ok is false
func CheckArgument(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...)))
	}
}
