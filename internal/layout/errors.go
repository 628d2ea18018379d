package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator is returned when an Expression is built with an
	// operator outside + - * /.
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrMissingOperand is returned when an Expression is built with a nil operand.
	ErrMissingOperand = errors.New("missing operand")
)

// ConstructionError reports an Expression that could not be built.
// It always wraps one of the sentinel errors above.
type ConstructionError struct {
	Left, Right Length
	Op          Operator
	Err         error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("building expression %s %s %s: %v",
		lengthString(e.Left), string(e.Op), lengthString(e.Right), e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func lengthString(l Length) string {
	if l == nil {
		return "<nil>"
	}
	if e, ok := l.(*Expression); ok && e == nil {
		return "<nil>"
	}
	return l.String()
}
