package inference

import "errors"

// Error taxonomy of the inference engine. All failures are reported
// synchronously to the caller and wrap one of these sentinels so that
// callers can classify them with errors.Is.
var (
	// ErrConfiguration indicates a malformed group set (fewer than two
	// distinct group labels, or an empty group).
	ErrConfiguration = errors.New("invalid group configuration")

	// ErrDegenerateTable indicates a contingency table with a zero row or
	// column total; expected frequencies are undefined for such a table.
	ErrDegenerateTable = errors.New("degenerate contingency table")

	// ErrInvalidInput indicates an out-of-domain numeric parameter such as
	// a rate outside [0,1], a non-positive count, or an alpha outside (0,1).
	ErrInvalidInput = errors.New("invalid input parameter")

	// ErrDivisionByZero indicates that the relative improvement is undefined
	// because the control rate is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
