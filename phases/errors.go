package phases

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyInput matches every *EmptyInputError with errors.Is.
var ErrEmptyInput = errors.New("empty input")

var ErrSumOverflow = errors.New("sum overflows int64")

// EmptyInputError is returned when an extremum or an average is requested
// over zero records.
type EmptyInputError struct {
	Statistic string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Statistic, ErrEmptyInput.Error())
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// PhaseError is a phase failure together with the span the phase ran for
// before failing. It reads as the error it wraps.
type PhaseError struct {
	Elapsed time.Duration
	Err     error
}

func (e *PhaseError) Error() string {
	return e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Elapsed is the span carried by a *PhaseError in err's chain, or 0.
func Elapsed(err error) time.Duration {
	var phaseErr *PhaseError
	if errors.As(err, &phaseErr) {
		return phaseErr.Elapsed
	}
	return 0
}
