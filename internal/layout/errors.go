package layout

import (
	"errors"
	"fmt"
)

// ErrOverrun indicates a layout that needs more element records than exist.
var ErrOverrun = errors.New("layout: layout demands more elements than the dataset holds")

// OverrunError records where the running index first ran past the dataset.
type OverrunError struct {
	Row       int
	Demanded  int
	Available int
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("layout: row %d needs element %d, dataset has %d", e.Row, e.Demanded, e.Available)
}

func (e *OverrunError) Unwrap() error {
	return ErrOverrun
}
