package flexbar

import "fmt"

// IndexOutOfBoundsError reports a section index outside the range the
// StatusBar was constructed with. It is the only error kind the package
// returns; layout degeneracies such as a region too small for its content
// are handled by truncation or omission, never by an error.
type IndexOutOfBoundsError struct {
	Index int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds: %d", e.Index)
}
