package source

import "fmt"

// OutOfRangeError reports an offset, line or column outside a File's
// bounds. It always indicates a caller logic error, never bad input text.
type OutOfRangeError struct {
	File  string
	What  string
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s %d out of range (limit %d)", e.File, e.What, e.Value, e.Max)
}
