package diagnostic

import (
	"fmt"

	"github.com/SpideyZac/runic/source"
)

// InvalidSpanError reports a diagnostic span inconsistent with the file
// handed to the renderer. It signals a mistake in diagnostic construction,
// surfaced loudly instead of producing a misleading rendering.
type InvalidSpanError struct {
	File string
	Span source.Span
	Len  int
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("%s: span %s is invalid for file of length %d", e.File, e.Span, e.Len)
}
