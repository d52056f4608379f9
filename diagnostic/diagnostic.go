package diagnostic

import (
	"fmt"

	"github.com/SpideyZac/runic/source"
)

// Severity classifies how a diagnostic should be treated by the reader.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
	SeverityHelp
)

// String returns the lowercase tag used in rendered output.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	case SeverityHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Label attaches explanatory text to a secondary span.
type Label struct {
	Span    source.Span
	Message string
}

// Diagnostic is a severity-tagged message with an optional primary span,
// ordered secondary labels and free-form notes. Build it incrementally
// with the With* methods; once handed to a Renderer it is read-only.
// Spans are not validated here: consistency with the file is checked at
// render time, since a diagnostic may be built before all context exists.
type Diagnostic struct {
	severity   Severity
	message    string
	primary    source.Span
	hasPrimary bool
	labels     []Label
	notes      []string
}

// New starts a diagnostic with its severity and message.
func New(severity Severity, message string) *Diagnostic {
	return &Diagnostic{
		severity: severity,
		message:  message,
	}
}

// WithPrimary sets the primary span the diagnostic points at.
func (d *Diagnostic) WithPrimary(span source.Span) *Diagnostic {
	d.primary = span
	d.hasPrimary = true
	return d
}

// WithLabel appends a secondary labeled span. Labels render stacked in the
// order they were attached.
func (d *Diagnostic) WithLabel(span source.Span, message string) *Diagnostic {
	d.labels = append(d.labels, Label{Span: span, Message: message})
	return d
}

// WithNote appends a free-form note rendered after the message.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.notes = append(d.notes, note)
	return d
}

// Severity returns the diagnostic's severity.
func (d *Diagnostic) Severity() Severity {
	return d.severity
}

// Message returns the diagnostic's message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Primary returns the primary span and whether one was set.
func (d *Diagnostic) Primary() (source.Span, bool) {
	return d.primary, d.hasPrimary
}

// Labels returns the secondary labels in attach order.
func (d *Diagnostic) Labels() []Label {
	return d.labels
}

// Notes returns the notes in attach order.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Error implements the error interface so diagnostics can flow through
// rule and caller error paths before being rendered.
func (d *Diagnostic) Error() string {
	if d.hasPrimary {
		return fmt.Sprintf("%s: %s at %s", d.severity, d.message, d.primary)
	}
	return fmt.Sprintf("%s: %s", d.severity, d.message)
}
