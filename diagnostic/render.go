package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/SpideyZac/runic/source"
)

// blockGap is the largest number of lines between two span groups that are
// still rendered as one block of context.
const blockGap = 2

// Renderer lays out one diagnostic against its file as line-numbered,
// caret-annotated text. Rendering is deterministic: identical input
// produces byte-identical output, which keeps golden tests meaningful.
// Color is off by default so the stable layout is also the plain one.
type Renderer struct {
	colorize  bool
	severity  map[Severity]*color.Color
	gutter    *color.Color
	secondary *color.Color
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithColor enables ANSI-colored output regardless of terminal detection.
func WithColor(enabled bool) RendererOption {
	return func(r *Renderer) {
		r.colorize = enabled
	}
}

// NewRenderer builds a renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}

	r.severity = map[Severity]*color.Color{
		SeverityError:   color.New(color.FgRed, color.Bold),
		SeverityWarning: color.New(color.FgYellow, color.Bold),
		SeverityNote:    color.New(color.FgCyan, color.Bold),
		SeverityHelp:    color.New(color.FgGreen, color.Bold),
	}
	r.gutter = color.New(color.FgCyan, color.Bold)
	r.secondary = color.New(color.FgBlue)
	if r.colorize {
		for _, c := range r.severity {
			c.EnableColor()
		}
		r.gutter.EnableColor()
		r.secondary.EnableColor()
	}
	return r
}

func (r *Renderer) paint(c *color.Color, text string) string {
	if !r.colorize {
		return text
	}
	return c.Sprint(text)
}

// renderSpan is one span prepared for layout.
type renderSpan struct {
	span     source.Span
	label    string
	primary  bool
	order    int
	startPos source.Position
	lastLine int
}

// piece is the part of a span that lands on one displayed line.
type piece struct {
	rs        *renderSpan
	startCol  int
	endCol    int
	connector bool
	anchor    bool
}

type block struct {
	spans     []*renderSpan
	firstLine int
	lastLine  int
}

// Render produces the formatted text for one diagnostic. Every span must
// lie within f or rendering fails with InvalidSpanError. A diagnostic
// without spans renders as the bare severity-tagged message.
func (r *Renderer) Render(f *source.File, d *Diagnostic) (string, error) {
	spans, err := collectSpans(f, d)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if len(spans) > 0 {
		blocks := groupBlocks(spans)
		width := gutterWidth(blocks)
		for _, blk := range blocks {
			r.renderBlock(&b, f, blk, width, d.Severity())
		}
	}

	tag := d.Severity().String() + ":"
	b.WriteString(r.paint(r.severity[d.Severity()], tag))
	b.WriteString(" ")
	b.WriteString(d.Message())
	b.WriteString("\n")

	for _, note := range d.Notes() {
		b.WriteString("  ")
		b.WriteString(r.paint(r.gutter, "="))
		b.WriteString(" note: ")
		b.WriteString(note)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RenderAll renders diagnostics in order, separated by blank lines.
func (r *Renderer) RenderAll(f *source.File, ds []*Diagnostic) (string, error) {
	var parts []string
	for _, d := range ds {
		out, err := r.Render(f, d)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}

// collectSpans validates and resolves the primary span and every label.
func collectSpans(f *source.File, d *Diagnostic) ([]*renderSpan, error) {
	var spans []*renderSpan
	order := 0
	add := func(sp source.Span, label string, primary bool) error {
		if sp.Start < 0 || sp.Start > sp.End || sp.End > f.Len() {
			return &InvalidSpanError{File: f.Name(), Span: sp, Len: f.Len()}
		}
		startPos, err := f.Resolve(sp.Start)
		if err != nil {
			return &InvalidSpanError{File: f.Name(), Span: sp, Len: f.Len()}
		}
		last := sp.End
		if last > sp.Start {
			last--
		}
		lastPos, err := f.Resolve(last)
		if err != nil {
			return &InvalidSpanError{File: f.Name(), Span: sp, Len: f.Len()}
		}
		spans = append(spans, &renderSpan{
			span:     sp,
			label:    label,
			primary:  primary,
			order:    order,
			startPos: startPos,
			lastLine: lastPos.Line,
		})
		order++
		return nil
	}

	if sp, ok := d.Primary(); ok {
		if err := add(sp, "", true); err != nil {
			return nil, err
		}
	}
	for _, lb := range d.Labels() {
		if err := add(lb.Span, lb.Message, false); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// groupBlocks splits spans into blocks of nearby lines. Spans whose line
// ranges sit more than blockGap lines apart render as separate blocks.
func groupBlocks(spans []*renderSpan) []block {
	ordered := append([]*renderSpan(nil), spans...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].startPos.Line != ordered[j].startPos.Line {
			return ordered[i].startPos.Line < ordered[j].startPos.Line
		}
		return ordered[i].span.Start < ordered[j].span.Start
	})

	var blocks []block
	for _, rs := range ordered {
		if len(blocks) > 0 && rs.startPos.Line <= blocks[len(blocks)-1].lastLine+blockGap+1 {
			blk := &blocks[len(blocks)-1]
			blk.spans = append(blk.spans, rs)
			if rs.lastLine > blk.lastLine {
				blk.lastLine = rs.lastLine
			}
			continue
		}
		blocks = append(blocks, block{
			spans:     []*renderSpan{rs},
			firstLine: rs.startPos.Line,
			lastLine:  rs.lastLine,
		})
	}
	return blocks
}

// gutterWidth is the digit count of the highest line number displayed
// anywhere in the diagnostic, so gutters align across blocks.
func gutterWidth(blocks []block) int {
	max := 1
	for _, blk := range blocks {
		if blk.lastLine > max {
			max = blk.lastLine
		}
	}
	return len(fmt.Sprintf("%d", max))
}

func (r *Renderer) renderBlock(b *strings.Builder, f *source.File, blk block, width int, sev Severity) {
	head := blk.spans[0].startPos
	b.WriteString(strings.Repeat(" ", width))
	b.WriteString(r.paint(r.gutter, "-->"))
	fmt.Fprintf(b, " %s:%d:%d\n", f.Name(), head.Line, head.Column)

	blank := strings.Repeat(" ", width) + " "
	b.WriteString(blank)
	b.WriteString(r.paint(r.gutter, "|"))
	b.WriteString("\n")

	for line := blk.firstLine; line <= blk.lastLine; line++ {
		text, err := f.LineText(line)
		if err != nil {
			continue
		}
		display := source.ExpandTabs(text, f.TabWidth())

		b.WriteString(r.paint(r.gutter, fmt.Sprintf("%*d", width, line)))
		b.WriteString(" ")
		b.WriteString(r.paint(r.gutter, "|"))
		if display != "" {
			b.WriteString(" ")
			b.WriteString(display)
		}
		b.WriteString("\n")

		pieces := piecesOnLine(f, blk.spans, line)
		if len(pieces) == 0 {
			continue
		}

		r.writeMarkerRow(b, blank, pieces, sev)
		r.writeLabelStacks(b, blank, pieces)
	}
}

// piecesOnLine computes the slice of each span landing on one line, in
// display columns.
func piecesOnLine(f *source.File, spans []*renderSpan, line int) []piece {
	lineStart, err := f.OffsetOf(line, 1)
	if err != nil {
		return nil
	}
	text, err := f.LineText(line)
	if err != nil {
		return nil
	}
	contentEnd := lineStart + len(text)

	var pieces []piece
	for _, rs := range spans {
		if line < rs.startPos.Line || line > rs.lastLine {
			continue
		}
		switch {
		case rs.startPos.Line == rs.lastLine:
			pieces = append(pieces, piece{
				rs:       rs,
				startCol: rs.startPos.Column,
				endCol:   resolveColumn(f, clampOffset(rs.span.End, lineStart, contentEnd)),
				anchor:   true,
			})
		case line == rs.startPos.Line:
			pieces = append(pieces, piece{
				rs:       rs,
				startCol: rs.startPos.Column,
				endCol:   resolveColumn(f, contentEnd),
			})
		case line == rs.lastLine:
			pieces = append(pieces, piece{
				rs:       rs,
				startCol: 1,
				endCol:   resolveColumn(f, clampOffset(rs.span.End, lineStart, contentEnd)),
				anchor:   true,
			})
		default:
			pieces = append(pieces, piece{rs: rs, connector: true})
		}
	}
	return pieces
}

func clampOffset(off int, lo int, hi int) int {
	if off < lo {
		return lo
	}
	if off > hi {
		return hi
	}
	return off
}

func resolveColumn(f *source.File, offset int) int {
	pos, err := f.Resolve(offset)
	if err != nil {
		return 1
	}
	return pos.Column
}

// marker cell classes, used to colorize runs without breaking collision
// priority.
const (
	cellBlank = iota
	cellPrimary
	cellSecondary
)

// writeMarkerRow merges every piece on the line into a single underline
// row. Secondary spans paint '-' runs, the primary paints '^' runs last so
// it wins column collisions; empty spans still get a single caret.
func (r *Renderer) writeMarkerRow(b *strings.Builder, blank string, pieces []piece, sev Severity) {
	ordered := append([]piece(nil), pieces...)
	sort.SliceStable(ordered, func(i, j int) bool {
		// later-attached secondaries first, primary strictly last
		if ordered[i].rs.primary != ordered[j].rs.primary {
			return !ordered[i].rs.primary
		}
		return ordered[i].rs.order > ordered[j].rs.order
	})

	var row []rune
	var class []int
	set := func(col int, ch rune, cl int) {
		for len(row) < col {
			row = append(row, ' ')
			class = append(class, cellBlank)
		}
		row[col-1] = ch
		class[col-1] = cl
	}

	for _, p := range ordered {
		cl := cellSecondary
		ch := '-'
		if p.rs.primary {
			cl = cellPrimary
			ch = '^'
		}
		if p.connector {
			set(1, '|', cl)
			continue
		}
		n := p.endCol - p.startCol
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			set(p.startCol+i, ch, cl)
		}
	}

	b.WriteString(blank)
	b.WriteString(r.paint(r.gutter, "|"))
	b.WriteString(" ")
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && class[j] == class[i] {
			j++
		}
		run := string(row[i:j])
		switch class[i] {
		case cellSecondary:
			b.WriteString(r.paint(r.secondary, run))
		case cellPrimary:
			b.WriteString(r.paint(r.severity[sev], run))
		default:
			b.WriteString(run)
		}
		i = j
	}
	b.WriteString("\n")
}

// writeLabelStacks renders secondary label text below the marker row, one
// connector and one label row per label, stacked in attach order.
func (r *Renderer) writeLabelStacks(b *strings.Builder, blank string, pieces []piece) {
	anchored := make([]piece, 0, len(pieces))
	for _, p := range pieces {
		if p.anchor && !p.rs.primary && p.rs.label != "" {
			anchored = append(anchored, p)
		}
	}
	sort.SliceStable(anchored, func(i, j int) bool {
		return anchored[i].rs.order < anchored[j].rs.order
	})

	for _, p := range anchored {
		pad := strings.Repeat(" ", p.startCol-1)

		b.WriteString(blank)
		b.WriteString(r.paint(r.gutter, "|"))
		b.WriteString(" ")
		b.WriteString(pad)
		b.WriteString(r.paint(r.secondary, "|"))
		b.WriteString("\n")

		b.WriteString(blank)
		b.WriteString(r.paint(r.gutter, "|"))
		b.WriteString(" ")
		b.WriteString(pad)
		b.WriteString(r.paint(r.secondary, "-- "+p.rs.label))
		b.WriteString("\n")
	}
}
