package source

import "github.com/mattn/go-runewidth"

// AdvanceColumn returns the display column after r when the current column
// is col. Tabs jump to the next tab stop; other runes advance by their
// terminal cell width, so combining marks advance by zero and East Asian
// wide runes by two. A carriage return occupies one column even though its
// cell width is zero, keeping every byte of a "\r\n" pair at a distinct
// column so Resolve and OffsetOf stay inverses of each other. File.Resolve
// and the cursor's incremental tracker both use this function so the two
// can never disagree.
func AdvanceColumn(col int, r rune, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return ((col-1)/tabWidth+1)*tabWidth + 1
	}
	if r == '\r' {
		return col + 1
	}
	return col + runewidth.RuneWidth(r)
}

// ExpandTabs rewrites tabs in a single line of text as spaces up to the
// next tab stop, keeping every other rune untouched. Renderers use this so
// marker rows computed in display columns line up under the source text.
func ExpandTabs(line string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var out []rune
	col := 1
	for _, r := range line {
		if r == '\t' {
			next := ((col-1)/tabWidth + 1) * tabWidth
			for col <= next {
				out = append(out, ' ')
				col++
			}
			continue
		}
		out = append(out, r)
		col += runewidth.RuneWidth(r)
	}
	return string(out)
}
