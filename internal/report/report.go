package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/SpideyZac/runic/diagnostic"
	"github.com/SpideyZac/runic/source"
)

// FileStatus is the per-file scan status used in reports.
type FileStatus string

const (
	StatusClean     FileStatus = "clean"
	StatusIssues    FileStatus = "issues"
	StatusReadError FileStatus = "failed_read"
)

// DiagnosticItem is the report-friendly representation of one diagnostic.
type DiagnosticItem struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Length   int    `json:"length,omitempty"`
}

// FileItem describes the scan outcome for one input file.
type FileItem struct {
	File        string           `json:"file"`
	Status      FileStatus       `json:"status"`
	Tokens      int              `json:"tokens"`
	Diagnostics []DiagnosticItem `json:"diagnostics,omitempty"`
}

// Summary contains aggregate counters for a scan run.
type Summary struct {
	Scanned    int `json:"scanned"`
	Clean      int `json:"clean"`
	WithIssues int `json:"with_issues"`
	ReadFailed int `json:"read_failed"`
	Errors     int `json:"errors"`
	Warnings   int `json:"warnings"`
}

// JSONReport is the structured report persisted by --report-json.
type JSONReport struct {
	GeneratedAt string     `json:"generated_at"`
	Summary     Summary    `json:"summary"`
	Files       []FileItem `json:"files"`
}

// NewJSONReport builds a report payload with RFC3339 generation timestamp.
func NewJSONReport(summary Summary, files []FileItem) JSONReport {
	return JSONReport{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Summary:     summary,
		Files:       files,
	}
}

// ToDiagnosticItem flattens a diagnostic against its file, resolving the
// primary span to a line and column when one is present.
func ToDiagnosticItem(f *source.File, d *diagnostic.Diagnostic) DiagnosticItem {
	item := DiagnosticItem{
		Severity: d.Severity().String(),
		Message:  d.Message(),
	}
	sp, ok := d.Primary()
	if !ok {
		return item
	}
	pos, err := f.Resolve(sp.Start)
	if err != nil {
		return item
	}
	item.Line = pos.Line
	item.Column = pos.Column
	item.Length = sp.Len()
	return item
}

// WriteJSON writes the full JSON report if path is non-empty.
func WriteJSON(path string, rep JSONReport) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	raw = append(raw, '\n')
	return os.WriteFile(path, raw, 0o644)
}

func intToString(v int) string {
	return strconv.Itoa(v)
}

// WriteCSV writes the flattened CSV report if path is non-empty.
func WriteCSV(path string, files []FileItem) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	w := csv.NewWriter(fh)
	defer w.Flush()

	header := []string{
		"file",
		"status",
		"tokens",
		"diagnostics_count",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	copied := append([]FileItem(nil), files...)
	sort.Slice(copied, func(i, j int) bool { return copied[i].File < copied[j].File })

	for _, item := range copied {
		row := []string{
			item.File,
			string(item.Status),
			intToString(item.Tokens),
			intToString(len(item.Diagnostics)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
