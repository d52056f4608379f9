package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SpideyZac/runic/diagnostic"
	"github.com/SpideyZac/runic/internal/config"
	"github.com/SpideyZac/runic/internal/fswalk"
	"github.com/SpideyZac/runic/internal/report"
	"github.com/SpideyZac/runic/internal/scan"
	"github.com/SpideyZac/runic/source"
)

func writeReports(cfg config.Config, summary report.Summary, files []report.FileItem) error {
	if cfg.ReportJSON != "" {
		if err := report.WriteJSON(cfg.ReportJSON, report.NewJSONReport(summary, files)); err != nil {
			return err
		}
	}
	if cfg.ReportCSV != "" {
		if err := report.WriteCSV(cfg.ReportCSV, files); err != nil {
			return err
		}
	}
	return nil
}

func runScan(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return newExitError(ExitCodeBadInvocation, err)
	}

	files, err := fswalk.DiscoverSources(cfg.In, cfg.Glob)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched %q under %q", cfg.Glob, cfg.In)
	}

	renderer := diagnostic.NewRenderer(diagnostic.WithColor(cfg.Color))
	var (
		clean      int
		withIssues int
		readFailed int
		errors     int
		warnings   int

		fileItems = make([]report.FileItem, 0, len(files))
	)

	for _, fp := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := report.FileItem{
			File: fp.RelPath,
		}

		f, err := source.NewFileFromPath(fp.AbsPath, source.WithTabWidth(cfg.TabWidth))
		if err != nil {
			readFailed++
			item.Status = report.StatusReadError
			item.Diagnostics = []report.DiagnosticItem{{Severity: "error", Message: err.Error()}}
			fileItems = append(fileItems, item)
			slog.Warn("read failed", "file", fp.RelPath, "error", err)
			continue
		}

		res := scan.File(f)
		item.Tokens = len(res.Tokens)
		for _, d := range res.Diagnostics {
			item.Diagnostics = append(item.Diagnostics, report.ToDiagnosticItem(f, d))
			switch d.Severity() {
			case diagnostic.SeverityError:
				errors++
			case diagnostic.SeverityWarning:
				warnings++
			}
		}

		if len(res.Diagnostics) == 0 {
			clean++
			item.Status = report.StatusClean
			slog.Debug("scanned", "file", fp.RelPath, "tokens", len(res.Tokens))
			fileItems = append(fileItems, item)
			continue
		}

		withIssues++
		item.Status = report.StatusIssues
		fileItems = append(fileItems, item)

		out, renderErr := renderer.RenderAll(f, res.Diagnostics)
		if renderErr != nil {
			return fmt.Errorf("render diagnostics for %q: %w", fp.RelPath, renderErr)
		}
		fmt.Fprint(os.Stderr, out)
	}

	slog.Info(
		"scan summary",
		"discovered",
		len(files),
		"clean",
		clean,
		"with_issues",
		withIssues,
		"read_failed",
		readFailed,
		"errors",
		errors,
		"warnings",
		warnings,
		"input",
		filepath.Clean(cfg.In),
	)

	summary := report.Summary{
		Scanned:    len(files),
		Clean:      clean,
		WithIssues: withIssues,
		ReadFailed: readFailed,
		Errors:     errors,
		Warnings:   warnings,
	}

	if err := writeReports(cfg, summary, fileItems); err != nil {
		return fmt.Errorf("write report artifacts: %w", err)
	}
	if cfg.ReportJSON != "" || cfg.ReportCSV != "" {
		slog.Info("reports written", "json", cfg.ReportJSON, "csv", cfg.ReportCSV)
	}

	if errors > 0 || readFailed > 0 {
		return newExitError(ExitCodeScanFailed, fmt.Errorf("scan finished with %d errors in %d files", errors+readFailed, withIssues+readFailed))
	}
	return nil
}
