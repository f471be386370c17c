package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
)

// Format selects a report layout.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatJSON, FormatText, FormatMarkdown}
}

// ParseFormat parses a format name. "markdown" is accepted as an alias of md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w %q (expected json, text or md)", ErrUnknownFormat, s)
}

// Options configures Render.
type Options struct {
	Format Format
	// TargetVersion and ProjectName only appear in the Markdown title.
	TargetVersion string
	ProjectName   string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Render writes findings to w in the requested format. An empty Format
// renders the text summary.
func Render(w io.Writer, findings []upgrade.Finding, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, nonNil(findings))
	case FormatText, "":
		return writeJSON(w, summarize(findings))
	case FormatMarkdown:
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		_, err := io.WriteString(w, markdown(findings, opts.ProjectName, opts.TargetVersion, now()))
		return err
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
}

// summaryEntry is one element of the text report.
type summaryEntry struct {
	ID         string `json:"id"`
	Resolution string `json:"resolution"`
}

func summarize(findings []upgrade.Finding) []summaryEntry {
	entries := make([]summaryEntry, len(findings))
	for i, f := range findings {
		entries[i] = summaryEntry{ID: f.ID, Resolution: f.Resolution}
	}
	return entries
}

func nonNil(findings []upgrade.Finding) []upgrade.Finding {
	if findings == nil {
		return []upgrade.Finding{}
	}
	return findings
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
