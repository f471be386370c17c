package report

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
)

// markdown renders the narrative report.
func markdown(findings []upgrade.Finding, projectName, version string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Upgrade project %s to v%s\n\n", projectName, version)
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02"))

	b.WriteString("## Findings\n\n")
	if len(findings) == 0 {
		b.WriteString("No upgrade steps required.\n\n")
	}
	for _, f := range findings {
		fmt.Fprintf(&b, "### %s %s | %s\n\n", f.ID, f.Title, f.Severity)
		if f.Description != "" {
			b.WriteString(f.Description)
			b.WriteString("\n\n")
		}
		if f.ResolutionType == upgrade.ResolutionCommand {
			b.WriteString("Execute the following command:\n\n")
			fence(&b, "sh", f.Resolution)
		} else {
			fmt.Fprintf(&b, "In file %s update the code as follows:\n\n", link(f.File))
			fence(&b, fenceLanguage(f.File), f.Resolution)
		}
		fmt.Fprintf(&b, "File: %s\n\n", link(f.File))
	}

	b.WriteString("## Summary\n\n")

	b.WriteString("### Execute script\n\n")
	var commands []string
	for _, f := range findings {
		if f.ResolutionType == upgrade.ResolutionCommand {
			commands = append(commands, f.Resolution)
		}
	}
	fence(&b, "sh", strings.Join(commands, "\n"))

	b.WriteString("### Modify files\n\n")
	for _, group := range groupEdits(findings) {
		fmt.Fprintf(&b, "#### %s\n\n", link(group.file))
		for _, resolution := range group.resolutions {
			fence(&b, fenceLanguage(group.file), resolution)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// fileEdits collects the edit resolutions for one file.
type fileEdits struct {
	file        string
	resolutions []string
}

// groupEdits groups edit resolutions by file, in order of first appearance.
func groupEdits(findings []upgrade.Finding) []fileEdits {
	var groups []fileEdits
	index := make(map[string]int)
	for _, f := range findings {
		if f.ResolutionType == upgrade.ResolutionCommand {
			continue
		}
		i, ok := index[f.File]
		if !ok {
			i = len(groups)
			index[f.File] = i
			groups = append(groups, fileEdits{file: f.File})
		}
		groups[i].resolutions = append(groups[i].resolutions, f.Resolution)
	}
	return groups
}

func fence(b *strings.Builder, lang, body string) {
	fmt.Fprintf(b, "```%s\n", lang)
	if body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
}

func link(file string) string {
	return fmt.Sprintf("[%s](%s)", file, file)
}

// fenceLanguage derives the code fence language from a file extension.
func fenceLanguage(file string) string {
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".js":
		return "js"
	case ".ts":
		return "ts"
	default:
		return "json"
	}
}
