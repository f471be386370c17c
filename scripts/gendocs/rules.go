package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade/rules"
)

// generateRulesDocs writes one page listing every version catalog.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rules docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	page, err := renderRulesPage(rules.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), page, 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")
	return nil
}

// renderRulesPage renders the catalogs of reg, newest version first.
func renderRulesPage(reg *upgrade.Registry) ([]byte, error) {
	w := NewMarkdownWriter()

	w.Frontmatter("Upgrade Rules", "Rules applied when upgrading SharePoint Framework projects")
	w.GeneratedMarker()

	w.Header(1, "Upgrade Rules")
	versions := reg.Versions()
	w.Paragraph(fmt.Sprintf("spfxcheck supports **%d versions**. Upgrading applies the catalog of every version after the project's current one, newest first; a rule reported by a newer catalog is not repeated.", len(versions)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode(string(upgrade.SeverityRequired)), "Must be applied for the project to build"},
			{InlineCode(string(upgrade.SeverityRecommended)), "Keeps project metadata consistent"},
			{InlineCode(string(upgrade.SeverityOptional)), "May be applied"},
		},
	)

	for i := len(versions) - 1; i >= 0; i-- {
		v := versions[i]
		catalog, err := reg.Catalog(v)
		if err != nil {
			return nil, err
		}

		w.Header(2, "v"+v)
		var rows [][]string
		for _, rule := range catalog {
			info := upgrade.DescribeRule(rule)
			rows = append(rows, []string{
				InlineCode(info.ID),
				info.Title,
				string(info.Severity),
				InlineCode(info.File),
			})
		}
		w.Table([]string{"Rule", "Title", "Severity", "File"}, rows)
	}

	return w.Bytes(), nil
}
