package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/spfxcheck/internal/cli/output"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Format string // Output format: table, json
}

// catalogListing is the JSON shape of one version's catalog.
type catalogListing struct {
	Version string             `json:"version"`
	Rules   []upgrade.RuleInfo `json:"rules"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [version]",
		Short: "List upgrade rules per SPFx version",
		Long: `List the supported SharePoint Framework versions and the rules applied
when upgrading to each of them.

Rule IDs can be passed to "spfxcheck upgrade --disable" or listed under
disabled_rules in .spfxcheck.yaml.`,
		Example: `  # List every catalog
  spfxcheck rules

  # Show the rules for upgrading to 1.5.0
  spfxcheck rules 1.5.0

  # Output as JSON
  spfxcheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) > 0 {
				version = args[0]
			}
			return listRules(cmd, version, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json")

	return cmd
}

func listRules(cmd *cobra.Command, version string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	reg := defaultRegistry()

	versions := reg.Versions()
	if version != "" {
		versions = []string{version}
	}

	listings := make([]catalogListing, 0, len(versions))
	for _, v := range versions {
		catalog, err := reg.Catalog(v)
		if err != nil {
			return fmt.Errorf("%w (supported versions: %v)", err, reg.Versions())
		}
		infos := make([]upgrade.RuleInfo, len(catalog))
		for i, rule := range catalog {
			infos[i] = upgrade.DescribeRule(rule)
		}
		listings = append(listings, catalogListing{Version: v, Rules: infos})
	}

	switch opts.Format {
	case "json":
		return r.JSON(listings)
	case "table", "":
		return listRulesTable(r, listings)
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", opts.Format)
	}
}

// listRulesTable outputs the catalogs as a styled heading and a table.
func listRulesTable(r *output.Renderer, listings []catalogListing) error {
	total := 0
	for _, l := range listings {
		total += len(l.Rules)
	}

	r.Println(r.Styles().Header1.Render(fmt.Sprintf("Upgrade Rules (%d versions, %d rules)", len(listings), total)))
	r.Println("")
	renderRulesTable(r.Writer(), listings)
	r.Muted("Disable a rule with: spfxcheck upgrade --disable <RULE>")
	return nil
}

func renderRulesTable(w io.Writer, listings []catalogListing) {
	titleCaser := cases.Title(language.English)
	columns := []string{"version", "rule", "title", "severity", "file"}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = titleCaser.String(col)
	}
	t.AppendHeader(header)

	for _, l := range listings {
		for _, info := range l.Rules {
			t.AppendRow(table.Row{l.Version, info.ID, info.Title, string(info.Severity), info.File})
		}
		t.AppendSeparator()
	}

	t.Render()
}
