package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/leapstack-labs/spfxcheck/pkg/report"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade/rules"
	"github.com/spf13/cobra"
)

// defaultRegistry returns the built-in version catalogs.
var defaultRegistry = rules.Default

// UpgradeOptions holds options for the upgrade command.
type UpgradeOptions struct {
	To      string   // Target version (default: newest supported)
	Disable []string // Rule IDs to disable
}

// NewUpgradeCommand creates the upgrade command.
func NewUpgradeCommand() *cobra.Command {
	opts := &UpgradeOptions{}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Report the steps to upgrade an SPFx project",
		Long: `Analyze a SharePoint Framework project and report what must change to
upgrade it to a newer framework version.

The project's current version is read from .yo-rc.json, or from the
@microsoft/sp-core-library dependency in package.json. The rules of every
version between the current and the target version are applied, newest
first, and each finding is reported once.

Output formats:
  - text: JSON list of rule IDs and resolutions (default)
  - json: every finding with all its fields
  - md:   Markdown report with a summary of commands and file edits`,
		Example: `  # Upgrade the project in the current directory to the newest version
  spfxcheck upgrade

  # Upgrade to a specific version and write a Markdown report
  spfxcheck upgrade --to 1.5.0 -o md > upgrade.md

  # Analyze another directory, skipping the .yo-rc.json rule
  spfxcheck upgrade --project-dir ../my-webpart --disable FN010001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpgrade(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "", "Target SPFx version (default: newest supported)")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")

	_ = cmd.RegisterFlagCompletionFunc("to", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return defaultRegistry().Versions(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runUpgrade(cmd *cobra.Command, opts *UpgradeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	// Flags win over config when the command runs without the root loader.
	target := cfg.To
	if cmd.Flags().Changed("to") {
		target = opts.To
	}
	disabled := cfg.DisabledRuleSet()
	for _, id := range opts.Disable {
		disabled[id] = true
	}
	reg := defaultRegistry()
	for _, id := range unknownRuleIDs(reg, disabled) {
		cmdCtx.Renderer.Warning(fmt.Sprintf("disabled rule %s is not defined by any catalog", id))
	}

	start := cfg.ProjectDir
	if start == "" {
		if start, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	root, err := project.FindRoot(cmdCtx.Fs, start)
	if err != nil {
		return err
	}
	logger.Debug("project root found", "root", root)

	p, err := project.NewBuilder(cmdCtx.Fs, logger).Build(cmd.Context(), root)
	if err != nil {
		return fmt.Errorf("failed to read project: %w", err)
	}

	eng := upgrade.NewEngine(upgrade.EngineConfig{
		Registry:      reg,
		DisabledRules: disabled,
		Logger:        logger,
	})
	result, err := eng.Check(cmd.Context(), p, target)
	if err != nil {
		return err
	}
	logger.Info("upgrade analyzed",
		"project", p.Name(),
		"current", result.Current,
		"target", result.Target,
		"findings", len(result.Findings),
	)

	return report.Render(cmd.OutOrStdout(), result.Findings, report.Options{
		Format:        format,
		TargetVersion: result.Target,
		ProjectName:   p.Name(),
	})
}

// unknownRuleIDs returns the sorted IDs in disabled that no catalog of reg defines.
func unknownRuleIDs(reg *upgrade.Registry, disabled map[string]bool) []string {
	known := make(map[string]bool)
	for _, v := range reg.Versions() {
		catalog, err := reg.Catalog(v)
		if err != nil {
			continue
		}
		for _, rule := range catalog {
			known[rule.ID()] = true
		}
	}

	var unknown []string
	for id := range disabled {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)
	return unknown
}
