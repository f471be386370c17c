package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display spfxcheck version, build information and the newest supported SharePoint Framework release.`,
		Run: func(cmd *cobra.Command, _ []string) {
			r := NewCommandContext(cmd).Renderer
			r.Println(r.Styles().Bold.Render(fmt.Sprintf("spfxcheck v%s", info.Version)))
			r.Printf("  commit: %s\n", info.GitCommit)
			r.Printf("  built:  %s\n", info.BuildDate)
			r.Println(r.Styles().Info.Render(
				fmt.Sprintf("SharePoint Framework upgrade analyzer (supports up to v%s)", defaultRegistry().Latest())))
		},
	}
}
