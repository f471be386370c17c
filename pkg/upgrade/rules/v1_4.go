package rules

import (
	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
)

// catalog140 is the first supported version, so no upgrade path ever
// includes it. It only exists for the rules listing and generated docs.
func catalog140() []upgrade.Rule {
	rules := frameworkPackages("1.4.0")
	return append(rules,
		YoRcVersionRule{RuleID: "FN010001", Version: "1.4.0"},
	)
}

func catalog141() []upgrade.Rule {
	rules := frameworkPackages("1.4.1")
	return append(rules,
		JSONPropertyRule{
			RuleID:      "FN006001",
			Slot:        project.SlotPackageSolution,
			Path:        []string{"solution", "includeClientSideAssets"},
			Value:       true,
			Title:       "package-solution.json includeClientSideAssets",
			Description: "Package client-side assets with the solution so they are deployed to the app catalog",
			Severity:    upgrade.SeverityRequired,
		},
		YoRcVersionRule{RuleID: "FN010001", Version: "1.4.1"},
	)
}
