package rules

import (
	_ "embed"
	"fmt"

	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"gopkg.in/yaml.v3"
)

//go:embed versions.yaml
var versionsYAML []byte

// versionTable is the shape of versions.yaml.
type versionTable struct {
	Versions []string `yaml:"versions"`
}

// catalogs maps each version to the constructor of its rule catalog.
var catalogs = map[string]func() []upgrade.Rule{
	"1.4.0": catalog140,
	"1.4.1": catalog141,
	"1.5.0": catalog150,
	"1.5.1": catalog151,
}

// Versions returns the supported versions, oldest first.
func Versions() []string {
	versions, err := parseVersions(versionsYAML)
	if err != nil {
		panic(err)
	}
	return versions
}

func parseVersions(data []byte) ([]string, error) {
	var table versionTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("invalid version table: %w", err)
	}
	if len(table.Versions) == 0 {
		return nil, fmt.Errorf("invalid version table: no versions")
	}
	return table.Versions, nil
}

// Default builds the registry of every supported version and its catalog.
func Default() *upgrade.Registry {
	versions := Versions()
	built := make(map[string][]upgrade.Rule, len(catalogs))
	for _, v := range versions {
		if newCatalog, ok := catalogs[v]; ok {
			built[v] = newCatalog()
		}
	}
	return upgrade.NewRegistry(versions, built)
}

// frameworkPackages returns the dependency rules every version bumps.
func frameworkPackages(version string) []upgrade.Rule {
	order := Versions()
	return []upgrade.Rule{
		DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: version, Versions: order},
		DependencyRule{RuleID: "FN001002", Package: "@microsoft/sp-lodash-subset", Version: version, Versions: order},
		DependencyRule{RuleID: "FN001003", Package: "@microsoft/sp-office-ui-fabric-core", Version: version, Optional: true, Versions: order},
		DependencyRule{RuleID: "FN001004", Package: "@microsoft/sp-webpart-base", Version: version, Optional: true, Versions: order},
		DependencyRule{RuleID: "FN002001", Package: "@microsoft/sp-build-web", Version: version, Dev: true, Versions: order},
		DependencyRule{RuleID: "FN002002", Package: "@microsoft/sp-module-interfaces", Version: version, Dev: true, Versions: order},
		DependencyRule{RuleID: "FN002003", Package: "@microsoft/sp-webpart-workbench", Version: version, Dev: true, Versions: order},
	}
}
