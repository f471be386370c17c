package rules

import (
	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
)

const (
	buildConfigSchema = "https://developer.microsoft.com/json-schemas/spfx-build/config.2.0.schema.json"
	webPartSchema     = "https://developer.microsoft.com/json-schemas/spfx/client-side-web-part-manifest.schema.json"
	extensionSchema   = "https://developer.microsoft.com/json-schemas/spfx/client-side-extension-manifest.schema.json"
)

func catalog150() []upgrade.Rule {
	rules := frameworkPackages("1.5.0")
	return append(rules,
		JSONPropertyRule{
			RuleID:      "FN003001",
			Slot:        project.SlotConfig,
			Path:        []string{"$schema"},
			Value:       buildConfigSchema,
			Title:       "config.json schema",
			Description: "Update config.json schema URL",
			Severity:    upgrade.SeverityRequired,
		},
		YoRcVersionRule{RuleID: "FN010001", Version: "1.5.0"},
		ManifestSchemaRule{RuleID: "FN011001", ComponentType: "WebPart", Schema: webPartSchema},
		ManifestSchemaRule{RuleID: "FN011002", ComponentType: "Extension", Schema: extensionSchema},
		JSONPropertyRule{
			RuleID:      "FN012013",
			Slot:        project.SlotTsConfig,
			Path:        []string{"compilerOptions", "lib"},
			Value:       []string{"es5", "dom", "es2015.collection"},
			Title:       "tsconfig.json lib",
			Description: "Add es2015.collection to the TypeScript libraries",
			Severity:    upgrade.SeverityRequired,
		},
	)
}

func catalog151() []upgrade.Rule {
	rules := frameworkPackages("1.5.1")
	return append(rules,
		YoRcVersionRule{RuleID: "FN010001", Version: "1.5.1"},
	)
}
