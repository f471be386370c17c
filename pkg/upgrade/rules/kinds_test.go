package rules

import (
	"testing"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visit(r upgrade.Rule, p *project.Project) []upgrade.Finding {
	sink := &upgrade.Sink{}
	r.Visit(p, sink)
	return sink.Findings()
}

func withPackage(pkg map[string]any) *project.Project {
	return project.New("/app", map[project.Slot]project.Document{
		project.SlotPackage: project.NewDocument(pkg),
	}, nil)
}

func TestDependencyRule(t *testing.T) {
	tests := []struct {
		name    string
		rule    DependencyRule
		project *project.Project
		want    string // expected resolution, empty for no finding
	}{
		{
			name:    "outdated dependency",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0"},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "~1.4.1"}}),
			want:    "npm i @microsoft/sp-core-library@1.5.0 -SE",
		},
		{
			name:    "already at version",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0"},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "1.5.0"}}),
		},
		{
			name:    "missing required dependency is installed",
			rule:    DependencyRule{RuleID: "FN001002", Package: "@microsoft/sp-lodash-subset", Version: "1.5.0"},
			project: withPackage(map[string]any{}),
			want:    "npm i @microsoft/sp-lodash-subset@1.5.0 -SE",
		},
		{
			name:    "missing optional dependency is ignored",
			rule:    DependencyRule{RuleID: "FN001004", Package: "@microsoft/sp-webpart-base", Version: "1.5.0", Optional: true},
			project: withPackage(map[string]any{}),
		},
		{
			name:    "dev dependency",
			rule:    DependencyRule{RuleID: "FN002001", Package: "@microsoft/sp-build-web", Version: "1.5.0", Dev: true},
			project: withPackage(map[string]any{"devDependencies": map[string]any{"@microsoft/sp-build-web": "~1.4.1"}}),
			want:    "npm i @microsoft/sp-build-web@1.5.0 -DE",
		},
		{
			name:    "installed later than rule version",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0", Versions: Versions()},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "~1.5.1"}}),
		},
		{
			name:    "installed earlier than rule version",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0", Versions: Versions()},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "1.4.1"}}),
			want:    "npm i @microsoft/sp-core-library@1.5.0 -SE",
		},
		{
			name:    "range at rule version is pinned",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0", Versions: Versions()},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "~1.5.0"}}),
			want:    "npm i @microsoft/sp-core-library@1.5.0 -SE",
		},
		{
			name:    "unknown installed version",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0", Versions: Versions()},
			project: withPackage(map[string]any{"dependencies": map[string]any{"@microsoft/sp-core-library": "2.0.0"}}),
			want:    "npm i @microsoft/sp-core-library@1.5.0 -SE",
		},
		{
			name:    "no package.json",
			rule:    DependencyRule{RuleID: "FN001001", Package: "@microsoft/sp-core-library", Version: "1.5.0"},
			project: project.New("/app", nil, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := visit(tt.rule, tt.project)
			if tt.want == "" {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			f := findings[0]
			assert.Equal(t, tt.rule.RuleID, f.ID)
			assert.Equal(t, upgrade.ResolutionCommand, f.ResolutionType)
			assert.Equal(t, tt.want, f.Resolution)
			assert.Equal(t, "./package.json", f.File)
			assert.Equal(t, upgrade.SeverityRequired, f.Severity)
		})
	}
}

func TestYoRcVersionRule(t *testing.T) {
	p := project.New("/app", map[project.Slot]project.Document{
		project.SlotYoRc: project.NewDocument(map[string]any{
			upgrade.GeneratorKey: map[string]any{"version": "1.4.1"},
		}),
	}, nil)

	findings := visit(YoRcVersionRule{RuleID: "FN010001", Version: "1.5.0"}, p)
	require.Len(t, findings, 1)
	assert.Equal(t, upgrade.ResolutionEdit, findings[0].ResolutionType)
	assert.Equal(t, "./.yo-rc.json", findings[0].File)
	assert.Equal(t, `{
  "@microsoft/generator-sharepoint": {
    "version": "1.5.0"
  }
}`, findings[0].Resolution)

	assert.Empty(t, visit(YoRcVersionRule{RuleID: "FN010001", Version: "1.4.1"}, p))
	assert.Empty(t, visit(YoRcVersionRule{RuleID: "FN010001", Version: "1.5.0"}, project.New("/app", nil, nil)))
}

func TestJSONPropertyRule(t *testing.T) {
	rule := JSONPropertyRule{
		RuleID:      "FN012013",
		Slot:        project.SlotTsConfig,
		Path:        []string{"compilerOptions", "lib"},
		Value:       []string{"es5", "dom", "es2015.collection"},
		Title:       "tsconfig.json lib",
		Description: "Add es2015.collection",
		Severity:    upgrade.SeverityRequired,
	}
	tsconfig := func(opts map[string]any) *project.Project {
		return project.New("/app", map[project.Slot]project.Document{
			project.SlotTsConfig: project.NewDocument(map[string]any{"compilerOptions": opts}),
		}, nil)
	}

	t.Run("missing property", func(t *testing.T) {
		findings := visit(rule, tsconfig(map[string]any{"target": "es5"}))
		require.Len(t, findings, 1)
		assert.Equal(t, "./tsconfig.json", findings[0].File)
		assert.Contains(t, findings[0].Resolution, `"es2015.collection"`)
	})

	t.Run("matching property", func(t *testing.T) {
		findings := visit(rule, tsconfig(map[string]any{"lib": []any{"es5", "dom", "es2015.collection"}}))
		assert.Empty(t, findings)
	})

	t.Run("different property", func(t *testing.T) {
		findings := visit(rule, tsconfig(map[string]any{"lib": []any{"es5", "dom"}}))
		assert.Len(t, findings, 1)
	})

	t.Run("absent document", func(t *testing.T) {
		assert.Empty(t, visit(rule, project.New("/app", nil, nil)))
	})
}

func TestManifestSchemaRule(t *testing.T) {
	manifest := func(path, componentType, schema string) project.Manifest {
		return project.Manifest{
			Path: path,
			Document: project.NewDocument(map[string]any{
				"componentType": componentType,
				"$schema":       schema,
			}),
		}
	}
	rule := ManifestSchemaRule{RuleID: "FN011001", ComponentType: "WebPart", Schema: webPartSchema}

	p := project.New("/app", nil, []project.Manifest{
		manifest("/app/src/webparts/a/A.manifest.json", "WebPart", "https://dev.office.com/old.json"),
		manifest("/app/src/extensions/x/X.manifest.json", "Extension", "https://dev.office.com/old.json"),
		manifest("/app/src/webparts/b/B.manifest.json", "WebPart", webPartSchema),
		manifest("/app/src/webparts/c/C.manifest.json", "WebPart", "https://dev.office.com/old.json"),
	})

	findings := visit(rule, p)
	require.Len(t, findings, 1)
	assert.Equal(t, "./src/webparts/a/A.manifest.json", findings[0].File)
	assert.Contains(t, findings[0].Description, "2 WebPart manifests")
	assert.Contains(t, findings[0].Description, "./src/webparts/c/C.manifest.json")

	assert.Empty(t, visit(rule, project.New("/app", nil, nil)))
}

func TestFragment(t *testing.T) {
	assert.Equal(t, `{
  "$schema": "https://example.com/a&b.json"
}`, fragment([]string{"$schema"}, "https://example.com/a&b.json"))
	assert.Equal(t, "true", fragment(nil, true))
}
