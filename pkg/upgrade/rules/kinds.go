package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
)

// DependencyRule requires a package.json dependency at an exact version.
type DependencyRule struct {
	RuleID  string
	Package string
	Version string
	// Dev selects devDependencies instead of dependencies.
	Dev bool
	// Optional rules only fire when the package is already referenced.
	Optional bool
	// Versions is the supported version order. A package installed at a
	// later version than Version is left alone.
	Versions []string
}

// ID implements upgrade.Rule.
func (r DependencyRule) ID() string { return r.RuleID }

// Info implements upgrade.Describer.
func (r DependencyRule) Info() upgrade.RuleInfo {
	return upgrade.RuleInfo{
		ID:       r.RuleID,
		Title:    r.Package,
		Severity: upgrade.SeverityRequired,
		File:     packageFile,
	}
}

// Visit implements upgrade.Rule.
func (r DependencyRule) Visit(p *project.Project, sink *upgrade.Sink) {
	pkg := p.PackageJSON()
	if !pkg.Present() {
		return
	}

	section, flag, kind := "dependencies", "-SE", "dependency"
	if r.Dev {
		section, flag, kind = "devDependencies", "-DE", "dev dependency"
	}

	current, ok := pkg.String(section, r.Package)
	if !ok && r.Optional {
		return
	}
	if ok && (current == r.Version || isLater(r.Versions, upgrade.CleanVersion(current), r.Version)) {
		return
	}

	sink.Add(upgrade.Finding{
		ID:             r.RuleID,
		Title:          r.Package,
		Description:    fmt.Sprintf("Upgrade SharePoint Framework %s package %s", kind, r.Package),
		Severity:       upgrade.SeverityRequired,
		File:           packageFile,
		ResolutionType: upgrade.ResolutionCommand,
		Resolution:     fmt.Sprintf("npm i %s@%s %s", r.Package, r.Version, flag),
	})
}

// isLater reports whether v comes after ref in versions. Versions missing
// from the list are never later.
func isLater(versions []string, v, ref string) bool {
	vi, ri := slices.Index(versions, v), slices.Index(versions, ref)
	return vi >= 0 && ri >= 0 && vi > ri
}

// YoRcVersionRule requires the generator version recorded in .yo-rc.json.
type YoRcVersionRule struct {
	RuleID  string
	Version string
}

// ID implements upgrade.Rule.
func (r YoRcVersionRule) ID() string { return r.RuleID }

// Info implements upgrade.Describer.
func (r YoRcVersionRule) Info() upgrade.RuleInfo {
	return upgrade.RuleInfo{
		ID:       r.RuleID,
		Title:    ".yo-rc.json version",
		Severity: upgrade.SeverityRecommended,
		File:     relFile(project.SlotYoRc),
	}
}

// Visit implements upgrade.Rule.
func (r YoRcVersionRule) Visit(p *project.Project, sink *upgrade.Sink) {
	yoRc := p.YoRcJSON()
	if !yoRc.Present() {
		return
	}
	if v, ok := yoRc.String(upgrade.GeneratorKey, "version"); ok && v == r.Version {
		return
	}

	sink.Add(upgrade.Finding{
		ID:             r.RuleID,
		Title:          ".yo-rc.json version",
		Description:    "Update version in .yo-rc.json",
		Severity:       upgrade.SeverityRecommended,
		File:           relFile(project.SlotYoRc),
		ResolutionType: upgrade.ResolutionEdit,
		Resolution:     fragment([]string{upgrade.GeneratorKey, "version"}, r.Version),
	})
}

// JSONPropertyRule requires a property of a configuration document to hold a
// given value. Projects without the document are not flagged.
type JSONPropertyRule struct {
	RuleID      string
	Slot        project.Slot
	Path        []string
	Value       any
	Title       string
	Description string
	Severity    upgrade.Severity
}

// ID implements upgrade.Rule.
func (r JSONPropertyRule) ID() string { return r.RuleID }

// Info implements upgrade.Describer.
func (r JSONPropertyRule) Info() upgrade.RuleInfo {
	return upgrade.RuleInfo{
		ID:       r.RuleID,
		Title:    r.Title,
		Severity: r.Severity,
		File:     relFile(r.Slot),
	}
}

// Visit implements upgrade.Rule.
func (r JSONPropertyRule) Visit(p *project.Project, sink *upgrade.Sink) {
	doc := p.Document(r.Slot)
	if !doc.Present() {
		return
	}
	if got, ok := doc.Lookup(r.Path...); ok && jsonEqual(got, r.Value) {
		return
	}

	sink.Add(upgrade.Finding{
		ID:             r.RuleID,
		Title:          r.Title,
		Description:    r.Description,
		Severity:       r.Severity,
		File:           relFile(r.Slot),
		ResolutionType: upgrade.ResolutionEdit,
		Resolution:     fragment(r.Path, r.Value),
	})
}

// ManifestSchemaRule requires the manifests of one component type to
// reference a given JSON schema. All outdated manifests are reported in a
// single finding that points at the first of them.
type ManifestSchemaRule struct {
	RuleID        string
	ComponentType string
	Schema        string
}

// ID implements upgrade.Rule.
func (r ManifestSchemaRule) ID() string { return r.RuleID }

// Info implements upgrade.Describer.
func (r ManifestSchemaRule) Info() upgrade.RuleInfo {
	return upgrade.RuleInfo{
		ID:       r.RuleID,
		Title:    r.ComponentType + " manifest schema",
		Severity: upgrade.SeverityRequired,
		File:     "./src/**/*" + project.ManifestSuffix,
	}
}

// Visit implements upgrade.Rule.
func (r ManifestSchemaRule) Visit(p *project.Project, sink *upgrade.Sink) {
	var outdated []string
	for _, m := range p.Manifests() {
		if ct, _ := m.Document.String("componentType"); ct != r.ComponentType {
			continue
		}
		if schema, ok := m.Document.String("$schema"); ok && schema == r.Schema {
			continue
		}
		outdated = append(outdated, p.RelativePath(m.Path))
	}
	if len(outdated) == 0 {
		return
	}

	description := fmt.Sprintf("Update schema in %s manifest", r.ComponentType)
	if len(outdated) > 1 {
		description = fmt.Sprintf("Update schema in %d %s manifests: %s",
			len(outdated), r.ComponentType, strings.Join(outdated, ", "))
	}

	sink.Add(upgrade.Finding{
		ID:             r.RuleID,
		Title:          r.ComponentType + " manifest schema",
		Description:    description,
		Severity:       upgrade.SeverityRequired,
		File:           outdated[0],
		ResolutionType: upgrade.ResolutionEdit,
		Resolution:     fragment([]string{"$schema"}, r.Schema),
	})
}

var packageFile = relFile(project.SlotPackage)

func relFile(slot project.Slot) string {
	return "./" + slot.Path()
}

// fragment renders value nested under path as an indented JSON object.
func fragment(path []string, value any) string {
	v := value
	for i := len(path) - 1; i >= 0; i-- {
		v = map[string]any{path[i]: v}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// jsonEqual compares a decoded JSON value with a Go value by normalizing the
// latter through encoding/json.
func jsonEqual(decoded, want any) bool {
	data, err := json.Marshal(want)
	if err != nil {
		return false
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return false
	}
	return reflect.DeepEqual(decoded, normalized)
}
