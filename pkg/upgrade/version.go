package upgrade

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
)

// ErrVersionUndetectable is returned when neither the generator metadata nor
// the core library dependency reveals the project's version.
var ErrVersionUndetectable = errors.New("unable to determine the version of the current SharePoint Framework project")

// Well-known keys used for version detection.
const (
	GeneratorKey       = "@microsoft/generator-sharepoint"
	CoreLibraryPackage = "@microsoft/sp-core-library"
)

// DetectVersion returns the SPFx version the project was generated with.
// The generator metadata in .yo-rc.json wins; otherwise the core library
// dependency range is used with everything but digits and dots removed.
func DetectVersion(p *project.Project) (string, error) {
	if v, ok := p.YoRcJSON().String(GeneratorKey, "version"); ok && v != "" {
		return v, nil
	}

	if v, ok := p.PackageJSON().String("dependencies", CoreLibraryPackage); ok {
		if cleaned := CleanVersion(v); cleaned != "" {
			return cleaned, nil
		}
	}

	return "", ErrVersionUndetectable
}

// CleanVersion strips range operators and other non-numeric characters,
// turning "~1.4.1" into "1.4.1".
func CleanVersion(v string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, v)
}
