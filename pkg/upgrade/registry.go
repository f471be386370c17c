package upgrade

import (
	"errors"
	"fmt"
)

// ErrCatalogNotFound is returned when no rule catalog exists for a version.
var ErrCatalogNotFound = errors.New("rule catalog not found")

// CatalogError reports a version whose rule catalog could not be resolved.
type CatalogError struct {
	Version string
	Err     error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("failed to load rules for version %s: %v", e.Version, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Registry maps each supported version to the catalog of rules that apply
// when upgrading to it. It is built once and only read afterwards.
type Registry struct {
	versions []string
	catalogs map[string][]Rule
}

// NewRegistry creates a registry. versions is the ascending list of supported
// versions; catalogs holds the rules for upgrading to each version. A version
// may be listed without a catalog, in which case planning to it fails when
// the engine runs.
func NewRegistry(versions []string, catalogs map[string][]Rule) *Registry {
	r := &Registry{
		versions: append([]string(nil), versions...),
		catalogs: make(map[string][]Rule, len(catalogs)),
	}
	for v, rules := range catalogs {
		r.catalogs[v] = append([]Rule(nil), rules...)
	}
	return r
}

// Versions returns the supported versions, oldest first.
func (r *Registry) Versions() []string {
	return append([]string(nil), r.versions...)
}

// Latest returns the newest supported version, or "" for an empty registry.
func (r *Registry) Latest() string {
	if len(r.versions) == 0 {
		return ""
	}
	return r.versions[len(r.versions)-1]
}

// Catalog returns the rules for upgrading to version, in catalog order.
func (r *Registry) Catalog(version string) ([]Rule, error) {
	rules, ok := r.catalogs[version]
	if !ok {
		return nil, &CatalogError{Version: version, Err: ErrCatalogNotFound}
	}
	return append([]Rule(nil), rules...), nil
}
