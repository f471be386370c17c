// Package rules holds the upgrade rule catalogs, one per supported SPFx version.
//
// Catalogs are built from a few reusable rule kinds:
//
//   - DependencyRule (FN001*, FN002*): package.json dependency versions
//   - JSONPropertyRule (FN003*, FN006*, FN012*): a property in a config document
//   - ManifestSchemaRule (FN011*): the $schema of component manifests
//   - YoRcVersionRule (FN010*): the generator version in .yo-rc.json
//
// The same rule ID appears in several catalogs with version-specific values;
// the newest catalog's finding is the one that survives deduplication.
package rules
