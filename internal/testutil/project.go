package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// PackageJSON141 is a package.json for a project generated with SPFx 1.4.1.
const PackageJSON141 = `{
  "name": "hello-world",
  "version": "0.0.1",
  "private": true,
  "dependencies": {
    "@microsoft/sp-core-library": "~1.4.1",
    "@microsoft/sp-lodash-subset": "~1.4.1",
    "@microsoft/sp-webpart-base": "~1.4.1",
    "@microsoft/sp-office-ui-fabric-core": "~1.4.1"
  },
  "devDependencies": {
    "@microsoft/sp-build-web": "~1.4.1",
    "@microsoft/sp-module-interfaces": "~1.4.1",
    "@microsoft/sp-webpart-workbench": "~1.4.1"
  }
}`

// YoRc141 is the generator metadata of an SPFx 1.4.1 project.
const YoRc141 = `{
  "@microsoft/generator-sharepoint": {
    "version": "1.4.1",
    "libraryName": "hello-world",
    "environment": "spo"
  }
}`

// WebPartManifest is a component manifest with the pre-1.5 schema.
const WebPartManifest = `{
  // generated by the SharePoint Framework
  "$schema": "https://dev.office.com/json-schemas/spfx/client-side-web-part-manifest.schema.json",
  "id": "6d6c4a3e-7b1c-4d1b-8c5e-2d5c1c3c0c01",
  "alias": "HelloWorldWebPart",
  "componentType": "WebPart",
  "manifestVersion": 2
}`

// WriteFiles writes files (keyed by slash-separated path relative to root)
// into fs.
func WriteFiles(t testing.TB, fs afero.Fs, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// SetupTestProject creates an SPFx 1.4.1 project in a temporary directory on
// the real filesystem and returns its root.
func SetupTestProject(t testing.TB) string {
	t.Helper()

	root := t.TempDir()
	WriteFiles(t, afero.NewOsFs(), root, map[string]string{
		"package.json":      PackageJSON141,
		".yo-rc.json":       YoRc141,
		"tsconfig.json":     `{"compilerOptions": {"target": "es5"}}`,
		"config/serve.json": `{"port": 4321}`,

		"src/webparts/helloWorld/HelloWorldWebPart.manifest.json": WebPartManifest,
	})
	if err := os.MkdirAll(filepath.Join(root, "src", "webparts", "helloWorld", "loc"), 0o755); err != nil {
		t.Fatalf("failed to create loc directory: %v", err)
	}
	return root
}
