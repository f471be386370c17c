package project

import (
	"path/filepath"
	"strings"
)

// Slot names one of the well-known configuration documents of a project.
type Slot int

// Known document slots.
const (
	SlotConfig Slot = iota
	SlotCopyAssets
	SlotDeployAzureStorage
	SlotPackage
	SlotPackageSolution
	SlotServe
	SlotTsConfig
	SlotTsLint
	SlotWriteManifests
	SlotYoRc
	slotCount
)

var slotPaths = [slotCount]string{
	SlotConfig:             "config/config.json",
	SlotCopyAssets:         "config/copy-assets.json",
	SlotDeployAzureStorage: "config/deploy-azure-storage.json",
	SlotPackage:            "package.json",
	SlotPackageSolution:    "config/package-solution.json",
	SlotServe:              "config/serve.json",
	SlotTsConfig:           "tsconfig.json",
	SlotTsLint:             "config/tslint.json",
	SlotWriteManifests:     "config/write-manifests.json",
	SlotYoRc:               ".yo-rc.json",
}

// Slots returns every known slot in read order.
func Slots() []Slot {
	slots := make([]Slot, slotCount)
	for i := range slots {
		slots[i] = Slot(i)
	}
	return slots
}

// Path returns the slot's path relative to the project root, using forward slashes.
func (s Slot) Path() string {
	if s < 0 || s >= slotCount {
		return ""
	}
	return slotPaths[s]
}

// String returns the slot's relative path.
func (s Slot) String() string {
	return s.Path()
}

// ManifestSuffix is the file name suffix of component manifests under src/.
const ManifestSuffix = ".manifest.json"

// Manifest is a parsed component manifest and the absolute path it came from.
type Manifest struct {
	Path     string
	Document Document
}

// Project is an immutable snapshot of one project's configuration.
// Rules read it; nothing downstream of the builder writes to it.
type Project struct {
	rootPath  string
	documents [slotCount]Document
	manifests []Manifest
}

// New assembles a project from already-read documents. Slots missing from
// docs are absent.
func New(rootPath string, docs map[Slot]Document, manifests []Manifest) *Project {
	p := &Project{rootPath: rootPath}
	for slot, doc := range docs {
		if slot >= 0 && slot < slotCount {
			p.documents[slot] = doc
		}
	}
	p.manifests = append([]Manifest(nil), manifests...)
	return p
}

// RootPath returns the absolute project root.
func (p *Project) RootPath() string {
	return p.rootPath
}

// Name returns the project directory name.
func (p *Project) Name() string {
	return filepath.Base(p.rootPath)
}

// Document returns the document held in slot.
func (p *Project) Document(slot Slot) Document {
	if slot < 0 || slot >= slotCount {
		return Absent()
	}
	return p.documents[slot]
}

// Manifests returns the discovered manifests in discovery order.
func (p *Project) Manifests() []Manifest {
	return append([]Manifest(nil), p.manifests...)
}

// RelativePath converts an absolute path inside the project to the "./a/b"
// form used in reports. Paths outside the root are returned unchanged.
func (p *Project) RelativePath(abs string) string {
	rel, err := filepath.Rel(p.rootPath, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return "./" + filepath.ToSlash(rel)
}

func (p *Project) ConfigJSON() Document             { return p.documents[SlotConfig] }
func (p *Project) CopyAssetsJSON() Document         { return p.documents[SlotCopyAssets] }
func (p *Project) DeployAzureStorageJSON() Document { return p.documents[SlotDeployAzureStorage] }
func (p *Project) PackageJSON() Document            { return p.documents[SlotPackage] }
func (p *Project) PackageSolutionJSON() Document    { return p.documents[SlotPackageSolution] }
func (p *Project) ServeJSON() Document              { return p.documents[SlotServe] }
func (p *Project) TsConfigJSON() Document           { return p.documents[SlotTsConfig] }
func (p *Project) TsLintJSON() Document             { return p.documents[SlotTsLint] }
func (p *Project) WriteManifestsJSON() Document     { return p.documents[SlotWriteManifests] }
func (p *Project) YoRcJSON() Document               { return p.documents[SlotYoRc] }
