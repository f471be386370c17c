package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// manifestPattern matches component manifests relative to src/.
const manifestPattern = "**/*" + ManifestSuffix

// maxConcurrentReads bounds the number of documents read at once.
const maxConcurrentReads = 8

// Builder assembles Project snapshots from disk.
type Builder struct {
	fs     afero.Fs
	reader *Reader
	logger *slog.Logger
}

// NewBuilder creates a builder reading from fs.
func NewBuilder(fsys afero.Fs, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{
		fs:     fsys,
		reader: NewReader(fsys, logger),
		logger: logger,
	}
}

// Build reads every known document and every manifest under rootPath/src.
// Missing or malformed documents are left absent. The only errors returned
// are an unresolvable root path and context cancellation.
func (b *Builder) Build(ctx context.Context, rootPath string) (*Project, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", rootPath, err)
	}

	b.logger.Debug("building project model", "root", root)

	p := &Project{rootPath: root}

	// Reads run concurrently but each result lands in a fixed slot, so the
	// snapshot does not depend on completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for _, slot := range Slots() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.documents[slot] = b.reader.Read(filepath.Join(root, filepath.FromSlash(slot.Path())), KindJSON)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifests, err := b.readManifests(ctx, root)
	if err != nil {
		return nil, err
	}
	p.manifests = manifests

	b.logger.Debug("project model built",
		"root", root,
		"manifests", len(p.manifests),
		"package_json", p.PackageJSON().Present(),
		"yo_rc", p.YoRcJSON().Present(),
	)
	return p, nil
}

// readManifests walks root/src in lexical order and parses every manifest.
func (b *Builder) readManifests(ctx context.Context, root string) ([]Manifest, error) {
	srcDir := filepath.Join(root, "src")
	if ok, _ := afero.DirExists(b.fs, srcDir); !ok {
		return []Manifest{}, nil
	}

	var paths []string
	walkErr := afero.Walk(b.fs, srcDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			b.logger.Debug("skipping unreadable path", "path", path, "error", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return nil
		}
		if matched, _ := doublestar.Match(manifestPattern, filepath.ToSlash(rel)); matched {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		b.logger.Debug("manifest walk stopped early", "dir", srcDir, "error", walkErr)
	}

	docs := make([]Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = b.reader.Read(path, KindJSON)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifests := make([]Manifest, 0, len(paths))
	for i, path := range paths {
		if !docs[i].Present() {
			continue
		}
		manifests = append(manifests, Manifest{Path: path, Document: docs[i]})
	}
	return manifests, nil
}
