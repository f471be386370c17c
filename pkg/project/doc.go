// Package project builds a read-only snapshot of an SPFx project on disk.
//
// A Project holds a fixed set of optional configuration documents (package.json,
// tsconfig.json, the files under config/ and .yo-rc.json) plus every component
// manifest found under src/. Documents that are missing or fail to parse are
// recorded as absent rather than reported as errors, so analysis always gets a
// best-effort view of the project.
//
// # Usage
//
//	root, err := project.FindRoot(fs, cwd)
//	builder := project.NewBuilder(fs, logger)
//	p, err := builder.Build(ctx, root)
//	if deps, ok := p.PackageJSON().Object("dependencies"); ok {
//		...
//	}
package project
