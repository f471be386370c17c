// Package upgrade plans and runs SPFx upgrade checks.
//
// # Pipeline
//
// A check is a fixed sequence of pure steps:
//
//  1. DetectVersion reads the project's current SPFx version.
//  2. Plan turns (current, target) into the version increments to apply,
//     newest first.
//  3. Engine.Run resolves the rule catalog of every increment and lets each
//     rule inspect the project, collecting findings in a Sink.
//  4. Dedupe keeps the first finding for each rule ID.
//
// Because catalogs run newest first and Dedupe keeps the first occurrence, a
// rule re-raised by an older catalog never overrides the guidance of a newer
// one.
//
// # Versions
//
// Versions are ordered by their position in the registry's catalog, never by
// semantic-version comparison.
//
// # Usage
//
//	reg := rules.Default()
//	eng := upgrade.NewEngine(upgrade.EngineConfig{Registry: reg})
//	result, err := eng.Check(ctx, p, reg.Latest())
package upgrade
