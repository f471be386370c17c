package upgrade

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
)

// EngineConfig holds engine configuration.
type EngineConfig struct {
	// Registry resolves version catalogs. Required.
	Registry *Registry

	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Engine visits a project with the rule catalogs of a version path.
type Engine struct {
	registry      *Registry
	disabledRules map[string]bool
	logger        *slog.Logger
}

// NewEngine creates an engine.
func NewEngine(cfg EngineConfig) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	disabled := cfg.DisabledRules
	if disabled == nil {
		disabled = make(map[string]bool)
	}
	return &Engine{
		registry:      cfg.Registry,
		disabledRules: disabled,
		logger:        logger,
	}
}

// Registry returns the registry the engine resolves catalogs from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Run applies the catalogs of versions, in the given order, to p and returns
// every finding in emission order. All catalogs are resolved before any rule
// runs; if one is missing nothing is returned.
func (e *Engine) Run(ctx context.Context, p *project.Project, versions []string) ([]Finding, error) {
	catalogs := make([][]Rule, len(versions))
	for i, v := range versions {
		rules, err := e.registry.Catalog(v)
		if err != nil {
			return nil, err
		}
		catalogs[i] = rules
	}

	sink := &Sink{}
	for i, v := range versions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		before := sink.Len()
		for _, rule := range catalogs[i] {
			if e.disabledRules[rule.ID()] {
				e.logger.Debug("rule disabled", "rule", rule.ID(), "version", v)
				continue
			}
			rule.Visit(p, sink)
		}
		e.logger.Debug("catalog applied", "version", v, "rules", len(catalogs[i]), "findings", sink.Len()-before)
	}

	return sink.Findings(), nil
}

// Result is the outcome of a full upgrade check.
type Result struct {
	Current  string
	Target   string
	Versions []string
	Findings []Finding
}

// Check detects the project's version, plans the path to target (the newest
// supported version when empty), runs the catalogs and deduplicates the
// findings.
func (e *Engine) Check(ctx context.Context, p *project.Project, target string) (*Result, error) {
	if target == "" {
		target = e.registry.Latest()
	}

	current, err := DetectVersion(p)
	if err != nil {
		return nil, err
	}

	versions, err := Plan(e.registry.Versions(), current, target)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("upgrade path planned", "current", current, "target", target, "versions", versions)

	findings, err := e.Run(ctx, p, versions)
	if err != nil {
		return nil, err
	}

	return &Result{
		Current:  current,
		Target:   target,
		Versions: versions,
		Findings: Dedupe(findings),
	}, nil
}
