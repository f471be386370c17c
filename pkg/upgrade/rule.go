package upgrade

import "github.com/leapstack-labs/spfxcheck/pkg/project"

// Rule inspects a project and reports zero or more findings.
// Rules are stateless and must not modify the project.
type Rule interface {
	// ID returns the stable identifier of the rule, e.g. "FN001001".
	// Findings emitted by the rule carry the same ID.
	ID() string

	// Visit inspects p and adds any findings to sink.
	Visit(p *project.Project, sink *Sink)
}

// RuleInfo describes a rule for listings and documentation.
type RuleInfo struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
}

// Describer is implemented by rules that can describe themselves.
type Describer interface {
	Info() RuleInfo
}

// DescribeRule returns the rule's info, falling back to just its ID.
func DescribeRule(r Rule) RuleInfo {
	if d, ok := r.(Describer); ok {
		return d.Info()
	}
	return RuleInfo{ID: r.ID()}
}

// Sink is an append-only accumulator for findings.
type Sink struct {
	findings []Finding
}

// Add appends a finding.
func (s *Sink) Add(f Finding) {
	s.findings = append(s.findings, f)
}

// Len returns the number of findings collected so far.
func (s *Sink) Len() int {
	return len(s.findings)
}

// Findings returns a copy of the collected findings in insertion order.
func (s *Sink) Findings() []Finding {
	return append([]Finding{}, s.findings...)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	RuleID string
	Fn     func(p *project.Project, sink *Sink)
}

// ID implements Rule.
func (r RuleFunc) ID() string { return r.RuleID }

// Visit implements Rule.
func (r RuleFunc) Visit(p *project.Project, sink *Sink) { r.Fn(p, sink) }
