package upgrade

// Severity classifies how important a finding is.
type Severity string

// Severity levels, most important first.
const (
	SeverityRequired    Severity = "Required"
	SeverityRecommended Severity = "Recommended"
	SeverityOptional    Severity = "Optional"
)

// ResolutionType determines how a finding's resolution is applied and rendered.
type ResolutionType string

const (
	// ResolutionCommand is a command line for the operator to run.
	ResolutionCommand ResolutionType = "cmd"
	// ResolutionEdit is a JSON fragment to merge into the finding's file.
	ResolutionEdit ResolutionType = "json"
)

// Finding is one required change detected by a rule. Findings are values and
// are not modified after a rule emits them.
type Finding struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Severity       Severity       `json:"severity"`
	File           string         `json:"file"`
	ResolutionType ResolutionType `json:"resolutionType"`
	Resolution     string         `json:"resolution"`
}
