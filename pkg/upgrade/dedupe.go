package upgrade

// Dedupe returns findings with only the first occurrence of each ID, keeping
// input order. The result is never nil.
func Dedupe(findings []Finding) []Finding {
	seen := make(map[string]struct{}, len(findings))
	result := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if _, dup := seen[f.ID]; dup {
			continue
		}
		seen[f.ID] = struct{}{}
		result = append(result, f)
	}
	return result
}
