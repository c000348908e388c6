package rule

// Stats accumulates parse/dispatch bookkeeping — total/per-category counts
// and a skip-reason histogram — purely additive, never consulted by the
// parsers themselves. cmd/rulekit uses this to print a per-run summary.
type Stats struct {
	Total       int
	Cosmetic    int
	Network     int
	Exceptions  int
	Comments    int
	Errors      int
	SkipReasons map[string]int
}

// NewStats returns a ready-to-use Stats accumulator.
func NewStats() *Stats {
	return &Stats{SkipReasons: make(map[string]int)}
}

// RecordError increments the error tally and bucket-counts it by the
// string form of its cause (typically a rulekiterr.Kind.String()).
func (s *Stats) RecordError(reason string) {
	s.Errors++
	s.SkipReasons[reason]++
}

// DeduplicateRaw removes duplicate raw rule lines, preserving first-seen
// order, before they ever reach a parser.
func DeduplicateRaw(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
