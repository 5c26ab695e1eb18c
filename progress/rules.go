package progress

import (
	"strings"
)

// Rule maps a lowercase trigger substring in a tool's output line to a
// percentage and a user-facing stage label. Rule tables are ordered; their
// order encodes precedence, not chronology.
type Rule struct {
	Trigger string
	Percent int
	Label   string
}

// FirstMatch scans the rules in order and returns the first whose trigger is
// contained in the lowercased line. A line matching no rule is a silent
// no-op for progress purposes.
func FirstMatch(rules []Rule, line string) (Rule, bool) {
	lower := strings.ToLower(line)
	for _, rule := range rules {
		if strings.Contains(lower, rule.Trigger) {
			return rule, true
		}
	}
	return Rule{}, false
}
