package bench

import (
	"fmt"
	"strings"
)

// Report formats results the way a bench-suite comparison step
// summarizes a run: one line per instance, pass/fail plus timing,
// then a trailing tally.
func Report(results []Result) string {
	var b strings.Builder
	passed := 0
	for _, r := range results {
		status := "FAIL"
		if r.Pass() {
			status = "PASS"
			passed++
		}
		if r.Err != nil {
			fmt.Fprintf(&b, "%-30s %s  error: %v\n", r.Scenario.Name, status, r.Err)
			continue
		}
		fmt.Fprintf(&b, "%-30s %s  want=%s got=%s  %s\n",
			r.Scenario.Name, status, r.Scenario.Want, r.Got, r.Dur)
	}
	fmt.Fprintf(&b, "%d/%d passed\n", passed, len(results))
	return b.String()
}
