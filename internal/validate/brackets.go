package validate

import (
	"fmt"
	"sort"
)

// Bracket is an inclusive level range owned by a tier.
type Bracket struct {
	Name string
	Min  int
	Max  int
}

// Brackets checks a tier table for inverted, overlapping and gapped ranges.
// All findings are warnings: lookups still resolve first match wins.
func Brackets(brackets []Bracket) []Issue {
	var issues []Issue
	valid := make([]Bracket, 0, len(brackets))
	for _, b := range brackets {
		if b.Min > b.Max {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     CodeBracketInverted,
				Tier:     b.Name,
				Message:  fmt.Sprintf("min %d is greater than max %d", b.Min, b.Max),
			})
			continue
		}
		valid = append(valid, b)
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Min < valid[j].Min })
	for i := 1; i < len(valid); i++ {
		prev, cur := valid[i-1], valid[i]
		switch {
		case cur.Min <= prev.Max:
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     CodeBracketOverlap,
				Tier:     cur.Name,
				Message:  fmt.Sprintf("levels %d..%d overlap tier %s", cur.Min, min(cur.Max, prev.Max), prev.Name),
			})
		case cur.Min > prev.Max+1:
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     CodeBracketGap,
				Tier:     cur.Name,
				Message:  fmt.Sprintf("levels %d..%d are not covered by any tier", prev.Max+1, cur.Min-1),
			})
		}
	}
	return issues
}
