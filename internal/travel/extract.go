package travel

import (
	"strings"

	"opaltrack/internal/core"
)

// Extract walks the document's date sections and produces per-date
// activity groups in document order. Sections whose date label does not
// parse are skipped whole; individual activity fields degrade to their
// documented defaults independently of one another. Extract never
// fails: messy input yields a smaller result, not an error.
func Extract(doc Document) []core.DayGroup {
	var groups []core.DayGroup
	for _, section := range doc.DateGroups() {
		date, err := core.ParseDateLabel(section.DateLabel())
		if err != nil {
			continue
		}
		nodes := section.Activities()
		acts := make([]core.Activity, 0, len(nodes))
		for _, node := range nodes {
			acts = append(acts, extractActivity(node))
		}
		groups = append(groups, core.DayGroup{Date: date, Activities: acts})
	}
	return groups
}

func extractActivity(node ActivityNode) core.Activity {
	a := core.Activity{
		Start: core.UnknownPlace,
		End:   core.UnknownPlace,
	}
	if s, ok := node.TimeLabel(); ok {
		a.Time = core.ClockOrMidnight(s)
	}
	if s, ok := node.StartLabel(); ok {
		a.Start = strings.TrimSpace(s)
	}
	if s, ok := node.EndLabel(); ok {
		a.End = strings.TrimSpace(s)
	}
	if s, ok := node.FareLabel(); ok {
		a.Fare = core.AmountOrZero(s)
	}
	return a.Normalize()
}
