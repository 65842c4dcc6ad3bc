package ticket

import (
	"context"
	"strings"
)

// similarityThreshold is the minimum positional similarity accepted when
// substring matching fails.
const similarityThreshold = 0.7

// similarity scores two strings as the fraction of positions where their
// characters coincide, normalized by the longer length. Crude, but cheap and
// good enough to absorb model typos like "Broadway Musical Nite".
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	max := len(a)
	if len(b) > max {
		max = len(b)
	}
	if max == 0 {
		return 0
	}
	return float64(matches) / float64(max)
}

// resolveEvent maps a free-text event reference to an event id using the
// live event list. Substring containment (either direction, catalog order)
// wins over similarity scoring; similarity must exceed the threshold, first
// maximum wins ties. Returns the candidate names alongside a miss so the
// caller can tell the user what exists.
func (t *ticketTools) resolveEvent(ctx context.Context, ref string) (id string, candidates []string, ok bool) {
	result, err := t.mcp.CallTool(ctx, "list_events", nil)
	if err != nil {
		return "", nil, false
	}
	events, _ := result["events"].([]any)

	type entry struct{ id, name string }
	var catalog []entry
	for _, e := range events {
		event, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := event["name"].(string)
		eid, _ := event["id"].(string)
		if name == "" || eid == "" {
			continue
		}
		catalog = append(catalog, entry{id: eid, name: name})
		candidates = append(candidates, name)
	}

	want := strings.ToLower(strings.TrimSpace(ref))

	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.name), want) {
			return e.id, candidates, true
		}
	}
	for _, e := range catalog {
		if strings.Contains(want, strings.ToLower(e.name)) {
			return e.id, candidates, true
		}
	}

	bestScore := similarityThreshold
	bestID := ""
	for _, e := range catalog {
		if score := similarity(want, e.name); score > bestScore {
			bestScore = score
			bestID = e.id
		}
	}
	if bestID != "" {
		return bestID, candidates, true
	}
	return "", candidates, false
}
