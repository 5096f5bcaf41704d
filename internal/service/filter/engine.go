// internal/service/filter/engine.go

package filter

import (
	"misinfotracker/internal/domain/record"
)

// Apply returns the records matching every dimension of the selection.
// Order is preserved and the input slice is never modified. An empty
// dimension yields an empty, non-nil result.
func Apply(records []record.Record, sel record.Selection) []record.Record {
	if sel.IsEmpty() {
		return []record.Record{}
	}

	filtered := make([]record.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
