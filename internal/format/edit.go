package format

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
	"pubsweep/internal/source"
)

// Edit replaces the bytes under Span with Text. An empty span inserts,
// empty text deletes.
type Edit struct {
	Span source.Span
	Text string
}

// Apply splices a set of non-overlapping edits into a fresh copy of
// the file. Edits may arrive in any order; insertions at the same
// offset keep their relative order.
func Apply(sf *source.File, edits []Edit) ([]byte, error) {
	limit, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return nil, fmt.Errorf("file too large: %w", err)
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	w := NewWriter(sf)
	cur := uint32(0)
	for _, e := range sorted {
		if e.Span.End < e.Span.Start || e.Span.End > limit {
			return nil, fmt.Errorf("edit span %s out of range", e.Span)
		}
		if e.Span.Start < cur {
			return nil, fmt.Errorf("overlapping edit at offset %d", e.Span.Start)
		}
		w.CopyRange(cur, e.Span.Start)
		w.WriteString(e.Text)
		cur = e.Span.End
	}
	w.CopyRange(cur, limit)
	return w.Bytes(), nil
}
