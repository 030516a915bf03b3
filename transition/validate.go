package transition

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidTable = errors.New("transition: invalid table")

// Report holds the non-fatal findings of Validate.
type Report struct {
	Warnings []string
}

// Validate checks every edge against the room sizes. Overlapping ranges,
// ranges past the end of a side, unknown destinations and entries that
// land outside the destination side are errors. Uncovered indices on a side
// that has edges are warnings, or errors when strict is set.
func (g *Graph) Validate(sizes Sizer, strict bool) (Report, error) {
	var report Report
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTable}, args...)...))
	}

	keys := make([]sideKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Room != b.Room {
			return a.Room < b.Room
		}
		return a.dir < b.dir
	})

	for _, k := range keys {
		where := fmt.Sprintf("%s %s", k.RoomKey, k.dir)
		w, h, ok := sizes.RoomSize(k.Region, k.Room)
		if !ok {
			fail("%s: source room does not exist", where)
			continue
		}
		length := sideLength(k.dir, w, h)

		edges := append([]Edge(nil), g.edges[k]...)
		sort.SliceStable(edges, func(i, j int) bool { return edges[i].First < edges[j].First })

		next := 0
		for i, e := range edges {
			if e.First < 0 || e.Last >= length {
				fail("%s: range %d..%d outside 0..%d", where, e.First, e.Last, length-1)
			}
			if i > 0 && e.First <= edges[i-1].Last {
				fail("%s: range %d..%d overlaps %d..%d", where, e.First, e.Last, edges[i-1].First, edges[i-1].Last)
			}
			if e.First > next {
				gap := fmt.Sprintf("%s: indices %d..%d lead nowhere", where, next, e.First-1)
				if strict {
					fail("%s", gap)
				} else {
					report.Warnings = append(report.Warnings, gap)
				}
			}
			next = max(next, e.Last+1)

			dw, dh, ok := sizes.RoomSize(e.Region, e.Dest)
			if !ok {
				fail("%s: destination %d/%s does not exist", where, e.Region, e.Dest)
				continue
			}
			destLen := sideLength(k.dir, dw, dh)
			if e.First+e.Offset < 0 || e.Last+e.Offset >= destLen {
				fail("%s: range %d..%d with offset %d lands outside %d/%s (0..%d)",
					where, e.First, e.Last, e.Offset, e.Region, e.Dest, destLen-1)
			}
		}
		if next < length {
			gap := fmt.Sprintf("%s: indices %d..%d lead nowhere", where, next, length-1)
			if strict {
				fail("%s", gap)
			} else {
				report.Warnings = append(report.Warnings, gap)
			}
		}
	}
	return report, errors.Join(errs...)
}

// sideLength is the number of tiles along the side crossed in direction dir.
func sideLength(dir Direction, w, h int) int {
	if dir.Horizontal() {
		return h
	}
	return w
}
