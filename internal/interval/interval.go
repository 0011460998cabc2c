// Package interval provides the small interval algebra the allocator is
// built on: merging overlapping spans and subtracting a merged set from a
// window. All operations are pure and return freshly allocated slices in
// canonical (ascending start) order.
package interval

import (
	"sort"
	"time"
)

// Span is a half-open [Start, End) interval of absolute time.
type Span struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (s Span) Duration() time.Duration { return s.End.Sub(s.Start) }

// IsEmpty reports whether the span contains no time at all.
func (s Span) IsEmpty() bool { return !s.Start.Before(s.End) }

// Overlaps reports whether two half-open spans share any instant.
// Touching endpoints ([a,b) and [b,c)) do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Merge canonicalizes a set of spans: empty spans are dropped, the rest are
// sorted by start and coalesced so the result is disjoint and ascending.
// Adjacent spans (touching endpoints) are coalesced as well, since a shared
// boundary leaves no usable gap.
//
// The input slice is not modified.
func Merge(spans []Span) []Span {
	live := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			live = append(live, s)
		}
	}
	if len(live) == 0 {
		return nil
	}

	sort.Slice(live, func(i, j int) bool {
		if !live[i].Start.Equal(live[j].Start) {
			return live[i].Start.Before(live[j].Start)
		}
		return live[i].End.Before(live[j].End)
	})

	out := []Span{live[0]}
	for _, s := range live[1:] {
		last := &out[len(out)-1]
		if s.Start.After(last.End) {
			out = append(out, s)
			continue
		}
		if s.End.After(last.End) {
			last.End = s.End
		}
	}
	return out
}

// Subtract removes every span in sub from window and returns the remaining
// available segments in ascending order. sub need not be merged or sorted;
// it is canonicalized internally.
//
// Segments sharing only a boundary with a subtracted span are kept intact:
// [18:00,19:00) minus [18:30,19:00) leaves exactly [18:00,18:30).
func Subtract(window Span, sub []Span) []Span {
	if window.IsEmpty() {
		return nil
	}

	var out []Span
	cursor := window.Start
	for _, s := range Merge(sub) {
		if !s.Overlaps(Span{Start: cursor, End: window.End}) {
			continue
		}
		if s.Start.After(cursor) {
			out = append(out, Span{Start: cursor, End: s.Start})
		}
		if s.End.After(cursor) {
			cursor = s.End
		}
	}
	if cursor.Before(window.End) {
		out = append(out, Span{Start: cursor, End: window.End})
	}
	return out
}
