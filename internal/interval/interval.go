// Package interval provides a merging interval store used to account for
// byte ranges claimed inside the image, in particular to prove the patch
// catalog non-overlapping.
package interval

import (
	"cmp"
	"slices"
)

// Interval is a half open range [Start, End).
type Interval struct {
	Start int
	End   int
}

// CanMerge reports whether two intervals overlap or are adjacent.
func (i Interval) CanMerge(other Interval) bool {
	return (i.Start <= other.Start && other.Start <= i.End) ||
		(other.Start <= i.Start && i.Start <= other.End)
}

// Overlaps reports whether two intervals share at least one element.
// Unlike CanMerge, adjacency does not count.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

func (i Interval) merge(other Interval) Interval {
	return Interval{
		Start: min(i.Start, other.Start),
		End:   max(i.End, other.End),
	}
}

// Store accumulates intervals, merging ranges that touch.
type Store struct {
	intervals []Interval
}

// Add inserts a range into the store, merging it with every range it
// touches.
func (s *Store) Add(start, end int) {
	next := Interval{Start: start, End: end}
	merged := s.intervals[:0]
	for _, iv := range s.intervals {
		if iv.CanMerge(next) {
			next = next.merge(iv)
			continue
		}
		merged = append(merged, iv)
	}
	s.intervals = append(merged, next)
}

// Overlaps reports whether a range shares bytes with any stored range.
func (s *Store) Overlaps(start, end int) bool {
	probe := Interval{Start: start, End: end}
	for _, iv := range s.intervals {
		if iv.Overlaps(probe) {
			return true
		}
	}
	return false
}

// Intervals returns the stored ranges in ascending order.
func (s *Store) Intervals() []Interval {
	intervals := slices.Clone(s.intervals)
	slices.SortFunc(intervals, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return intervals
}
