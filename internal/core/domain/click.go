package domain

import "time"

// Click is a single recorded ad-click event. Clicks are immutable once
// stored. Many clicks may share a campaign and even a timestamp.
type Click struct {
	ID        int64
	Campaign  int64
	Timestamp time.Time
}

// Bounds restricts a campaign count to an open time interval. A nil
// field means the side is unbounded.
type Bounds struct {
	After  *time.Time // exclusive lower bound
	Before *time.Time // exclusive upper bound
}

// Contains reports whether ts lies strictly inside b.
func (b Bounds) Contains(ts time.Time) bool {
	if b.After != nil && !ts.After(*b.After) {
		return false
	}
	if b.Before != nil && !ts.Before(*b.Before) {
		return false
	}
	return true
}
