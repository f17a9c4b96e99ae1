package model

import "sort"

// PoolQuota is one entry of a format's quota table. Quotas are kept as an
// ordered slice: fills run in declared order and the ordering is
// load-bearing for fairness (later fills see earlier fills' statistics).
type PoolQuota struct {
	Pool  string
	Count int
}

// Format couples a roster capacity with its pool quota table.
type Format struct {
	Capacity int
	Quotas   []PoolQuota
}

// FormatTable maps a year tag to its format.
type FormatTable map[int]Format

// DefaultFormats returns the built-in season tables.
func DefaultFormats() FormatTable {
	return FormatTable{
		2012: {
			Capacity: 16,
			Quotas: []PoolQuota{
				{Pool: "p12-rutin", Count: 6},
				{Pool: "p12-junior", Count: 3},
				{Pool: "p13-stark", Count: 3},
				{Pool: "p13-mellan", Count: 4},
			},
		},
		2013: {
			Capacity: 11,
			Quotas: []PoolQuota{
				{Pool: "p13-stark", Count: 2},
				{Pool: "p13-mellan", Count: 7},
				{Pool: "p13-junior", Count: 2},
			},
		},
	}
}

// Capacities returns the distinct roster capacities in the table, ascending.
// Report columns for per-capacity participation counts derive from it.
func (t FormatTable) Capacities() []int {
	seen := make(map[int]struct{}, len(t))
	var caps []int
	for _, f := range t {
		if _, ok := seen[f.Capacity]; ok {
			continue
		}
		seen[f.Capacity] = struct{}{}
		caps = append(caps, f.Capacity)
	}
	sort.Ints(caps)
	return caps
}
