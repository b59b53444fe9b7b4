// Package derive computes the visible subset of an in-memory collection from
// user-controlled filter criteria, plus the summary aggregates shown above
// list views. Filtering never reorders records; sorting is a separate,
// explicit step.
package derive

import (
	"sort"
	"strings"
	"time"
)

// TagAll is the selector value that disables filtering on that axis.
const TagAll = "all"

// Matcher is the capability a record needs to participate in filtering.
// SearchText returns the designated free-text fields for the domain.
// StatusTag and CategoryTag return the record's values on the two selector
// axes; a domain without one of the axes returns "".
type Matcher interface {
	SearchText() []string
	StatusTag() string
	CategoryTag() string
}

// Stamped is implemented by records that carry a timestamp usable for
// date-range filtering.
type Stamped interface {
	Stamp() time.Time
}

// Criteria is the current combination of filters for a list view. Zero
// value matches everything.
type Criteria struct {
	Query    string
	Status   string
	Category string
	From     *time.Time
	To       *time.Time
}

func tagActive(sel string) bool {
	return sel != "" && !strings.EqualFold(sel, TagAll)
}

// Matches reports whether a single record passes every active predicate.
func Matches(rec Matcher, c Criteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		hit := false
		for _, field := range rec.SearchText() {
			if strings.Contains(strings.ToLower(field), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if tagActive(c.Status) && rec.StatusTag() != c.Status {
		return false
	}
	if tagActive(c.Category) && rec.CategoryTag() != c.Category {
		return false
	}

	if c.From != nil || c.To != nil {
		stamped, ok := rec.(Stamped)
		if !ok {
			return false
		}
		ts := stamped.Stamp()
		if c.From != nil && ts.Before(*c.From) {
			return false
		}
		if c.To != nil && ts.After(*c.To) {
			return false
		}
	}

	return true
}

// Filter returns the records matching c, preserving source order. The
// result is always a subset of records; empty criteria return a copy of the
// full input.
func Filter[T Matcher](records []T, c Criteria) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if Matches(rec, c) {
			out = append(out, rec)
		}
	}
	return out
}

// SortStable sorts a copy of records with a stable sort, so records with
// equal keys keep their source order. The input slice is not modified.
func SortStable[T any](records []T, less func(a, b T) bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SumBy folds a numeric field over records.
func SumBy[T any](records []T, value func(T) float64) float64 {
	var total float64
	for _, rec := range records {
		total += value(rec)
	}
	return total
}

// CountBy counts the records satisfying pred.
func CountBy[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// PartitionSums partitions records by key and sums value per partition.
// Each record lands in exactly one partition, so the partition sums always
// add up to SumBy over the same records.
func PartitionSums[T any](records []T, key func(T) string, value func(T) float64) map[string]float64 {
	out := make(map[string]float64)
	for _, rec := range records {
		out[key(rec)] += value(rec)
	}
	return out
}

// PartitionCounts partitions records by key and counts per partition.
func PartitionCounts[T any](records []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, rec := range records {
		out[key(rec)]++
	}
	return out
}
