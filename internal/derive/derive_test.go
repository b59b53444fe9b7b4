package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	id       string
	name     string
	email    string
	status   string
	category string
	stamp    time.Time
}

func (r testRecord) SearchText() []string { return []string{r.name, r.email} }
func (r testRecord) StatusTag() string    { return r.status }
func (r testRecord) CategoryTag() string  { return r.category }
func (r testRecord) Stamp() time.Time     { return r.stamp }

// unstamped has no usable timestamp, so date-range filters exclude it.
type unstamped struct{ name string }

func (r unstamped) SearchText() []string { return []string{r.name} }
func (r unstamped) StatusTag() string    { return "" }
func (r unstamped) CategoryTag() string  { return "" }

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func sampleRecords() []testRecord {
	return []testRecord{
		{id: "1", name: "John Smith", email: "john@example.com", status: "active", category: "alpha", stamp: day(1)},
		{id: "2", name: "Emily Johnson", email: "emily@example.com", status: "inactive", category: "beta", stamp: day(3)},
		{id: "3", name: "Michael Brown", email: "michael@example.com", status: "active", category: "beta", stamp: day(5)},
		{id: "4", name: "Sarah Davis", email: "sarah@example.com", status: "active", category: "alpha", stamp: day(7)},
	}
}

func ids(records []testRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.id)
	}
	return out
}

func TestFilterEmptyCriteriaReturnsEverything(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, Criteria{})

	assert.Equal(t, ids(records), ids(got))
}

func TestFilterAllSelectorIsInactive(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, Criteria{Status: "all", Category: "All"})
	assert.Len(t, got, len(records))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, Criteria{Query: "MI"})
	// "mi" hits John Smith, Emily Johnson and Michael Brown across the
	// designated fields.
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))

	got = Filter(records, Criteria{Query: "  smith "})
	assert.Equal(t, []string{"1"}, ids(got))

	got = Filter(records, Criteria{Query: "no such person"})
	assert.Empty(t, got)
}

func TestFilterStatusAndCategoryAreExactMatch(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []string{"1", "3", "4"}, ids(Filter(records, Criteria{Status: "active"})))
	assert.Equal(t, []string{"2", "3"}, ids(Filter(records, Criteria{Category: "beta"})))

	// Tags never substring-match.
	assert.Empty(t, Filter(records, Criteria{Status: "act"}))
}

func TestFilterDateRangeIsInclusive(t *testing.T) {
	records := sampleRecords()
	from, to := day(3), day(5)

	got := Filter(records, Criteria{From: &from, To: &to})
	assert.Equal(t, []string{"2", "3"}, ids(got))

	// Open-ended ranges clamp on one side only.
	got = Filter(records, Criteria{From: &from})
	assert.Equal(t, []string{"2", "3", "4"}, ids(got))
}

func TestFilterDateRangeExcludesUnstampedRecords(t *testing.T) {
	from := day(1)
	records := []unstamped{{name: "a"}, {name: "b"}}

	assert.Empty(t, Filter(records, Criteria{From: &from}))
	assert.Len(t, Filter(records, Criteria{}), 2)
}

func TestFilterCombinesPredicatesWithAND(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, Criteria{Query: "mi", Status: "active"})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Filter(records, Criteria{Query: "mi", Status: "active", Category: "beta"})
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	records := sampleRecords()

	got := Filter(records, Criteria{Status: "active"})
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].stamp.Before(got[i].stamp), "source order broken at %d", i)
	}
}

func TestSortStableKeepsTiesInSourceOrder(t *testing.T) {
	records := []testRecord{
		{id: "1", status: "b"},
		{id: "2", status: "a"},
		{id: "3", status: "a"},
		{id: "4", status: "b"},
	}

	sorted := SortStable(records, func(a, b testRecord) bool { return a.status < b.status })
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(sorted))
	// Input untouched.
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(records))
}

func TestPartitionSumsConservation(t *testing.T) {
	type bill struct {
		status string
		amount float64
	}
	bills := []bill{
		{"paid", 150.00},
		{"pending", 375.50},
		{"pending", 220.00},
		{"overdue", 95.75},
		{"paid", 450.25},
	}

	value := func(b bill) float64 { return b.amount }
	sums := PartitionSums(bills, func(b bill) string { return b.status }, value)

	assert.InDelta(t, 595.50, sums["pending"], 1e-9)
	assert.InDelta(t, 600.25, sums["paid"], 1e-9)
	assert.InDelta(t, 95.75, sums["overdue"], 1e-9)

	var partitioned float64
	for _, v := range sums {
		partitioned += v
	}
	assert.InDelta(t, SumBy(bills, value), partitioned, 1e-9)
}

func TestPartitionCountsCoverEveryRecord(t *testing.T) {
	records := sampleRecords()

	counts := PartitionCounts(records, func(r testRecord) string { return r.status })
	assert.Equal(t, map[string]int{"active": 3, "inactive": 1}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(records), total)
}

func TestCountBy(t *testing.T) {
	records := sampleRecords()
	n := CountBy(records, func(r testRecord) bool { return r.category == "alpha" })
	assert.Equal(t, 2, n)
}
