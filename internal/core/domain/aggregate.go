package domain

// AggregateKind tells which grouping produced an AggregateResult.
type AggregateKind string

const (
	// AggregateBySite maps launch site to success count ("All" pie).
	AggregateBySite AggregateKind = "by_site"
	// AggregateByOutcome maps outcome flag to record count (single-site pie).
	AggregateByOutcome AggregateKind = "by_outcome"
)

// AggregateEntry is one labelled value of an AggregateResult.
type AggregateEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// AggregateResult is the ordered data behind a proportion chart.
type AggregateResult struct {
	Kind    AggregateKind    `json:"kind"`
	Entries []AggregateEntry `json:"entries"`
}

// Total returns the sum of all entry values.
func (r AggregateResult) Total() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Value
	}
	return total
}

// Value returns the value stored under label.
func (r AggregateResult) Value(label string) (int, bool) {
	for _, e := range r.Entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return 0, false
}

// IsEmpty reports whether the result has no entries.
func (r AggregateResult) IsEmpty() bool {
	return len(r.Entries) == 0
}

// ScatterRow is one point of the correlation chart.
type ScatterRow struct {
	LaunchSite      string  `json:"launch_site"`
	PayloadMass     float64 `json:"payload_mass_kg"`
	Outcome         Outcome `json:"class"`
	BoosterCategory string  `json:"booster_category"`
}

// ScatterRows is the filtered, dataset-ordered subset for the scatter chart.
type ScatterRows []ScatterRow

// BoosterCategories returns the distinct booster categories in first-appearance order.
func (rows ScatterRows) BoosterCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if _, ok := seen[r.BoosterCategory]; ok {
			continue
		}
		seen[r.BoosterCategory] = struct{}{}
		out = append(out, r.BoosterCategory)
	}
	return out
}
