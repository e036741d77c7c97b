// Package engine derives chart data from the launch records and the current
// filter selection. Every function is pure and total: no input makes it fail,
// and an empty selection produces an empty result.
package engine

import "github.com/vietddude/launchdash/internal/core/domain"

// ComputeProportions produces the data of the proportion chart.
//
// For "All" it sums the outcome flag per launch site, in first-appearance
// order. For a single site it counts that site's records per outcome flag,
// with one entry for each flag present in ascending order.
func ComputeProportions(records []domain.Record, category string) domain.AggregateResult {
	if domain.IsAllCategory(category) {
		return successesBySite(records)
	}
	return countsByOutcome(Filter(records, SiteIs(category)))
}

func successesBySite(records []domain.Record) domain.AggregateResult {
	result := domain.AggregateResult{Kind: domain.AggregateBySite, Entries: []domain.AggregateEntry{}}
	index := make(map[string]int)

	for _, r := range records {
		i, ok := index[r.LaunchSite]
		if !ok {
			i = len(result.Entries)
			index[r.LaunchSite] = i
			result.Entries = append(result.Entries, domain.AggregateEntry{Label: r.LaunchSite})
		}
		result.Entries[i].Value += int(r.Outcome)
	}
	return result
}

func countsByOutcome(records []domain.Record) domain.AggregateResult {
	result := domain.AggregateResult{Kind: domain.AggregateByOutcome, Entries: []domain.AggregateEntry{}}

	var counts [2]int
	for _, r := range records {
		if r.Outcome.Valid() {
			counts[r.Outcome]++
		}
	}

	for _, o := range []domain.Outcome{domain.OutcomeFailure, domain.OutcomeSuccess} {
		if counts[o] > 0 {
			result.Entries = append(result.Entries, domain.AggregateEntry{
				Label: o.String(),
				Value: counts[o],
			})
		}
	}
	return result
}

// ComputeScatterRows keeps the records inside rng (inclusive) that belong to
// category, preserving dataset order. An inverted range yields no rows.
func ComputeScatterRows(records []domain.Record, category string, rng domain.PayloadRange) domain.ScatterRows {
	if rng.Inverted() {
		return domain.ScatterRows{}
	}

	keep := And(PayloadWithin(rng), SiteIs(category))
	rows := make(domain.ScatterRows, 0)
	for _, r := range records {
		if !keep(r) {
			continue
		}
		rows = append(rows, domain.ScatterRow{
			LaunchSite:      r.LaunchSite,
			PayloadMass:     r.PayloadMass,
			Outcome:         r.Outcome,
			BoosterCategory: r.BoosterCategory,
		})
	}
	return rows
}
