package engine

import "github.com/vietddude/launchdash/internal/core/domain"

// Predicate reports whether a record is kept by a filter.
type Predicate func(domain.Record) bool

// SiteIs keeps records of one launch site. "All" keeps everything.
func SiteIs(category string) Predicate {
	if domain.IsAllCategory(category) {
		return func(domain.Record) bool { return true }
	}
	return func(r domain.Record) bool { return r.LaunchSite == category }
}

// PayloadWithin keeps records whose payload mass lies in rng, inclusive.
func PayloadWithin(rng domain.PayloadRange) Predicate {
	return func(r domain.Record) bool { return rng.Contains(r.PayloadMass) }
}

// And combines predicates; a record must pass all of them.
func And(preds ...Predicate) Predicate {
	return func(r domain.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records passing pred in their original order.
func Filter(records []domain.Record, pred Predicate) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
