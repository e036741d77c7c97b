package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// Store holds the launch records in memory together with the summary values
// derived at load time. A Store never changes after construction, so its
// accessors are safe for concurrent readers.
type Store struct {
	source     string
	records    []domain.Record
	categories []domain.CategoryOption
	minPayload float64
	maxPayload float64
}

// Load reads every record from src and builds a Store.
// Any failure is reported as a *DataLoadError.
func Load(ctx context.Context, src Source) (*Store, error) {
	records, err := src.Load(ctx)
	if err != nil {
		var loadErr *DataLoadError
		if errors.As(err, &loadErr) {
			return nil, loadErr
		}
		return nil, loadError(src.Name(), "read source", err)
	}

	store, err := New(src.Name(), records)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// New validates records and computes the derived values.
func New(source string, records []domain.Record) (*Store, error) {
	if len(records) == 0 {
		return nil, loadError(source, "dataset is empty", nil)
	}

	s := &Store{
		source:     source,
		records:    make([]domain.Record, len(records)),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}
	copy(s.records, records)

	s.categories = append(s.categories, domain.CategoryOption{
		Label: domain.AllCategoryLabel,
		Value: domain.AllCategory,
	})
	seen := make(map[string]struct{})

	for i, r := range s.records {
		if math.IsNaN(r.PayloadMass) || math.IsInf(r.PayloadMass, 0) || r.PayloadMass < 0 {
			return nil, loadError(source, fmt.Sprintf("record %d: invalid payload mass %v", i, r.PayloadMass), nil)
		}
		if !r.Outcome.Valid() {
			return nil, loadError(source, fmt.Sprintf("record %d: invalid outcome flag %d", i, r.Outcome), nil)
		}

		if domain.IsAllCategory(r.LaunchSite) {
			return nil, loadError(source, fmt.Sprintf("record %d: launch site %q is reserved", i, r.LaunchSite), nil)
		}

		s.minPayload = math.Min(s.minPayload, r.PayloadMass)
		s.maxPayload = math.Max(s.maxPayload, r.PayloadMass)

		if _, ok := seen[r.LaunchSite]; !ok {
			seen[r.LaunchSite] = struct{}{}
			s.categories = append(s.categories, domain.CategoryOption{
				Label: r.LaunchSite,
				Value: r.LaunchSite,
			})
		}
	}

	return s, nil
}

// Source returns the name of the source the store was loaded from.
func (s *Store) Source() string { return s.source }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Records returns the records in source order. The slice is shared; callers
// must not modify it.
func (s *Store) Records() []domain.Record { return s.records }

// Categories returns "All" followed by the distinct launch sites in
// first-appearance order.
func (s *Store) Categories() []domain.CategoryOption {
	out := make([]domain.CategoryOption, len(s.categories))
	copy(out, s.categories)
	return out
}

// HasCategory reports whether value is "All" or a known launch site.
func (s *Store) HasCategory(value string) bool {
	for _, c := range s.categories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// PayloadBounds returns the smallest and largest payload mass.
func (s *Store) PayloadBounds() (float64, float64) {
	return s.minPayload, s.maxPayload
}

// DefaultRange is the full payload range observed in the dataset.
func (s *Store) DefaultRange() domain.PayloadRange {
	return domain.PayloadRange{Low: s.minPayload, High: s.maxPayload}
}

// SliderBounds rounds the payload bounds outward to multiples of step.
func (s *Store) SliderBounds(step float64) domain.SliderBounds {
	if step <= 0 {
		return domain.SliderBounds{Min: s.minPayload, Max: s.maxPayload}
	}
	return domain.SliderBounds{
		Min:  math.Floor(s.minPayload/step) * step,
		Max:  math.Ceil(s.maxPayload/step) * step,
		Step: step,
	}
}
