package session

import (
	"sync"
	"testing"

	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/dataset"
)

// =============================================================================
// Helpers
// =============================================================================

type recorder struct {
	mu      sync.Mutex
	updates []Update
}

func (r *recorder) OnUpdate(u Update) {
	r.mu.Lock()
	r.updates = append(r.updates, u)
	r.mu.Unlock()
}

func (r *recorder) outputs() []Output {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Output, 0, len(r.updates))
	for _, u := range r.updates {
		out = append(out, u.Output)
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.updates = nil
	r.mu.Unlock()
}

func newTestStore(t *testing.T) *dataset.Store {
	t.Helper()
	store, err := dataset.New("test", []domain.Record{
		{LaunchSite: "A", PayloadMass: 500, Outcome: 1, BoosterCategory: "v1"},
		{LaunchSite: "A", PayloadMass: 1500, Outcome: 0, BoosterCategory: "v1"},
		{LaunchSite: "B", PayloadMass: 800, Outcome: 1, BoosterCategory: "v2"},
	})
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}
	return store
}

func equalOutputs(a, b []Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// Tests
// =============================================================================

func TestNewDashboard_InitialState(t *testing.T) {
	rec := &recorder{}
	b := NewDashboard("s1", newTestStore(t), rec)

	snap := b.Snapshot()
	if snap.State.Category != domain.AllCategory {
		t.Errorf("Expected category All, got %q", snap.State.Category)
	}
	if snap.State.Range != (domain.PayloadRange{Low: 500, High: 1500}) {
		t.Errorf("Expected full payload range, got %+v", snap.State.Range)
	}
	if snap.Pie.Title != "Total successful launches by launch site" {
		t.Errorf("Unexpected pie title %q", snap.Pie.Title)
	}
	if snap.Pie.Data.Total() != 2 {
		t.Errorf("Expected 2 successes, got %d", snap.Pie.Data.Total())
	}
	if len(snap.Scatter.Rows) != 3 {
		t.Errorf("Expected 3 scatter rows, got %d", len(snap.Scatter.Rows))
	}

	if got := rec.outputs(); !equalOutputs(got, []Output{OutputPie, OutputScatter}) {
		t.Errorf("Expected initial computation of both outputs, got %v", got)
	}
	for _, u := range rec.updates {
		if u.Trigger != "" {
			t.Errorf("Expected empty trigger for initial update, got %q", u.Trigger)
		}
	}
}

func TestBinder_SetCategoryUpdatesBothCharts(t *testing.T) {
	rec := &recorder{}
	b := NewDashboard("s1", newTestStore(t), rec)
	rec.reset()

	b.SetCategory("A")

	if got := rec.outputs(); !equalOutputs(got, []Output{OutputPie, OutputScatter}) {
		t.Fatalf("Expected pie and scatter recomputed, got %v", got)
	}

	snap := b.Snapshot()
	if snap.Pie.Title != "Total successful launches at Launch Site: A" {
		t.Errorf("Unexpected pie title %q", snap.Pie.Title)
	}
	if v, _ := snap.Pie.Data.Value("0"); v != 1 {
		t.Errorf("Expected one failure at A, got %d", v)
	}
	if len(snap.Scatter.Rows) != 2 {
		t.Errorf("Expected 2 scatter rows at A, got %d", len(snap.Scatter.Rows))
	}
	if snap.Scatter.Title != "Correlation between Payload Mass and Success for A" {
		t.Errorf("Unexpected scatter title %q", snap.Scatter.Title)
	}
}

func TestBinder_SetRangeUpdatesScatterOnly(t *testing.T) {
	rec := &recorder{}
	b := NewDashboard("s1", newTestStore(t), rec)
	pieBefore := b.Snapshot().Pie
	rec.reset()

	b.SetRange(0, 1000)

	if got := rec.outputs(); !equalOutputs(got, []Output{OutputScatter}) {
		t.Fatalf("Expected only scatter recomputed, got %v", got)
	}
	if rec.updates[0].Trigger != domain.FieldRange {
		t.Errorf("Expected trigger %q, got %q", domain.FieldRange, rec.updates[0].Trigger)
	}

	snap := b.Snapshot()
	if snap.Pie.Title != pieBefore.Title || snap.Pie.Data.Total() != pieBefore.Data.Total() {
		t.Error("Expected pie to be unchanged by range update")
	}
	if len(snap.Scatter.Rows) != 2 {
		t.Errorf("Expected 2 rows in [0,1000], got %d", len(snap.Scatter.Rows))
	}
}

func TestBinder_InvertedRangeIsEmpty(t *testing.T) {
	b := NewDashboard("s1", newTestStore(t), nil)

	b.SetRange(2000, 100)

	snap := b.Snapshot()
	if len(snap.Scatter.Rows) != 0 {
		t.Errorf("Expected no rows for inverted range, got %d", len(snap.Scatter.Rows))
	}
	if snap.State.Range != (domain.PayloadRange{Low: 2000, High: 100}) {
		t.Errorf("Expected range to be stored as given, got %+v", snap.State.Range)
	}
}

func TestBinder_Dependents(t *testing.T) {
	b := NewDashboard("s1", newTestStore(t), nil)

	if got := b.Dependents(domain.FieldCategory); !equalOutputs(got, []Output{OutputPie, OutputScatter}) {
		t.Errorf("Unexpected category dependents %v", got)
	}
	if got := b.Dependents(domain.FieldRange); !equalOutputs(got, []Output{OutputScatter}) {
		t.Errorf("Unexpected range dependents %v", got)
	}
}

func TestBinder_BindTwicePanics(t *testing.T) {
	b := NewBinder("s1", domain.FilterState{}, nil)
	b.Bind("out", func(domain.FilterState) any { return 1 })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate binding")
		}
	}()
	b.Bind("out", func(domain.FilterState) any { return 2 })
}

func TestBinder_UpdatesAreSerialized(t *testing.T) {
	var (
		mu      sync.Mutex
		running int
		overlap bool
	)
	obs := ObserverFunc(func(Update) {
		mu.Lock()
		running++
		if running > 1 {
			overlap = true
		}
		mu.Unlock()

		mu.Lock()
		running--
		mu.Unlock()
	})
	b := NewDashboard("s1", newTestStore(t), obs)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				b.SetRange(0, float64(i*100))
			} else {
				b.SetCategory("B")
			}
		}(i)
	}
	wg.Wait()

	if overlap {
		t.Error("Expected observer calls of one session not to overlap")
	}

	// The latest figure always matches the latest state.
	snap := b.Snapshot()
	if snap.Scatter.Range != snap.State.Range || snap.Scatter.Category != snap.State.Category {
		t.Errorf("Scatter figure out of sync: figure %+v/%q state %+v", snap.Scatter.Range, snap.Scatter.Category, snap.State)
	}
}

func TestMultiObserver(t *testing.T) {
	a, c := &recorder{}, &recorder{}
	NewDashboard("s1", newTestStore(t), MultiObserver{a, nil, c})

	if len(a.outputs()) != 2 || len(c.outputs()) != 2 {
		t.Errorf("Expected both observers to receive 2 updates, got %d and %d", len(a.outputs()), len(c.outputs()))
	}
}
