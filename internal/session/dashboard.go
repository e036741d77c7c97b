package session

import (
	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/dataset"
	"github.com/vietddude/launchdash/internal/engine"
	"github.com/vietddude/launchdash/internal/render"
)

// Snapshot is the current state of a dashboard session and its charts.
type Snapshot struct {
	ID      string               `json:"id"`
	State   domain.FilterState   `json:"state"`
	Pie     domain.PieFigure     `json:"pie"`
	Scatter domain.ScatterFigure `json:"scatter"`
}

// InitialState selects every site over the full payload range.
func InitialState(store *dataset.Store) domain.FilterState {
	return domain.FilterState{
		Category: domain.AllCategory,
		Range:    store.DefaultRange(),
	}
}

// NewDashboard creates a binder wired with the two dashboard charts:
// the pie chart depends on the category, the scatter chart on both fields.
func NewDashboard(id string, store *dataset.Store, observer Observer) *Binder {
	b := NewBinder(id, InitialState(store), observer)

	records := store.Records()
	b.Bind(OutputPie, func(s domain.FilterState) any {
		return render.BuildPie(s.Category, engine.ComputeProportions(records, s.Category))
	}, domain.FieldCategory)

	b.Bind(OutputScatter, func(s domain.FilterState) any {
		rows := engine.ComputeScatterRows(records, s.Category, s.Range)
		return render.BuildScatter(s.Category, s.Range, rows)
	}, domain.FieldCategory, domain.FieldRange)

	return b
}

// Snapshot returns the filter state together with the latest figures.
func (b *Binder) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := Snapshot{ID: b.id, State: b.state}
	if pie, ok := b.latest[OutputPie].(domain.PieFigure); ok {
		snap.Pie = pie
	}
	if scatter, ok := b.latest[OutputScatter].(domain.ScatterFigure); ok {
		snap.Scatter = scatter
	}
	return snap
}
