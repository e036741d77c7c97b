package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/metrics"
)

// Output names a value derived from the filter state.
type Output string

const (
	OutputPie     Output = "success-pie-chart"
	OutputScatter Output = "success-payload-scatter-chart"
)

// ComputeFunc derives an output from the current filter state.
// It must be pure.
type ComputeFunc func(state domain.FilterState) any

type binding struct {
	output  Output
	deps    []domain.FilterField
	compute ComputeFunc
}

// Binder owns the filter state of one session and keeps every bound output in
// sync with it. Updates are serialized: each transition recomputes its
// dependents and notifies observers before the next transition starts.
type Binder struct {
	id       string
	observer Observer
	now      func() time.Time

	mu         sync.Mutex
	state      domain.FilterState
	bindings   []binding
	dependents map[domain.FilterField][]int
	latest     map[Output]any
	lastActive time.Time
}

// NewBinder creates a binder holding initial. Outputs are added with Bind.
func NewBinder(id string, initial domain.FilterState, observer Observer) *Binder {
	return &Binder{
		id:         id,
		observer:   observer,
		now:        time.Now,
		state:      initial,
		dependents: make(map[domain.FilterField][]int),
		latest:     make(map[Output]any),
		lastActive: time.Now(),
	}
}

// ID returns the session identifier.
func (b *Binder) ID() string { return b.id }

// Bind registers output as depending on deps and computes its initial value.
// Binding the same output twice is a programming error.
func (b *Binder) Bind(output Output, compute ComputeFunc, deps ...domain.FilterField) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.bindings {
		if existing.output == output {
			panic(fmt.Sprintf("session: output %q already bound", output))
		}
	}

	idx := len(b.bindings)
	b.bindings = append(b.bindings, binding{output: output, deps: deps, compute: compute})
	for _, field := range deps {
		b.dependents[field] = append(b.dependents[field], idx)
	}

	b.recompute(idx, "")
}

// SetCategory replaces the selected category and recomputes its dependents.
func (b *Binder) SetCategory(category string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Category = category
	b.trigger(domain.FieldCategory)
}

// SetRange replaces the payload range and recomputes its dependents.
// An inverted range is accepted; dependents see an empty selection.
func (b *Binder) SetRange(low, high float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.state.Range = domain.PayloadRange{Low: low, High: high}
	b.trigger(domain.FieldRange)
}

// State returns the current filter state.
func (b *Binder) State() domain.FilterState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Latest returns the most recent value of output.
func (b *Binder) Latest(output Output) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.latest[output]
	return v, ok
}

// Dependents returns the outputs recomputed when field changes, in binding order.
func (b *Binder) Dependents(field domain.FilterField) []Output {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Output, 0, len(b.dependents[field]))
	for _, idx := range b.dependents[field] {
		out = append(out, b.bindings[idx].output)
	}
	return out
}

// LastActive returns when the session last changed or was read.
func (b *Binder) LastActive() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastActive
}

// Touch marks the session as active.
func (b *Binder) Touch() {
	b.mu.Lock()
	b.lastActive = b.now()
	b.mu.Unlock()
}

// trigger must be called with b.mu held.
func (b *Binder) trigger(field domain.FilterField) {
	metrics.FilterUpdates.WithLabelValues(string(field)).Inc()
	b.lastActive = b.now()

	for _, idx := range b.dependents[field] {
		b.recompute(idx, field)
	}
}

// recompute must be called with b.mu held.
func (b *Binder) recompute(idx int, field domain.FilterField) {
	bd := b.bindings[idx]

	start := b.now()
	value := bd.compute(b.state)
	elapsed := b.now().Sub(start)

	b.latest[bd.output] = value

	if b.observer != nil {
		b.observer.OnUpdate(Update{
			SessionID: b.id,
			Output:    bd.output,
			Trigger:   field,
			State:     b.state,
			Figure:    value,
			Elapsed:   elapsed,
		})
	}
}
