package iterate

import (
	"fmt"
	"sync"

	"golang.org/x/exp/constraints"
)

// Aggregator is a per-superstep reduction. Contributions made during
// superstep i are combined at the barrier and become readable in superstep
// i+1 via PreviousAggregate. Aggregators are not called concurrently; the
// registry serializes contributions.
type Aggregator interface {
	Aggregate(value any)
	GetAggregate() any
	Reset()
}

// SumAggregator sums numeric contributions.
type SumAggregator[T constraints.Integer | constraints.Float] struct {
	sum T
}

func (a *SumAggregator[T]) Aggregate(value any) { a.sum += value.(T) }
func (a *SumAggregator[T]) GetAggregate() any   { return a.sum }
func (a *SumAggregator[T]) Reset()              { a.sum = 0 }

// MinAggregator keeps the minimum contribution of the superstep.
type MinAggregator[T constraints.Ordered] struct {
	set bool
	min T
}

func (a *MinAggregator[T]) Aggregate(value any) {
	v := value.(T)
	if !a.set || v < a.min {
		a.set = true
		a.min = v
	}
}

func (a *MinAggregator[T]) GetAggregate() any {
	if !a.set {
		return nil
	}
	return a.min
}

func (a *MinAggregator[T]) Reset() {
	a.set = false
	var zero T
	a.min = zero
}

// aggregatorRegistry serializes concurrent contributions from partition
// workers and snapshots each aggregate at the superstep barrier.
type aggregatorRegistry struct {
	mu       sync.Mutex
	regs     map[string]Aggregator
	previous map[string]any
}

func newAggregatorRegistry() *aggregatorRegistry {
	return &aggregatorRegistry{
		regs:     make(map[string]Aggregator),
		previous: make(map[string]any),
	}
}

func (r *aggregatorRegistry) register(name string, agg Aggregator) error {
	if _, ok := r.regs[name]; ok {
		return fmt.Errorf("aggregator '%s' is already registered", name)
	}
	r.regs[name] = agg
	return nil
}

func (r *aggregatorRegistry) aggregate(name string, value any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	agg, ok := r.regs[name]
	if !ok {
		return false
	}
	agg.Aggregate(value)
	return true
}

func (r *aggregatorRegistry) previousAggregate(name string) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.previous[name]
}

// combine runs at the barrier: publish this superstep's aggregates for the
// next one and reset for fresh contributions.
func (r *aggregatorRegistry) combine() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, agg := range r.regs {
		r.previous[name] = agg.GetAggregate()
		agg.Reset()
	}
}
