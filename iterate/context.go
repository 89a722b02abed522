package iterate

// StepContext carries the per-superstep accessors shared by the messaging
// and update hosts: superstep number, aggregators, and the named broadcast
// sets configured for that side of the iteration.
type StepContext struct {
	superstep int
	aggs      *aggregatorRegistry
	bcast     map[string]any
}

// Superstep number, starting at 1.
func (c *StepContext) Superstep() int {
	return c.superstep
}

// Aggregate contributes a value to the named aggregator. Returns false if no
// aggregator was registered under that name.
func (c *StepContext) Aggregate(name string, value any) bool {
	return c.aggs.aggregate(name, value)
}

// PreviousAggregate returns the value the named aggregator combined in the
// previous superstep, or nil if there is none yet.
func (c *StepContext) PreviousAggregate(name string) any {
	return c.aggs.previousAggregate(name)
}

// BroadcastSet returns the data set registered under the given name, or nil.
// On the messaging side, the reserved name HashKeysBroadcastSet yields the
// representative table.
func (c *StepContext) BroadcastSet(name string) any {
	return c.bcast[name]
}

// Optional lifecycle capabilities of user functions, asserted at runtime.
// Hooks run on the driver goroutine, never concurrently.

// Initer runs once, before the first superstep.
type Initer interface {
	Init(ctx *StepContext) error
}

// PreSuperstepper runs before each superstep's invocations.
type PreSuperstepper interface {
	PreSuperstep(ctx *StepContext) error
}

// PostSuperstepper runs after each superstep's invocations.
type PostSuperstepper interface {
	PostSuperstep(ctx *StepContext) error
}
