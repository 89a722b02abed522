package iterate

import (
	"errors"

	"github.com/murmurgraph/murmur/graph"
)

// HashKeysBroadcastSet is the reserved broadcast-set name under which the
// messaging side receives the representative table (as
// []utils.Pair[int, K]). User code must not register data under this name.
const HashKeysBroadcastSet = "HASH_KEYS_BROADCAST_SET"

// VertexCentricIteration is an iterative graph computation programmed in a
// vertex-centric perspective: a special case of Bulk Synchronous Parallel.
// Messages flow along edges, vertex states update from incoming messages,
// and the computation ends once no vertex updates its state any more, or
// after the configured maximum number of supersteps.
//
// Built with WithPlainEdges or WithValuedEdges depending on whether the
// edges carry values; then configured, given its input via SetInput, and run
// via CreateResult.
//
// Key-type agreement between vertices and edges, and the 2-tuple shape of
// the inputs, are enforced by the type parameters at compile time.
type VertexCentricIteration[K graph.Key, V any, M any, E any] struct {
	updateFunction    VertexUpdateFunction[K, V, M]
	messagingFunction MessagingFunction[K, V, M, E]
	edges             []graph.Edge[K, E]
	maxSupersteps     int

	aggs           *aggregatorRegistry
	bcastMessaging map[string]any
	bcastUpdate    map[string]any

	initialVertices []graph.Vertex[K, V]
	hasInput        bool

	name                 string
	parallelism          int
	unmanagedSolutionSet bool

	stats RunStats
}

// WithPlainEdges creates a vertex-centric iteration for a graph whose edges
// carry no values. Edges are (source, target) pairs.
func WithPlainEdges[K graph.Key, V any, M any](
	edges []graph.Edge[K, graph.None],
	updateFunction VertexUpdateFunction[K, V, M],
	messagingFunction MessagingFunction[K, V, M, graph.None],
	maxSupersteps int,
) (*VertexCentricIteration[K, V, M, graph.None], error) {
	return newIteration(edges, updateFunction, messagingFunction, maxSupersteps)
}

// WithValuedEdges creates a vertex-centric iteration for a graph whose edges
// carry a value, available to the messaging function via OutgoingEdges.
func WithValuedEdges[K graph.Key, V any, M any, E any](
	edges []graph.Edge[K, E],
	updateFunction VertexUpdateFunction[K, V, M],
	messagingFunction MessagingFunction[K, V, M, E],
	maxSupersteps int,
) (*VertexCentricIteration[K, V, M, E], error) {
	return newIteration(edges, updateFunction, messagingFunction, maxSupersteps)
}

func newIteration[K graph.Key, V any, M any, E any](
	edges []graph.Edge[K, E],
	updateFunction VertexUpdateFunction[K, V, M],
	messagingFunction MessagingFunction[K, V, M, E],
	maxSupersteps int,
) (*VertexCentricIteration[K, V, M, E], error) {
	if updateFunction == nil {
		return nil, errors.New("the vertex update function must not be nil")
	}
	if messagingFunction == nil {
		return nil, errors.New("the messaging function must not be nil")
	}
	if maxSupersteps <= 0 {
		return nil, errors.New("the maximum number of iterations must be at least one")
	}
	return &VertexCentricIteration[K, V, M, E]{
		updateFunction:    updateFunction,
		messagingFunction: messagingFunction,
		edges:             edges,
		maxSupersteps:     maxSupersteps,
		aggs:              newAggregatorRegistry(),
		bcastMessaging:    make(map[string]any),
		bcastUpdate:       make(map[string]any),
		parallelism:       -1,
	}, nil
}

// RegisterAggregator registers an aggregator under a name. Aggregates
// combined in superstep i are readable in superstep i+1 through
// PreviousAggregate on either function's context.
func (it *VertexCentricIteration[K, V, M, E]) RegisterAggregator(name string, aggregator Aggregator) error {
	return it.aggs.register(name, aggregator)
}

// AddBroadcastSetForMessagingFunction makes a data set available to the
// messaging function under the given name.
func (it *VertexCentricIteration[K, V, M, E]) AddBroadcastSetForMessagingFunction(name string, data any) error {
	if name == HashKeysBroadcastSet {
		return ErrReservedBroadcast
	}
	it.bcastMessaging[name] = data
	return nil
}

// AddBroadcastSetForUpdateFunction makes a data set available to the vertex
// update function under the given name.
func (it *VertexCentricIteration[K, V, M, E]) AddBroadcastSetForUpdateFunction(name string, data any) error {
	if name == HashKeysBroadcastSet {
		return ErrReservedBroadcast
	}
	it.bcastUpdate[name] = data
	return nil
}

// SetName sets the name shown in logs.
func (it *VertexCentricIteration[K, V, M, E]) SetName(name string) {
	it.name = name
}

func (it *VertexCentricIteration[K, V, M, E]) Name() string {
	return it.name
}

// SetParallelism sets the number of partitions, or -1 for the default
// (GOMAXPROCS).
func (it *VertexCentricIteration[K, V, M, E]) SetParallelism(parallelism int) error {
	if parallelism <= 0 && parallelism != -1 {
		return ErrInvalidParallelism
	}
	it.parallelism = parallelism
	return nil
}

func (it *VertexCentricIteration[K, V, M, E]) Parallelism() int {
	return it.parallelism
}

// SetSolutionSetUnmanagedMemory switches the solution set from the default
// compact sorted store to a plain object map.
func (it *VertexCentricIteration[K, V, M, E]) SetSolutionSetUnmanagedMemory(unmanaged bool) {
	it.unmanagedSolutionSet = unmanaged
}

func (it *VertexCentricIteration[K, V, M, E]) IsSolutionSetUnmanagedMemory() bool {
	return it.unmanagedSolutionSet
}

// SetInput provides the initial vertices: the solution set and the first
// work set.
func (it *VertexCentricIteration[K, V, M, E]) SetInput(vertices []graph.Vertex[K, V]) {
	it.initialVertices = vertices
	it.hasInput = true
}

// Stats reports counters of the completed run.
func (it *VertexCentricIteration[K, V, M, E]) Stats() RunStats {
	return it.stats
}
