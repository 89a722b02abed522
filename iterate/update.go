package iterate

import (
	"github.com/murmurgraph/murmur/graph"
)

// VertexUpdateFunction consumes a vertex's messages and may replace its
// state. UpdateVertex runs once per vertex that received messages; setting a
// new value puts the vertex into the next superstep's work set. The key is
// fixed: only the value can change. Invocations may run concurrently across
// partitions. Optionally implement Initer / PreSuperstepper /
// PostSuperstepper.
type VertexUpdateFunction[K graph.Key, V any, M any] interface {
	UpdateVertex(u *Updater[K, V], vertexKey K, vertexValue V, messages *MessageIterator[M]) error
}

// Updater collects the (at most one) new state of the vertex under update.
type Updater[K graph.Key, V any] struct {
	*StepContext
	newValue V
	updated  bool
}

// SetNewVertexValue replaces the vertex state. Calling it again within the
// same invocation overwrites; the last call wins.
func (u *Updater[K, V]) SetNewVertexValue(value V) {
	u.newValue = value
	u.updated = true
}

func (u *Updater[K, V]) reset() {
	var zero V
	u.newValue = zero
	u.updated = false
}

// MessageIterator is a single-pass cursor over the messages delivered to one
// vertex in this superstep. No delivery order is guaranteed.
type MessageIterator[M any] struct {
	msgs []M
	pos  int
}

func (it *MessageIterator[M]) Next() (m M, ok bool) {
	if it.pos >= len(it.msgs) {
		return m, false
	}
	m = it.msgs[it.pos]
	it.pos++
	return m, true
}
