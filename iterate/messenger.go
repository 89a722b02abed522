package iterate

import (
	"github.com/murmurgraph/murmur/graph"
)

// MessagingFunction produces the messages of one superstep. SendMessages is
// invoked once per vertex that changed in the previous superstep and must
// emit, through the Messenger, everything that vertex wants delivered in the
// update phase of the current superstep. Invocations may run concurrently across partitions; keep
// per-invocation state on the Messenger, not on the function value.
// Optionally implement Initer / PreSuperstepper / PostSuperstepper.
type MessagingFunction[K graph.Key, V any, M any, E any] interface {
	SendMessages(ms *Messenger[K, V, M, E], vertexKey K, vertexValue V) error
}

// Messenger is the packing side of the multicast optimization. It never
// emits one envelope per recipient: recipients are grouped by the channel
// they hash to, and each (sender, channel) pair ships a single envelope.
// All send methods return the number of envelopes emitted.
type Messenger[K graph.Key, V any, M any, E any] struct {
	*StepContext
	part    graph.Partitioner[K]
	reps    map[int]K
	collect func(Envelope[K, M])

	sender            K
	edges             []graph.OutgoingEdge[K, E]
	edgesUsed         bool
	cursor            EdgeCursor[K, E]
	recipientsInBlock map[int][]K
	channelSeen       map[int]bool
	err               error
}

func newMessenger[K graph.Key, V any, M any, E any](ctx *StepContext, part graph.Partitioner[K], reps map[int]K, collect func(Envelope[K, M])) *Messenger[K, V, M, E] {
	return &Messenger[K, V, M, E]{
		StepContext:       ctx,
		part:              part,
		reps:              reps,
		collect:           collect,
		recipientsInBlock: make(map[int][]K),
		channelSeen:       make(map[int]bool),
	}
}

// bind readies the messenger for one SendMessages invocation.
func (ms *Messenger[K, V, M, E]) bind(sender K, edges []graph.OutgoingEdge[K, E]) {
	ms.sender = sender
	ms.edges = edges
	ms.edgesUsed = false
	ms.err = nil
}

func (ms *Messenger[K, V, M, E]) fail(err error) {
	if ms.err == nil {
		ms.err = err
	}
}

func (ms *Messenger[K, V, M, E]) takeErr() error {
	return ms.err
}

// SendMessageTo sends the message to exactly one vertex. If the target does
// not exist, the update phase of this superstep fails with a
// NonDeliverableError.
func (ms *Messenger[K, V, M, E]) SendMessageTo(target K, m M) int {
	return ms.SendMessageToMultipleRecipients([]K{target}, m)
}

// SendMessageToMultipleRecipients sends one logical message to every key in
// recipients. Recipients are grouped by destination channel; each group
// travels as a single explicit-list envelope whose recipients all share that
// channel.
func (ms *Messenger[K, V, M, E]) SendMessageToMultipleRecipients(recipients []K, m M) int {
	clear(ms.recipientsInBlock)
	for _, target := range recipients {
		channel := ms.part.ChannelOf(target)
		ms.recipientsInBlock[channel] = append(ms.recipientsInBlock[channel], target)
	}
	envelopes := 0
	for channel, targets := range ms.recipientsInBlock {
		ms.collect(Envelope[K, M]{
			Payload:        m,
			Sender:         ms.sender,
			SomeRecipients: targets,
			ChannelID:      channel,
		})
		ms.recipientsInBlock[channel] = nil // the envelope owns the slice now
		envelopes++
	}
	return envelopes
}

// SendMessageToAllNeighbours sends the message to every target of an
// outgoing edge of the current vertex. One broadcast envelope goes to each
// distinct channel the out-neighbours span; the receiving partition expands
// it against its local out-neighbour index. Mutually exclusive with
// OutgoingEdges within one SendMessages invocation.
func (ms *Messenger[K, V, M, E]) SendMessageToAllNeighbours(m M) int {
	if ms.edgesUsed {
		ms.fail(ErrExclusiveEdgeUse)
		return 0
	}
	ms.edgesUsed = true

	clear(ms.channelSeen)
	envelopes := 0
	for i := range ms.edges {
		channel := ms.part.ChannelOf(ms.edges[i].Target)
		if ms.channelSeen[channel] {
			continue
		}
		ms.channelSeen[channel] = true
		// The representative exists: this very edge's target is counted in
		// the table. The envelope carries it in the header and is routed by
		// its ChannelID.
		ms.collect(Envelope[K, M]{
			Payload:   m,
			Sender:    ms.sender,
			ChannelID: channel,
			Repr:      ms.reps[channel],
		})
		envelopes++
	}
	return envelopes
}

// OutgoingEdges returns a one-shot cursor over the current vertex's outgoing
// edges. Mutually exclusive with SendMessageToAllNeighbours within one
// SendMessages invocation, and may be obtained at most once.
func (ms *Messenger[K, V, M, E]) OutgoingEdges() *EdgeCursor[K, E] {
	if ms.edgesUsed {
		ms.fail(ErrExclusiveEdgeUse)
		ms.cursor = EdgeCursor[K, E]{} // exhausted
		return &ms.cursor
	}
	ms.edgesUsed = true
	ms.cursor = EdgeCursor[K, E]{edges: ms.edges}
	return &ms.cursor
}

// EdgeCursor is a single-pass view of a vertex's outgoing edges.
type EdgeCursor[K graph.Key, E any] struct {
	edges []graph.OutgoingEdge[K, E]
	pos   int
}

func (c *EdgeCursor[K, E]) Next() (edge graph.OutgoingEdge[K, E], ok bool) {
	if c.pos >= len(c.edges) {
		return edge, false
	}
	edge = c.edges[c.pos]
	c.pos++
	return edge, true
}
