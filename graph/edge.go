package graph

// Edge: directed edge with a user-defined property; can be None.
// Property is first to avoid alignment issues with empty struct{}.
type Edge[K Key, E any] struct {
	Property E
	Source   K
	Target   K
}

// None is the edge property of a plain (unvalued) edge set.
type None = struct{}

// Plain builds an unvalued edge.
func Plain[K Key](source K, target K) Edge[K, None] {
	return Edge[K, None]{Source: source, Target: target}
}

// OutgoingEdge is the view of one outgoing edge handed to the messaging
// function: the destination, plus the edge value if the edge set carries one.
type OutgoingEdge[K Key, E any] struct {
	Property E
	Target   K
}

// ChannelEdge is an edge tagged with the partition of its target, and that
// partition's representative vertex. This is the co-group side the broadcast
// unpacker reads its partition-local adjacency from.
type ChannelEdge[K Key] struct {
	Source  K
	Target  K
	Channel int
	Repr    K
}
