package iterate

import (
	"errors"
	"fmt"
)

// Configuration and runtime failures. Nothing here is recovered locally; a
// superstep failure fails the whole job and the caller decides what to do.
var (
	ErrNoInput            = errors.New("the input data set (the initial vertices) has not been set")
	ErrExclusiveEdgeUse   = errors.New("can use either OutgoingEdges or SendMessageToAllNeighbours exactly once per SendMessages invocation")
	ErrReservedBroadcast  = errors.New("broadcast set name " + HashKeysBroadcastSet + " is reserved by the iteration")
	ErrInvalidParallelism = errors.New("the degree of parallelism must be positive, or -1 (use default)")
)

// NonDeliverableError reports a message sent to a vertex id that is absent
// from the solution set.
type NonDeliverableError struct {
	Vertex any
}

func (e *NonDeliverableError) Error() string {
	return fmt.Sprintf("target vertex '%v' does not exist", e.Vertex)
}
