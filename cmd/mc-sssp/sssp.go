package main

import (
	"math"

	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/iterate"
)

// Single-source shortest path over weighted edges. Distances start at +Inf
// except the source; each superstep relaxes along outgoing edges.

type SSSPUpdate struct{}

func (*SSSPUpdate) UpdateVertex(u *iterate.Updater[uint32, float64], _ uint32, value float64, messages *iterate.MessageIterator[float64]) error {
	best := value
	for m, ok := messages.Next(); ok; m, ok = messages.Next() {
		if m < best {
			best = m
		}
	}
	if best < value {
		u.SetNewVertexValue(best)
	}
	return nil
}

type SSSPMessaging struct{}

func (*SSSPMessaging) SendMessages(ms *iterate.Messenger[uint32, float64, float64, float64], _ uint32, value float64) error {
	if math.IsInf(value, 1) {
		return nil
	}
	edges := ms.OutgoingEdges()
	for e, ok := edges.Next(); ok; e, ok = edges.Next() {
		ms.SendMessageTo(e.Target, value+e.Property)
	}
	return nil
}

func iterateSSSP(edges []graph.Edge[uint32, float64], maxSupersteps int, parallelism int) (*iterate.VertexCentricIteration[uint32, float64, float64, float64], error) {
	vci, err := iterate.WithValuedEdges[uint32, float64, float64, float64](edges, &SSSPUpdate{}, &SSSPMessaging{}, maxSupersteps)
	if err != nil {
		return nil, err
	}
	vci.SetName("mc-sssp")
	if err := vci.SetParallelism(parallelism); err != nil {
		return nil, err
	}
	return vci, nil
}

// InitialDistances builds the starting vertex set for a source.
func InitialDistances(ids []uint32, source uint32) []graph.Vertex[uint32, float64] {
	vertices := make([]graph.Vertex[uint32, float64], 0, len(ids))
	for _, id := range ids {
		dist := math.Inf(1)
		if id == source {
			dist = 0
		}
		vertices = append(vertices, graph.Vertex[uint32, float64]{Id: id, Value: dist})
	}
	return vertices
}
