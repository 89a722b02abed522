package main

import (
	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/iterate"
)

// Connected components by label propagation: every vertex starts labelled
// with its own id and adopts the minimum label it hears about. The label is
// identical for every neighbour, so messaging uses the broadcast path and
// ships one envelope per destination partition.

type CCUpdate struct{}

func (*CCUpdate) UpdateVertex(u *iterate.Updater[uint32, uint32], _ uint32, value uint32, messages *iterate.MessageIterator[uint32]) error {
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

type CCMessaging struct{}

func (*CCMessaging) SendMessages(ms *iterate.Messenger[uint32, uint32, uint32, graph.None], _ uint32, value uint32) error {
	ms.SendMessageToAllNeighbours(value)
	return nil
}

// InitialLabels labels every vertex with its own id.
func InitialLabels(ids []uint32) []graph.Vertex[uint32, uint32] {
	vertices := make([]graph.Vertex[uint32, uint32], 0, len(ids))
	for _, id := range ids {
		vertices = append(vertices, graph.Vertex[uint32, uint32]{Id: id, Value: id})
	}
	return vertices
}

func iterateCC(edges []graph.Edge[uint32, graph.None], maxSupersteps int, parallelism int) (*iterate.VertexCentricIteration[uint32, uint32, uint32, graph.None], error) {
	vci, err := iterate.WithPlainEdges[uint32, uint32, uint32](edges, &CCUpdate{}, &CCMessaging{}, maxSupersteps)
	if err != nil {
		return nil, err
	}
	vci.SetName("mc-cc")
	if err := vci.SetParallelism(parallelism); err != nil {
		return nil, err
	}
	return vci, nil
}
