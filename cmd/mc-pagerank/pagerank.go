package main

import (
	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/iterate"
)

// PageRank with damping. The rank share a vertex sends is the same for
// every out-neighbour, so messaging rides the broadcast path. The total
// vertex count reaches the update function as a broadcast set.

const vertexCountBroadcastSet = "VERTEX_COUNT"

// PRValue carries the rank and the (static) out-degree.
type PRValue struct {
	Rank   float64
	OutDeg int
}

type PRUpdate struct {
	Damping float64
}

func (pr *PRUpdate) UpdateVertex(u *iterate.Updater[uint32, PRValue], _ uint32, value PRValue, messages *iterate.MessageIterator[float64]) error {
	n := u.BroadcastSet(vertexCountBroadcastSet).(int)
	sum := 0.0
	for m, ok := messages.Next(); ok; m, ok = messages.Next() {
		sum += m
	}
	value.Rank = (1.0-pr.Damping)/float64(n) + pr.Damping*sum
	u.SetNewVertexValue(value)
	return nil
}

type PRMessaging struct{}

func (*PRMessaging) SendMessages(ms *iterate.Messenger[uint32, PRValue, float64, graph.None], _ uint32, value PRValue) error {
	if value.OutDeg == 0 {
		return nil
	}
	ms.SendMessageToAllNeighbours(value.Rank / float64(value.OutDeg))
	return nil
}

// InitialRanks assigns every vertex 1/n and its out-degree.
func InitialRanks(ids []uint32, edges []graph.Edge[uint32, graph.None]) []graph.Vertex[uint32, PRValue] {
	degrees := make(map[uint32]int, len(ids))
	for i := range edges {
		degrees[edges[i].Source]++
	}
	vertices := make([]graph.Vertex[uint32, PRValue], 0, len(ids))
	for _, id := range ids {
		vertices = append(vertices, graph.Vertex[uint32, PRValue]{
			Id:    id,
			Value: PRValue{Rank: 1.0 / float64(len(ids)), OutDeg: degrees[id]},
		})
	}
	return vertices
}

func iteratePageRank(edges []graph.Edge[uint32, graph.None], vertexCount int, damping float64, iters int, parallelism int) (*iterate.VertexCentricIteration[uint32, PRValue, float64, graph.None], error) {
	vci, err := iterate.WithPlainEdges[uint32, PRValue, float64](edges, &PRUpdate{Damping: damping}, &PRMessaging{}, iters)
	if err != nil {
		return nil, err
	}
	vci.SetName("mc-pagerank")
	if err := vci.SetParallelism(parallelism); err != nil {
		return nil, err
	}
	if err := vci.AddBroadcastSetForUpdateFunction(vertexCountBroadcastSet, vertexCount); err != nil {
		return nil, err
	}
	return vci, nil
}
