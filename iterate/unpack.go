package iterate

import (
	"github.com/murmurgraph/murmur/graph"
)

// unpackWithRecipients expands explicit-list envelopes: one (recipient,
// payload) pair per listed key. Stateless, order-independent.
func unpackWithRecipients[K graph.Key, M any](envelopes []Envelope[K, M], emit func(K, M)) {
	for i := range envelopes {
		for _, target := range envelopes[i].SomeRecipients {
			emit(target, envelopes[i].Payload)
		}
	}
}

// broadcastUnpacker is the partition-local half of the multicast
// optimization. On the first superstep it materializes this partition's
// out-neighbour map {source -> targets hashed here} from the channel-edge
// stream; the map lives for the whole iteration. Every broadcast envelope is
// then expanded to (target, payload) for each local out-neighbour of its
// sender.
type broadcastUnpacker[K graph.Key, M any] struct {
	outNeighboursInThisPart map[K][]K
}

func (u *broadcastUnpacker[K, M]) unpack(superstep int, edgesInPart []graph.ChannelEdge[K], envelopes []Envelope[K, M], emit func(K, M)) {
	if superstep == 1 {
		u.outNeighboursInThisPart = make(map[K][]K)
		for i := range edgesInPart {
			e := &edgesInPart[i]
			u.outNeighboursInThisPart[e.Source] = append(u.outNeighboursInThisPart[e.Source], e.Target)
		}
	}
	for i := range envelopes {
		for _, target := range u.outNeighboursInThisPart[envelopes[i].Sender] {
			emit(target, envelopes[i].Payload)
		}
	}
}
