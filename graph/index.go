package graph

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"

	"github.com/murmurgraph/murmur/utils"
)

// EdgeIndex holds the auxiliary tables built once over the edge set:
//
//   - edges grouped by the channel (partition) of their target, tagged with
//     that channel and its representative vertex;
//   - the representative table, mapping each channel to the minimum target
//     key hashed to it;
//   - outgoing edges grouped by source, placed on the source's partition, for
//     the messaging phase. Edge values survive only on this side; the
//     channel-grouped side projects them away.
//
// Representatives exist only for channels that appear as an edge target: a
// partition with no in-edges can never receive a broadcast envelope, so its
// representative is intentionally undefined.
type EdgeIndex[K Key, E any] struct {
	part      Partitioner[K]
	reps      map[int]K
	byChannel [][]ChannelEdge[K]
	bySource  []map[K][]OutgoingEdge[K, E]
}

// BuildEdgeIndex partitions the edge set both ways and derives the
// representative table. For every edge (s, t), t belongs to exactly one
// channel p, and reps[p] <= t under the key order.
func BuildEdgeIndex[K Key, E any](edges []Edge[K, E], part Partitioner[K]) *EdgeIndex[K, E] {
	p := part.NumPartitions()
	ix := &EdgeIndex[K, E]{
		part:      part,
		reps:      make(map[int]K, p),
		byChannel: make([][]ChannelEdge[K], p),
		bySource:  make([]map[K][]OutgoingEdge[K, E], p),
	}
	for t := 0; t < p; t++ {
		ix.bySource[t] = make(map[K][]OutgoingEdge[K, E])
	}

	for i := range edges {
		e := &edges[i]
		ch := part.ChannelOf(e.Target)
		if rep, ok := ix.reps[ch]; !ok || e.Target < rep {
			ix.reps[ch] = e.Target
		}
		ix.byChannel[ch] = append(ix.byChannel[ch], ChannelEdge[K]{Source: e.Source, Target: e.Target, Channel: ch})

		sch := part.ChannelOf(e.Source)
		ix.bySource[sch][e.Source] = append(ix.bySource[sch][e.Source], OutgoingEdge[K, E]{Property: e.Property, Target: e.Target})
	}

	// Second pass to stamp representatives, now that minima are known.
	for ch := range ix.byChannel {
		rep := ix.reps[ch]
		for i := range ix.byChannel[ch] {
			ix.byChannel[ch][i].Repr = rep
		}
	}
	return ix
}

// Representative of a channel; ok is false for channels with no in-edges.
func (ix *EdgeIndex[K, E]) Representative(channel int) (rep K, ok bool) {
	rep, ok = ix.reps[channel]
	return rep, ok
}

// Representatives returns the channel -> representative table, at most one
// row per partition. Small: broadcast to everything that routes envelopes.
func (ix *EdgeIndex[K, E]) Representatives() map[int]K {
	return ix.reps
}

// RepresentativePairs is the broadcast-set form of the representative table.
func (ix *EdgeIndex[K, E]) RepresentativePairs() []utils.Pair[int, K] {
	out := make([]utils.Pair[int, K], 0, len(ix.reps))
	for ch, rep := range ix.reps {
		out = append(out, utils.Pair[int, K]{First: ch, Second: rep})
	}
	return out
}

// ChannelEdges returns the edges whose target lives on the given channel.
func (ix *EdgeIndex[K, E]) ChannelEdges(channel int) []ChannelEdge[K] {
	return ix.byChannel[channel]
}

// OutgoingEdges returns the outgoing edges of a source vertex. Only valid on
// the partition that owns the source.
func (ix *EdgeIndex[K, E]) OutgoingEdges(source K) []OutgoingEdge[K, E] {
	return ix.bySource[ix.part.ChannelOf(source)][source]
}

func (ix *EdgeIndex[K, E]) Partitioner() Partitioner[K] {
	return ix.part
}

// LogStats prints per-partition edge balance.
func (ix *EdgeIndex[K, E]) LogStats() {
	counts := make([]float64, len(ix.byChannel))
	total := 0
	for ch := range ix.byChannel {
		counts[ch] = float64(len(ix.byChannel[ch]))
		total += len(ix.byChannel[ch])
	}
	log.Debug().Msg("EdgeIndex: edges " + utils.V(total) +
		" partitions " + utils.V(len(ix.byChannel)) +
		" meanPerPart " + utils.F("%.1f", stat.Mean(counts, nil)) +
		" reps " + utils.V(len(ix.reps)))
}
