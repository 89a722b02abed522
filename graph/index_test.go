package graph

import (
	"testing"
)

func testEdges() []Edge[uint32, None] {
	return []Edge[uint32, None]{
		Plain[uint32](1, 4), Plain[uint32](7, 0), Plain[uint32](2, 1),
		Plain[uint32](3, 0), Plain[uint32](4, 2), Plain[uint32](8, 3),
		Plain[uint32](4, 5), Plain[uint32](6, 2), Plain[uint32](7, 3),
		Plain[uint32](8, 9), Plain[uint32](9, 0),
	}
}

// The representative of a channel is the minimum destination key hashed to it.
func TestRepresentativeIsMinTarget(t *testing.T) {
	for p := 1; p <= 8; p++ {
		part := NewPartitioner[uint32](p)
		ix := BuildEdgeIndex(testEdges(), part)

		expect := make(map[int]uint32)
		for _, e := range testEdges() {
			ch := part.ChannelOf(e.Target)
			if rep, ok := expect[ch]; !ok || e.Target < rep {
				expect[ch] = e.Target
			}
		}
		for ch, want := range expect {
			got, ok := ix.Representative(ch)
			if !ok {
				t.Error("p", p, "channel", ch, "has no representative, expected", want)
			} else if got != want {
				t.Error("p", p, "channel", ch, "representative is", got, "expected", want)
			}
		}
		if len(ix.Representatives()) != len(expect) {
			t.Error("p", p, "representative table size", len(ix.Representatives()), "expected", len(expect))
		}
	}
}

// Every channel-tagged edge lands on its target's channel, with the
// representative no larger than the target.
func TestChannelEdgesMatchTargetChannel(t *testing.T) {
	for p := 1; p <= 8; p++ {
		part := NewPartitioner[uint32](p)
		ix := BuildEdgeIndex(testEdges(), part)

		total := 0
		for ch := 0; ch < p; ch++ {
			for _, e := range ix.ChannelEdges(ch) {
				total++
				if part.ChannelOf(e.Target) != ch {
					t.Error("p", p, "edge", e, "grouped on channel", ch)
				}
				if e.Channel != ch {
					t.Error("p", p, "edge", e, "tagged with channel", e.Channel, "in group", ch)
				}
				if e.Repr > e.Target {
					t.Error("p", p, "edge", e, "representative exceeds target")
				}
			}
		}
		if total != len(testEdges()) {
			t.Error("p", p, "channel groups hold", total, "edges, expected", len(testEdges()))
		}
	}
}

// Outgoing edges keep their values; the channel-grouped side does not need them.
func TestOutgoingEdgesKeepValues(t *testing.T) {
	edges := []Edge[uint32, float64]{
		{Source: 1, Target: 2, Property: 0.5},
		{Source: 1, Target: 3, Property: 1.5},
		{Source: 2, Target: 3, Property: 2.5},
	}
	ix := BuildEdgeIndex(edges, NewPartitioner[uint32](4))

	out := ix.OutgoingEdges(1)
	if len(out) != 2 {
		t.Fatal("vertex 1 has", len(out), "outgoing edges, expected 2")
	}
	weights := map[uint32]float64{}
	for _, e := range out {
		weights[e.Target] = e.Property
	}
	if weights[2] != 0.5 || weights[3] != 1.5 {
		t.Error("edge values not preserved:", weights)
	}
	if len(ix.OutgoingEdges(3)) != 0 {
		t.Error("vertex 3 should have no outgoing edges")
	}
}

func TestPartitionerStringKeys(t *testing.T) {
	part := NewPartitioner[string](4)
	for _, key := range []string{"A", "B", "C", "D", ""} {
		ch := part.ChannelOf(key)
		if ch < 0 || ch >= 4 {
			t.Error("channel out of range for", key, ":", ch)
		}
		if ch != part.ChannelOf(key) {
			t.Error("channel not stable for", key)
		}
	}
}
