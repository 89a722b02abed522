package iterate

import (
	"sort"
	"testing"

	"github.com/murmurgraph/murmur/graph"
)

type pair struct {
	key     uint32
	payload string
}

func collectPairs(dst *[]pair) func(uint32, string) {
	return func(k uint32, m string) { *dst = append(*dst, pair{k, m}) }
}

func sortPairs(ps []pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].key != ps[j].key {
			return ps[i].key < ps[j].key
		}
		return ps[i].payload < ps[j].payload
	})
}

func TestUnpackWithRecipients(t *testing.T) {
	envs := []Envelope[uint32, string]{
		{Payload: "x", Sender: 0, SomeRecipients: []uint32{3, 7}},
		{Payload: "y", Sender: 1, SomeRecipients: []uint32{9}},
	}
	var got []pair
	unpackWithRecipients(envs, collectPairs(&got))

	want := []pair{{3, "x"}, {7, "x"}, {9, "y"}}
	sortPairs(got)
	if len(got) != len(want) {
		t.Fatal("unpacked", len(got), "pairs, expected", len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Error("pair", i, "is", got[i], "expected", want[i])
		}
	}
}

func TestBroadcastUnpackerExpandsLocalNeighbours(t *testing.T) {
	edgesInPart := []graph.ChannelEdge[uint32]{
		{Source: 0, Target: 2, Channel: 0, Repr: 2},
		{Source: 0, Target: 4, Channel: 0, Repr: 2},
		{Source: 1, Target: 6, Channel: 0, Repr: 2},
	}
	envs := []Envelope[uint32, string]{{Payload: "m", Sender: 0, Repr: 2}}

	var u broadcastUnpacker[uint32, string]
	var got []pair
	u.unpack(1, edgesInPart, envs, collectPairs(&got))

	sortPairs(got)
	if len(got) != 2 || got[0] != (pair{2, "m"}) || got[1] != (pair{4, "m"}) {
		t.Error("broadcast expansion wrong:", got)
	}
}

// The adjacency map is built on superstep 1 and reused; later supersteps
// ignore the edge stream entirely.
func TestBroadcastUnpackerBuildsAdjacencyOnce(t *testing.T) {
	edgesInPart := []graph.ChannelEdge[uint32]{
		{Source: 5, Target: 1, Channel: 0, Repr: 1},
		{Source: 5, Target: 3, Channel: 0, Repr: 1},
	}
	var u broadcastUnpacker[uint32, string]
	var got []pair
	u.unpack(1, edgesInPart, nil, collectPairs(&got))
	if len(got) != 0 {
		t.Fatal("no envelopes, but pairs emitted:", got)
	}

	// Superstep 2: hand in no edges; the retained map must still expand.
	u.unpack(2, nil, []Envelope[uint32, string]{{Payload: "z", Sender: 5, Repr: 1}}, collectPairs(&got))
	sortPairs(got)
	if len(got) != 2 || got[0] != (pair{1, "z"}) || got[1] != (pair{3, "z"}) {
		t.Error("retained adjacency not used:", got)
	}
}

func TestBroadcastUnpackerSelfLoop(t *testing.T) {
	edgesInPart := []graph.ChannelEdge[uint32]{
		{Source: 4, Target: 4, Channel: 0, Repr: 4},
	}
	var u broadcastUnpacker[uint32, string]
	var got []pair
	u.unpack(1, edgesInPart, []Envelope[uint32, string]{{Payload: "self", Sender: 4, Repr: 4}}, collectPairs(&got))

	if len(got) != 1 || got[0] != (pair{4, "self"}) {
		t.Error("self-loop delivery wrong:", got)
	}
}
