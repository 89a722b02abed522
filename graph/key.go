package graph

import (
	"fmt"
	"hash/fnv"

	"golang.org/x/exp/constraints"
)

// Key is the constraint for vertex identifiers: totally ordered, so a
// partition representative (minimum key) is always well defined.
type Key interface {
	constraints.Ordered
}

// Partitioner is the single channel-from-key authority for a run. Every
// placement decision (edge shuffling, envelope routing, recipient grouping)
// must go through the same Partitioner instance: the multicast packing relies
// on the ChannelID it computed for an envelope's recipients being the exact
// partition that holds them.
type Partitioner[K Key] struct {
	numPartitions int
}

func NewPartitioner[K Key](numPartitions int) Partitioner[K] {
	return Partitioner[K]{numPartitions: numPartitions}
}

func (pt Partitioner[K]) NumPartitions() int {
	return pt.numPartitions
}

// ChannelOf maps a key to its destination partition (the channel).
func (pt Partitioner[K]) ChannelOf(key K) int {
	return int(hashKey(key) % uint64(pt.numPartitions))
}

// Integer-ish keys partition by value, strings by fnv64a. The fallback formats
// the key; slow, but only exotic key types hit it.
func hashKey[K Key](key K) uint64 {
	switch k := any(key).(type) {
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	case string:
		h := fnv.New64a()
		h.Write([]byte(k))
		return h.Sum64()
	default:
		h := fnv.New64a()
		fmt.Fprintf(h, "%v", key)
		return h.Sum64()
	}
}
