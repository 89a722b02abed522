package iterate

import (
	"github.com/murmurgraph/murmur/graph"
)

// Envelope is the one datum shipped between supersteps: a payload plus the
// header the messaging host packed. One envelope stands for every logical
// message with the same payload from Sender into the destination partition.
//
// SomeRecipients doubles as the discriminator: empty means
// broadcast-to-partition (the receiver reconstructs recipients from its
// local out-neighbour index), non-empty means the recipients are exactly the
// listed keys. All listed keys belong to ChannelID's partition.
type Envelope[K graph.Key, M any] struct {
	Payload        M
	Sender         K
	SomeRecipients []K
	ChannelID      int
	Repr           K // representative of the destination partition; set on broadcasts only
}

// Broadcast reports whether the receiver must expand recipients locally.
func (e *Envelope[K, M]) Broadcast() bool {
	return len(e.SomeRecipients) == 0
}
