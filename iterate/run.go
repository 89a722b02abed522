package iterate

import (
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/utils"
)

// RunStats are the counters of one completed run.
type RunStats struct {
	Supersteps int    // supersteps actually performed
	Envelopes  uint64 // packed envelopes shipped across partitions
	Delivered  uint64 // unpacked (recipient, payload) pairs
	Updates    uint64 // vertex update invocations that set a new value
}

// worker is the per-partition state of a run.
type worker[K graph.Key, V any, M any] struct {
	store solutionStore[K, V]
	bu    broadcastUnpacker[K, M]
}

// CreateResult runs the delta iteration to completion and returns the final
// vertex states, sorted by key. The work set starts as all initial vertices;
// each superstep runs the messaging pipeline over the work set, unpacks the
// envelopes, applies the vertex update function, and makes the resulting
// delta the next work set. The run terminates when the delta is empty or
// maxSupersteps is reached. Any error aborts the run; nothing is retried.
func (it *VertexCentricIteration[K, V, M, E]) CreateResult() ([]graph.Vertex[K, V], error) {
	if !it.hasInput {
		return nil, ErrNoInput
	}

	p := it.parallelism
	if p == -1 {
		p = runtime.GOMAXPROCS(0)
	}
	part := graph.NewPartitioner[K](p)
	ix := graph.BuildEdgeIndex(it.edges, part)
	ix.LogStats()

	it.bcastMessaging[HashKeysBroadcastSet] = ix.RepresentativePairs()

	var watch utils.Watch
	watch.Start()

	// Partition the initial vertices; a later duplicate id replaces the
	// earlier one so the solution set holds exactly one entry per id.
	perPart := make([][]graph.Vertex[K, V], p)
	seen := make(map[K]int, len(it.initialVertices))
	for i := range it.initialVertices {
		v := it.initialVertices[i]
		if at, ok := seen[v.Id]; ok {
			perPart[part.ChannelOf(v.Id)][at].Value = v.Value
			continue
		}
		ch := part.ChannelOf(v.Id)
		seen[v.Id] = len(perPart[ch])
		perPart[ch] = append(perPart[ch], v)
	}

	workers := make([]*worker[K, V, M], p)
	workset := make([][]graph.Vertex[K, V], p)
	for t := 0; t < p; t++ {
		workset[t] = append([]graph.Vertex[K, V](nil), perPart[t]...)
		w := &worker[K, V, M]{}
		if it.unmanagedSolutionSet {
			w.store = newMapStore(perPart[t])
		} else {
			w.store = newCompactStore(perPart[t])
		}
		workers[t] = w
	}

	// outbox[sender partition][destination channel]
	outbox := make([][][]Envelope[K, M], p)
	for t := 0; t < p; t++ {
		outbox[t] = make([][]Envelope[K, M], p)
	}

	reps := ix.Representatives()
	envelopeCount := make([]uint64, p)
	deliveredCount := make([]uint64, p)
	updateCount := make([]uint64, p)

	for superstep := 1; superstep <= it.maxSupersteps; superstep++ {
		ctxMsg := &StepContext{superstep: superstep, aggs: it.aggs, bcast: it.bcastMessaging}
		ctxUpd := &StepContext{superstep: superstep, aggs: it.aggs, bcast: it.bcastUpdate}

		if superstep == 1 {
			if ini, ok := it.messagingFunction.(Initer); ok {
				if err := ini.Init(ctxMsg); err != nil {
					return nil, err
				}
			}
			if ini, ok := it.updateFunction.(Initer); ok {
				if err := ini.Init(ctxUpd); err != nil {
					return nil, err
				}
			}
		}

		// Messaging phase: each partition walks its slice of the work set
		// and packs envelopes into the outbox matrix.
		if pre, ok := it.messagingFunction.(PreSuperstepper); ok {
			if err := pre.PreSuperstep(ctxMsg); err != nil {
				return nil, err
			}
		}
		err := parallelFor(p, func(t int) error {
			ms := newMessenger[K, V, M, E](ctxMsg, part, reps, func(env Envelope[K, M]) {
				outbox[t][env.ChannelID] = append(outbox[t][env.ChannelID], env)
				envelopeCount[t]++
			})
			for i := range workset[t] {
				v := &workset[t][i]
				ms.bind(v.Id, ix.OutgoingEdges(v.Id))
				if err := it.messagingFunction.SendMessages(ms, v.Id, v.Value); err != nil {
					return err
				}
				if err := ms.takeErr(); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if post, ok := it.messagingFunction.(PostSuperstepper); ok {
			if err := post.PostSuperstep(ctxMsg); err != nil {
				return nil, err
			}
		}

		// Update phase: each partition drains its inbox column, unpacks both
		// envelope kinds against local state, and co-groups the unioned
		// message stream with its slice of the solution set.
		if pre, ok := it.updateFunction.(PreSuperstepper); ok {
			if err := pre.PreSuperstep(ctxUpd); err != nil {
				return nil, err
			}
		}
		newWorkset := make([][]graph.Vertex[K, V], p)
		err = parallelFor(p, func(q int) error {
			w := workers[q]
			var broadcasts, explicit []Envelope[K, M]
			for t := 0; t < p; t++ {
				for i := range outbox[t][q] {
					env := &outbox[t][q][i]
					if env.Broadcast() {
						broadcasts = append(broadcasts, *env)
					} else {
						explicit = append(explicit, *env)
					}
				}
				outbox[t][q] = outbox[t][q][:0]
			}

			inbox := make(map[K][]M)
			emit := func(target K, m M) {
				inbox[target] = append(inbox[target], m)
				deliveredCount[q]++
			}
			w.bu.unpack(superstep, ix.ChannelEdges(q), broadcasts, emit)
			unpackWithRecipients(explicit, emit)

			upd := &Updater[K, V]{StepContext: ctxUpd}
			msgIter := &MessageIterator[M]{}
			for key, msgs := range inbox {
				value, ok := w.store.get(key)
				if !ok {
					return &NonDeliverableError{Vertex: key}
				}
				upd.reset()
				msgIter.msgs = msgs
				msgIter.pos = 0
				if err := it.updateFunction.UpdateVertex(upd, key, value, msgIter); err != nil {
					return err
				}
				if upd.updated {
					w.store.put(key, upd.newValue)
					newWorkset[q] = append(newWorkset[q], graph.Vertex[K, V]{Id: key, Value: upd.newValue})
					updateCount[q]++
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if post, ok := it.updateFunction.(PostSuperstepper); ok {
			if err := post.PostSuperstep(ctxUpd); err != nil {
				return nil, err
			}
		}

		// The barrier: both phases have joined; combine aggregators so the
		// next superstep can read them.
		it.aggs.combine()
		it.stats.Supersteps = superstep

		delta := 0
		for t := 0; t < p; t++ {
			delta += len(newWorkset[t])
		}
		log.Debug().Msg("Superstep " + utils.V(superstep) + " delta " + utils.V(delta) +
			" envelopes " + utils.V(utils.Sum(envelopeCount)) + " delivered " + utils.V(utils.Sum(deliveredCount)))
		workset = newWorkset
		if delta == 0 {
			break
		}
	}

	it.stats.Envelopes = utils.Sum(envelopeCount)
	it.stats.Delivered = utils.Sum(deliveredCount)
	it.stats.Updates = utils.Sum(updateCount)

	result := make([]graph.Vertex[K, V], 0, len(seen))
	for t := 0; t < p; t++ {
		workers[t].store.forEach(func(key K, value V) {
			result = append(result, graph.Vertex[K, V]{Id: key, Value: value})
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })

	name := it.name
	if name == "" {
		name = "Vertex-centric iteration"
	}
	log.Info().Msg(name + ": supersteps " + utils.V(it.stats.Supersteps) +
		" envelopes " + utils.V(it.stats.Envelopes) +
		" delivered " + utils.V(it.stats.Delivered) +
		" updates " + utils.V(it.stats.Updates) +
		" in " + utils.V(watch.Elapsed().Milliseconds()) + "ms")
	return result, nil
}

// Fan out one goroutine per partition and join them all: the join is the
// superstep's global barrier. Collects the first error; a failed partition
// fails the phase.
func parallelFor(p int, fn func(t int) error) error {
	res := make(chan error, p)
	for t := 0; t < p; t++ {
		go func(t int) {
			res <- fn(t)
		}(t)
	}
	var first error
	for t := 0; t < p; t++ {
		if err := <-res; err != nil && first == nil {
			first = err
		}
	}
	return first
}
