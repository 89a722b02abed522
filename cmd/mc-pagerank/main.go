package main

import (
	"flag"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/murmurgraph/murmur/cmd/common"
	"github.com/murmurgraph/murmur/enforce"
	"github.com/murmurgraph/murmur/utils"
)

func main() {
	graphPtr := flag.String("g", "", "Graph file (src dst per line).")
	dampingPtr := flag.Float64("d", 0.85, "Damping factor.")
	itersPtr := flag.Int("iters", 10, "Number of supersteps to run.")
	threadPtr := flag.Int("t", -1, "Parallelism; -1 for default.")
	debugPtr := flag.Int("debug", 0, "Log level; 0 info, 1 debug.")
	flag.Parse()

	utils.SetLevel(*debugPtr)
	if *graphPtr == "" {
		flag.Usage()
		log.Panic().Msg("No graph file given.")
	}

	edges := common.LoadPlainEdges(*graphPtr)
	ids := common.VertexIds(edges)

	vci, err := iteratePageRank(edges, len(ids), *dampingPtr, *itersPtr, *threadPtr)
	enforce.ENFORCE(err)
	vci.SetInput(InitialRanks(ids, edges))

	result, err := vci.CreateResult()
	enforce.ENFORCE(err)

	ranks := make([]float64, 0, len(result))
	for _, v := range result {
		ranks = append(ranks, v.Value.Rank)
		log.Debug().Msg(utils.V(v.Id) + " rank " + utils.F("%.6f", v.Value.Rank))
	}
	// Mass leaks through dead-ends; the sum tells how much.
	log.Info().Msg("Rank mass: " + utils.F("%.6f", floats.Sum(ranks)) +
		" max " + utils.F("%.6f", floats.Max(ranks)))
}
