package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/murmurgraph/murmur/cmd/common"
	"github.com/murmurgraph/murmur/enforce"
	"github.com/murmurgraph/murmur/utils"
)

func main() {
	graphPtr := flag.String("g", "", "Graph file (src dst weight per line).")
	srcPtr := flag.Uint("src", 0, "Source vertex id.")
	maxPtr := flag.Int("max", 100, "Maximum number of supersteps.")
	threadPtr := flag.Int("t", -1, "Parallelism; -1 for default.")
	debugPtr := flag.Int("debug", 0, "Log level; 0 info, 1 debug.")
	flag.Parse()

	utils.SetLevel(*debugPtr)
	if *graphPtr == "" {
		flag.Usage()
		log.Panic().Msg("No graph file given.")
	}

	edges := common.LoadWeightedEdges(*graphPtr)
	vertices := InitialDistances(common.VertexIds(edges), uint32(*srcPtr))

	vci, err := iterateSSSP(edges, *maxPtr, *threadPtr)
	enforce.ENFORCE(err)
	vci.SetInput(vertices)

	result, err := vci.CreateResult()
	enforce.ENFORCE(err)

	for _, v := range result {
		log.Info().Msg(utils.V(v.Id) + " dist " + utils.F("%.3f", v.Value))
	}
}
