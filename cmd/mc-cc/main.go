package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/murmurgraph/murmur/cmd/common"
	"github.com/murmurgraph/murmur/enforce"
	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/utils"
)

func main() {
	graphPtr := flag.String("g", "", "Graph file (src dst per line).")
	undirectedPtr := flag.Bool("u", true, "Treat the input as undirected (add transpose edges).")
	maxPtr := flag.Int("max", 100, "Maximum number of supersteps.")
	threadPtr := flag.Int("t", -1, "Parallelism; -1 for default.")
	debugPtr := flag.Int("debug", 0, "Log level; 0 info, 1 debug.")
	flag.Parse()

	utils.SetLevel(*debugPtr)
	if *graphPtr == "" {
		flag.Usage()
		log.Panic().Msg("No graph file given.")
	}

	edges := common.LoadPlainEdges(*graphPtr)
	if *undirectedPtr {
		for _, e := range edges[:len(edges):len(edges)] {
			edges = append(edges, graph.Plain(e.Target, e.Source))
		}
	}

	vci, err := iterateCC(edges, *maxPtr, *threadPtr)
	enforce.ENFORCE(err)
	vci.SetInput(InitialLabels(common.VertexIds(edges)))

	result, err := vci.CreateResult()
	enforce.ENFORCE(err)

	components := make(map[uint32]int)
	for _, v := range result {
		components[v.Value]++
	}
	log.Info().Msg("Components: " + utils.V(len(components)))
	for _, v := range result {
		log.Debug().Msg(utils.V(v.Id) + " label " + utils.V(v.Value))
	}
}
