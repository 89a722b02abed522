package common

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/murmurgraph/murmur/enforce"
	"github.com/murmurgraph/murmur/graph"
	"github.com/murmurgraph/murmur/utils"
)

// LoadPlainEdges reads a whitespace-separated edge list: one "src dst" pair
// per line, '#' comments allowed.
func LoadPlainEdges(path string) (edges []graph.Edge[uint32, graph.None]) {
	forEachEdgeLine(path, func(src, dst uint32, _ []string) {
		edges = append(edges, graph.Plain(src, dst))
	})
	log.Info().Msg("Loaded " + utils.V(len(edges)) + " edges from " + path)
	return edges
}

// LoadWeightedEdges reads "src dst weight" lines; a missing weight defaults
// to 1.
func LoadWeightedEdges(path string) (edges []graph.Edge[uint32, float64]) {
	forEachEdgeLine(path, func(src, dst uint32, rest []string) {
		weight := 1.0
		if len(rest) > 0 {
			w, err := strconv.ParseFloat(rest[0], 64)
			enforce.ENFORCE(err, path)
			weight = w
		}
		edges = append(edges, graph.Edge[uint32, float64]{Source: src, Target: dst, Property: weight})
	})
	log.Info().Msg("Loaded " + utils.V(len(edges)) + " weighted edges from " + path)
	return edges
}

// VertexIds collects the distinct vertex ids touched by the edge set.
func VertexIds[E any](edges []graph.Edge[uint32, E]) []uint32 {
	set := make(map[uint32]struct{}, len(edges))
	for i := range edges {
		set[edges[i].Source] = struct{}{}
		set[edges[i].Target] = struct{}{}
	}
	ids := make([]uint32, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func forEachEdgeLine(path string, apply func(src, dst uint32, rest []string)) {
	file, err := os.Open(path)
	enforce.ENFORCE(err, path)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			log.Panic().Msg("Bad edge line: " + line)
		}
		src, err := strconv.ParseUint(fields[0], 10, 32)
		enforce.ENFORCE(err, line)
		dst, err := strconv.ParseUint(fields[1], 10, 32)
		enforce.ENFORCE(err, line)
		apply(uint32(src), uint32(dst), fields[2:])
	}
	enforce.ENFORCE(scanner.Err(), path)
}
