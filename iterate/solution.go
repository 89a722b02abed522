package iterate

import (
	"sort"

	"github.com/murmurgraph/murmur/graph"
)

// solutionStore is one partition's slice of the solution set: exactly one
// entry per vertex id owned by the partition.
type solutionStore[K graph.Key, V any] interface {
	get(key K) (V, bool)
	put(key K, value V)
	size() int
	forEach(fn func(K, V))
}

// compactStore keeps vertices in a sorted slice with binary-search lookups.
// This is the default ("managed") mode: dense, no per-entry map overhead,
// the closest in-process stand-in for a serialized solution set.
type compactStore[K graph.Key, V any] struct {
	vertices []graph.Vertex[K, V]
}

func newCompactStore[K graph.Key, V any](vertices []graph.Vertex[K, V]) *compactStore[K, V] {
	s := &compactStore[K, V]{vertices: vertices}
	sort.Slice(s.vertices, func(i, j int) bool { return s.vertices[i].Id < s.vertices[j].Id })
	return s
}

func (s *compactStore[K, V]) find(key K) int {
	return sort.Search(len(s.vertices), func(i int) bool { return s.vertices[i].Id >= key })
}

func (s *compactStore[K, V]) get(key K) (value V, ok bool) {
	i := s.find(key)
	if i < len(s.vertices) && s.vertices[i].Id == key {
		return s.vertices[i].Value, true
	}
	return value, false
}

func (s *compactStore[K, V]) put(key K, value V) {
	i := s.find(key)
	if i < len(s.vertices) && s.vertices[i].Id == key {
		s.vertices[i].Value = value
		return
	}
	s.vertices = append(s.vertices, graph.Vertex[K, V]{})
	copy(s.vertices[i+1:], s.vertices[i:])
	s.vertices[i] = graph.Vertex[K, V]{Id: key, Value: value}
}

func (s *compactStore[K, V]) size() int {
	return len(s.vertices)
}

func (s *compactStore[K, V]) forEach(fn func(K, V)) {
	for i := range s.vertices {
		fn(s.vertices[i].Id, s.vertices[i].Value)
	}
}

// mapStore is the unmanaged mode: a plain object map.
type mapStore[K graph.Key, V any] struct {
	m map[K]V
}

func newMapStore[K graph.Key, V any](vertices []graph.Vertex[K, V]) *mapStore[K, V] {
	s := &mapStore[K, V]{m: make(map[K]V, len(vertices))}
	for i := range vertices {
		s.m[vertices[i].Id] = vertices[i].Value
	}
	return s
}

func (s *mapStore[K, V]) get(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *mapStore[K, V]) put(key K, value V) {
	s.m[key] = value
}

func (s *mapStore[K, V]) size() int {
	return len(s.m)
}

func (s *mapStore[K, V]) forEach(fn func(K, V)) {
	for k, v := range s.m {
		fn(k, v)
	}
}
