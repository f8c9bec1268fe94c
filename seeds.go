package optics

import "container/heap"

// seedQueue is the expansion frontier: an indexed binary min-heap of
// unprocessed points keyed by (current reachability ascending, point id
// ascending). The id tie-break makes the order a strict total order even
// when reachability distances are equal or both undefined, so two distinct
// points never collapse onto one key.
//
// Reachability distances change while a point sits in the queue; the
// decrease-key is done by the caller as remove-then-push. The position map
// makes the removal O(log n) instead of a linear scan.
type seedQueue struct {
	points []*Point
	pos    map[int64]int // point id -> heap index
}

func newSeedQueue() *seedQueue {
	return &seedQueue{pos: make(map[int64]int)}
}

// push inserts p. Panics if p is already queued: a frontier holds each
// point at most once, and a double insert means a missed remove.
func (s *seedQueue) push(p *Point) {
	if _, ok := s.pos[p.id]; ok {
		panic("optics: point already in seed queue")
	}
	heap.Push(s, p)
}

// popMin removes and returns the point with the smallest key.
// Panics on an empty queue.
func (s *seedQueue) popMin() *Point {
	return heap.Pop(s).(*Point)
}

// remove deletes p from the queue if present.
func (s *seedQueue) remove(p *Point) {
	if i, ok := s.pos[p.id]; ok {
		heap.Remove(s, i)
	}
}

// contains reports whether p is queued.
func (s *seedQueue) contains(p *Point) bool {
	_, ok := s.pos[p.id]
	return ok
}

// heap.Interface. Callers use push/popMin/remove, not these.

func (s *seedQueue) Len() int { return len(s.points) }

func (s *seedQueue) Less(i, j int) bool {
	a, b := s.points[i], s.points[j]
	if a.reachability.Less(b.reachability) {
		return true
	}
	if b.reachability.Less(a.reachability) {
		return false
	}
	return a.id < b.id
}

func (s *seedQueue) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.pos[s.points[i].id] = i
	s.pos[s.points[j].id] = j
}

func (s *seedQueue) Push(x any) {
	p := x.(*Point)
	s.pos[p.id] = len(s.points)
	s.points = append(s.points, p)
}

func (s *seedQueue) Pop() any {
	old := s.points
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	s.points = old[:n-1]
	delete(s.pos, p.id)
	return p
}
