// Package skiplist implements a biased skip list, after Bagchi, Buchsbaum
// & Goodrich (2005): a sorted linked list with max_level auxiliary express
// lanes, where a node's height is sampled from a weight-biased
// distribution so heavier keys occupy more levels in expectation and are
// therefore found in fewer hops.
package skiplist

import (
	"math"

	"github.com/niceyeti/biasedmap/internal/biasedmap"
	"github.com/niceyeti/biasedmap/internal/prng"
)

// node holds a key/value/weight entry plus a forward-pointer slice whose
// length equals the node's height.
type node[K any, V any] struct {
	entry biasedmap.Entry[K, V]
	next  []*node[K, V]
}

func (n *node[K, V]) height() int { return len(n.next) }

// SkipList is a biased skip list over key type K and value type V.
type SkipList[K any, V any] struct {
	head     *node[K, V] // sentinel; head.next has length maxLevel
	less     biasedmap.Less[K]
	rng      prng.Source
	maxLevel int
	level    int // 1-based count of currently active levels
	count    int
}

// New constructs an empty SkipList with the given max_level (recommended
// 15-32) and key ordering. Returns biasedmap.ErrInvalidParameter if
// maxLevel <= 0.
func New[K any, V any](maxLevel int, less biasedmap.Less[K], rng prng.Source) (*SkipList[K, V], error) {
	if maxLevel <= 0 {
		return nil, biasedmap.ErrInvalidParameter
	}
	return &SkipList[K, V]{
		head:     &node[K, V]{next: make([]*node[K, V], maxLevel)},
		less:     less,
		rng:      rng,
		maxLevel: maxLevel,
		level:    1,
	}, nil
}

var _ biasedmap.Engine[int, int] = (*SkipList[int, int])(nil)
var _ biasedmap.Reweightable[int] = (*SkipList[int, int])(nil)

// randomHeight samples floor(log2(max(w,1))) + 1 + G, where G is a
// geometric(1/2) random variable (repeatedly bump the height while a fair
// coin shows heads), capped at maxLevel.
func (s *SkipList[K, V]) randomHeight(weight uint64) int {
	if weight == 0 {
		weight = 1
	}
	height := int(math.Log2(float64(weight))) + 1
	for s.rng.Float64() < 0.5 {
		height++
	}
	if height > s.maxLevel {
		height = s.maxLevel
	}
	if height < 1 {
		height = 1
	}
	return height
}

// search walks down from the current top level, returning, for each
// level, the last node whose key is strictly less than key (or the head
// sentinel). pred[0] is therefore the immediate predecessor of key (or of
// where key would be) at level 0.
func (s *SkipList[K, V]) search(key K) []*node[K, V] {
	pred := make([]*node[K, V], s.maxLevel)
	cur := s.head
	for level := s.level - 1; level >= 0; level-- {
		for cur.next[level] != nil && s.less(cur.next[level].entry.Key, key) {
			cur = cur.next[level]
		}
		pred[level] = cur
	}
	return pred
}

// Insert stores (key, value, weight). Re-inserting an existing key is a
// silent no-op.
func (s *SkipList[K, V]) Insert(key K, value V, weight uint64) error {
	pred := s.search(key)

	if next := pred[0].next[0]; next != nil && !s.less(key, next.entry.Key) && !s.less(next.entry.Key, key) {
		// Duplicate key: silent no-op.
		return nil
	}

	h := s.randomHeight(weight)
	if h > s.level {
		for level := s.level; level < h; level++ {
			pred[level] = s.head
		}
		s.level = h
	}

	n := &node[K, V]{
		entry: biasedmap.NewEntry(key, value, weight),
		next:  make([]*node[K, V], h),
	}

	for level := 0; level < h; level++ {
		n.next[level] = pred[level].next[level]
		pred[level].next[level] = n
	}

	s.count++
	return nil
}

// Lookup returns the value for key and whether it was found.
func (s *SkipList[K, V]) Lookup(key K) (V, bool) {
	cur := s.head
	for level := s.level - 1; level >= 0; level-- {
		for cur.next[level] != nil && s.less(cur.next[level].entry.Key, key) {
			cur = cur.next[level]
		}
		if next := cur.next[level]; next != nil && !s.less(key, next.entry.Key) && !s.less(next.entry.Key, key) {
			return next.entry.Value, true
		}
	}

	var zero V
	return zero, false
}

// Erase removes key if present, unlinking it at every level it
// participates in.
func (s *SkipList[K, V]) Erase(key K) bool {
	pred := s.search(key)

	target := pred[0].next[0]
	if target == nil || s.less(key, target.entry.Key) || s.less(target.entry.Key, key) {
		return false
	}

	for level := 0; level < target.height(); level++ {
		if pred[level].next[level] == target {
			pred[level].next[level] = target.next[level]
		}
	}

	s.shrinkLevel()
	s.count--
	return true
}

// shrinkLevel lowers the recorded top level while the topmost levels carry
// no live nodes.
func (s *SkipList[K, V]) shrinkLevel() {
	for s.level > 1 && s.head.next[s.level-1] == nil {
		s.level--
	}
}

// Reweight locates key and resizes its forward-pointer array to a height
// freshly drawn from weight. Levels above the new height are unlinked
// everywhere they appear, not just at the descent level where they were
// found. Levels below the new height (if it grew) are spliced in via a
// fresh top-down descent. Returns false if key is absent.
func (s *SkipList[K, V]) Reweight(key K, weight uint64) bool {
	pred := s.search(key)
	target := pred[0].next[0]
	if target == nil || s.less(key, target.entry.Key) || s.less(target.entry.Key, key) {
		return false
	}

	oldHeight := target.height()
	newHeight := s.randomHeight(weight)
	target.entry.Weight = weight

	if newHeight < oldHeight {
		// Unlink every surplus level.
		for level := newHeight; level < oldHeight; level++ {
			if pred[level].next[level] == target {
				pred[level].next[level] = target.next[level]
			}
		}
		target.next = target.next[:newHeight]
		s.shrinkLevel()
		return true
	}

	if newHeight > oldHeight {
		if newHeight > s.level {
			for level := s.level; level < newHeight; level++ {
				pred[level] = s.head
			}
			s.level = newHeight
		}

		grown := make([]*node[K, V], newHeight)
		copy(grown, target.next)
		target.next = grown

		for level := oldHeight; level < newHeight; level++ {
			target.next[level] = pred[level].next[level]
			pred[level].next[level] = target
		}
	}

	return true
}

// Len reports the number of live entries.
func (s *SkipList[K, V]) Len() int {
	return s.count
}
