// Package biasedmap defines the contract shared by every biased engine in
// this module (treap, skip list, hash table, splay tree, and the
// supplemented AVL/LRU reference engines): the Entry triple, the
// Engine/Reweightable interfaces, the sentinel errors, and the rotation
// primitive shared by the treap and the splay tree.
package biasedmap

// Entry is the unit of storage: a key, its associated value, and its
// weight. A weight of zero is normalized to one at construction time --
// engines that have no notion of weight (splay tree, chained hash table,
// LRU cache) simply never read the field.
type Entry[K any, V any] struct {
	Key    K
	Value  V
	Weight uint64
}

// NewEntry builds an Entry, normalizing a zero weight to one per the data
// model's "a weight of zero is treated as one" rule.
func NewEntry[K any, V any](key K, value V, weight uint64) Entry[K, V] {
	if weight == 0 {
		weight = 1
	}
	return Entry[K, V]{Key: key, Value: value, Weight: weight}
}

// Less is a strict-less-than comparator over keys of type K. Every ordered
// engine (treap, skip list, splay tree, AVL tree) takes one of these at
// construction instead of requiring K to satisfy a built-in ordering
// constraint, so keys can be any caller-chosen type, not just int.
type Less[K any] func(a, b K) bool

// Engine is the map contract shared by every engine in this module:
// insert, lookup, erase, and a live-entry count.
type Engine[K any, V any] interface {
	// Insert stores (key, value, weight). Re-inserting an existing key is a
	// silent no-op: the existing (value, weight) is retained.
	Insert(key K, value V, weight uint64) error
	// Lookup returns the value stored for key, and whether it was found.
	Lookup(key K) (V, bool)
	// Erase removes key if present, and reports whether it was found.
	Erase(key K) bool
	// Len reports the number of live entries.
	Len() int
}

// Reweightable is implemented by the two engines (treap, skip list) whose
// weight can be changed in place without a remove/re-insert.
type Reweightable[K any] interface {
	// Reweight assigns a new weight to an existing key, re-deriving
	// whatever internal shape parameter the weight controls (treap
	// priority, skip list height). Returns false if key is absent.
	Reweight(key K, weight uint64) bool
}
