package hashtable

import "github.com/niceyeti/biasedmap/internal/biasedmap"

// chainNode is one link in a bucket's overflow chain.
type chainNode[K comparable, V any] struct {
	entry biasedmap.Entry[K, V]
	next  *chainNode[K, V]
}

// Chained is a chained, self-adjusting hash table: weight is not used for
// placement or ordering -- every insert lands at the head of its bucket's
// chain, and every successful lookup moves its node to the head
// (move-to-front), so a bucket's most recently accessed key is also its
// cheapest to find next time.
type Chained[K comparable, V any] struct {
	buckets []*chainNode[K, V]
	hash    HashFunc[K]
	count   int
}

// NewChained constructs an empty table with the given bucket count.
// Returns biasedmap.ErrInvalidParameter if numBuckets <= 0.
func NewChained[K comparable, V any](numBuckets int, hash HashFunc[K]) (*Chained[K, V], error) {
	if numBuckets <= 0 {
		return nil, biasedmap.ErrInvalidParameter
	}
	return &Chained[K, V]{
		buckets: make([]*chainNode[K, V], numBuckets),
		hash:    hash,
	}, nil
}

var _ biasedmap.Engine[int, int] = (*Chained[int, int])(nil)

// Insert stores (key, value). weight is accepted to satisfy
// biasedmap.Engine but is not read: this engine has no notion of weight.
// Re-inserting an existing key is a silent no-op.
func (c *Chained[K, V]) Insert(key K, value V, weight uint64) error {
	idx := int(c.hash(key) % uint64(len(c.buckets)))
	for n := c.buckets[idx]; n != nil; n = n.next {
		if n.entry.Key == key {
			return nil
		}
	}

	c.buckets[idx] = &chainNode[K, V]{
		entry: biasedmap.Entry[K, V]{Key: key, Value: value},
		next:  c.buckets[idx],
	}
	c.count++
	return nil
}

// Lookup returns the value for key and whether it was found. A hit moves
// the node to the front of its bucket's chain.
func (c *Chained[K, V]) Lookup(key K) (V, bool) {
	idx := int(c.hash(key) % uint64(len(c.buckets)))

	var prev *chainNode[K, V]
	for n := c.buckets[idx]; n != nil; prev, n = n, n.next {
		if n.entry.Key != key {
			continue
		}
		if prev != nil {
			prev.next = n.next
			n.next = c.buckets[idx]
			c.buckets[idx] = n
		}
		return n.entry.Value, true
	}

	var zero V
	return zero, false
}

// Erase removes key if present.
func (c *Chained[K, V]) Erase(key K) bool {
	idx := int(c.hash(key) % uint64(len(c.buckets)))

	var prev *chainNode[K, V]
	for n := c.buckets[idx]; n != nil; prev, n = n, n.next {
		if n.entry.Key != key {
			continue
		}
		if prev == nil {
			c.buckets[idx] = n.next
		} else {
			prev.next = n.next
		}
		c.count--
		return true
	}
	return false
}

// Len reports the number of live entries.
func (c *Chained[K, V]) Len() int {
	return c.count
}

// BucketHead returns the key currently at the head of bucket idx's chain,
// and whether the bucket is non-empty. Exposed for tests that assert on
// move-to-front promotion.
func (c *Chained[K, V]) BucketHead(idx int) (K, bool) {
	if n := c.buckets[idx]; n != nil {
		return n.entry.Key, true
	}
	var zero K
	return zero, false
}

// BucketIndex exposes the bucket an arbitrary key hashes to, so tests can
// force collisions deterministically without depending on hash internals.
func (c *Chained[K, V]) BucketIndex(key K) int {
	return int(c.hash(key) % uint64(len(c.buckets)))
}
