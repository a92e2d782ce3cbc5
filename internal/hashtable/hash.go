// Package hashtable implements two biased hash table variants: an
// open-addressed, weight-ordered table and a chained, self-adjusting
// (move-to-front) table. Both take a caller-supplied hash function as an
// external collaborator, out of scope for the core engines themselves.
package hashtable

import "hash/fnv"

// HashFunc maps a key to an unsigned integer. It must be total and
// deterministic. Represented as a first-class function value rather than
// a capability object, since Go closures already carry any state such a
// capability would need.
type HashFunc[K any] func(key K) uint64

// FNV64 hashes a byte slice with the stdlib's 64-bit FNV-1a, the default
// hash function for callers that don't need a different distribution.
func FNV64(b []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}

// StringHash adapts FNV64 for string keys.
func StringHash(s string) uint64 {
	return FNV64([]byte(s))
}

// IntHash adapts FNV64 for int keys by hashing their decimal-free byte
// representation.
func IntHash(i int) uint64 {
	b := make([]byte, 8)
	u := uint64(i)
	for idx := 0; idx < 8; idx++ {
		b[idx] = byte(u >> (8 * idx))
	}
	return FNV64(b)
}
