package hashtable

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/niceyeti/biasedmap/internal/biasedmap"
)

// Open is an open-addressed, weight-ordered hash table. Within a probe
// cluster, entries are kept ordered by descending weight -- heavier keys
// sit closer to their hash home -- which is the same "displace the poorer
// entry" invariant Robin Hood hashing keeps for probe distance, just keyed
// on weight instead. Erase uses backward-shift deletion rather than
// tombstones: later entries of the cluster whose probe sequence passes
// through the freed slot are moved back into it (see backShiftFrom).
type Open[K comparable, V any] struct {
	slots []biasedmap.Entry[K, V]
	live  *roaring.Bitmap // set of occupied slot indices
	hash  HashFunc[K]
	count int
}

// NewOpen constructs an empty table with the given initial capacity; the
// table doubles in size as it fills. Returns
// biasedmap.ErrInvalidParameter if capacity <= 0.
func NewOpen[K comparable, V any](capacity int, hash HashFunc[K]) (*Open[K, V], error) {
	if capacity <= 0 {
		return nil, biasedmap.ErrInvalidParameter
	}
	return &Open[K, V]{
		slots: make([]biasedmap.Entry[K, V], capacity),
		live:  roaring.New(),
		hash:  hash,
	}, nil
}

var _ biasedmap.Engine[int, int] = (*Open[int, int])(nil)

// Insert stores (key, value, weight). Re-inserting an existing key is a
// silent no-op: the whole probe sequence is scanned to the first empty
// slot before any displacement decision is made, so an existing copy of
// key anywhere in the cluster is always found first, even past a resident
// lighter than the new weight. The displacement point itself is the
// earliest slot whose resident weight is strictly less than the new
// weight (a resident with equal weight is NOT displaced, so equal-weight
// cohorts land in insertion order rather than being reordered).
func (o *Open[K, V]) Insert(key K, value V, weight uint64) error {
	if weight == 0 {
		weight = 1
	}
	size := len(o.slots)
	pos := int(o.hash(key) % uint64(size))

	displace := -1
	for o.live.Contains(uint32(pos)) {
		if o.slots[pos].Key == key {
			return nil
		}
		if displace == -1 && o.slots[pos].Weight < weight {
			displace = pos
		}
		pos = (pos + 1) % size
	}
	if displace == -1 {
		displace = pos
	}

	if o.live.Contains(uint32(displace)) {
		o.shiftClusterForward(displace)
	}
	o.slots[displace] = biasedmap.NewEntry(key, value, weight)
	o.live.Add(uint32(displace))
	o.count++

	if o.count*10 > size*9 {
		o.rehash()
	}
	return nil
}

// shiftClusterForward makes room at pos by moving every entry in the
// contiguously-occupied run starting at pos forward by one slot
// (wrapping).
func (o *Open[K, V]) shiftClusterForward(pos int) {
	size := len(o.slots)
	empty := pos
	for o.live.Contains(uint32(empty)) {
		empty = (empty + 1) % size
	}
	for i := empty; i != pos; {
		prev := (i - 1 + size) % size
		o.slots[i] = o.slots[prev]
		o.live.Add(uint32(i))
		i = prev
	}
}

// Lookup returns the value for key and whether it was found, probing
// forward from the hash home until a match or the first empty slot.
func (o *Open[K, V]) Lookup(key K) (V, bool) {
	size := len(o.slots)
	pos := int(o.hash(key) % uint64(size))
	for o.live.Contains(uint32(pos)) {
		if o.slots[pos].Key == key {
			return o.slots[pos].Value, true
		}
		pos = (pos + 1) % size
	}
	var zero V
	return zero, false
}

// Erase removes key if present, closing the freed slot by backward-shift
// deletion (see backShiftFrom) rather than leaving a tombstone.
func (o *Open[K, V]) Erase(key K) bool {
	size := len(o.slots)
	pos := int(o.hash(key) % uint64(size))
	for o.live.Contains(uint32(pos)) {
		if o.slots[pos].Key == key {
			o.backShiftFrom(pos)
			o.count--
			return true
		}
		pos = (pos + 1) % size
	}
	return false
}

// backShiftFrom closes the hole at pos: it walks the rest of the cluster
// up to the first empty slot and moves back into the hole every entry
// whose probe sequence passes through it, after which that entry's old
// slot becomes the hole. An entry whose hash home lies after the hole (and
// not after its own slot) stays put, since moving it before its own home
// would make it unreachable from a fresh probe starting there.
func (o *Open[K, V]) backShiftFrom(pos int) {
	size := len(o.slots)
	hole := pos
	for cur := (pos + 1) % size; o.live.Contains(uint32(cur)); cur = (cur + 1) % size {
		home := int(o.hash(o.slots[cur].Key) % uint64(size))
		if d := (home - hole + size) % size; d != 0 && d <= (cur-hole+size)%size {
			continue
		}
		o.slots[hole] = o.slots[cur]
		hole = cur
	}
	o.live.Remove(uint32(hole))
}

// rehash doubles capacity and reinserts every live entry, preserving its
// stored weight. Triggered from Insert once the load factor exceeds 0.9.
func (o *Open[K, V]) rehash() {
	oldSlots := o.slots
	oldLive := o.live

	o.slots = make([]biasedmap.Entry[K, V], len(oldSlots)*2)
	o.live = roaring.New()
	o.count = 0

	oldLive.Iterate(func(x uint32) bool {
		e := oldSlots[x]
		_ = o.Insert(e.Key, e.Value, e.Weight)
		return true
	})
}

// Len reports the number of live entries.
func (o *Open[K, V]) Len() int {
	return o.count
}

// Cap reports the current slot count, exposed for growth assertions.
func (o *Open[K, V]) Cap() int {
	return len(o.slots)
}
