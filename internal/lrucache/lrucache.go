// Package lrucache implements a capacity-bounded, move-to-front cache:
// weight is absent, and instead of a biased key, the heaviest-in-practice
// key is simply whichever was accessed most recently. Built around a
// doubly linked list plus hash map pair, keyed on a generic comparable key
// type to match this module's Engine[K,V] contract.
package lrucache

import (
	"sync"

	"github.com/niceyeti/biasedmap/internal/biasedmap"
)

// Cache is a least-recently-used cache over key type K and value type V.
type Cache[K comparable, V any] struct {
	itemMap  map[K]*node[K, V]
	itemList *doublyLinkedList[K, V]
	capacity int
	mu       sync.RWMutex
}

// New initializes a cache of the passed capacity. Returns
// biasedmap.ErrInvalidParameter if capacity <= 0.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, biasedmap.ErrInvalidParameter
	}

	return &Cache[K, V]{
		itemMap:  make(map[K]*node[K, V], capacity),
		itemList: newDoublyLinkedList[K, V](),
		capacity: capacity,
	}, nil
}

var _ biasedmap.Engine[int, int] = (*Cache[int, int])(nil)

// Insert stores (key, value) at the front of the cache, evicting the
// least-recently-used entry if the cache is over capacity. weight is
// accepted to satisfy biasedmap.Engine but is not read. Re-inserting an
// existing key is a silent no-op -- the existing entry is neither moved
// nor overwritten.
func (c *Cache[K, V]) Insert(key K, value V, weight uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.itemMap[key]; ok {
		return nil
	}

	newNode := &node[K, V]{entry: biasedmap.Entry[K, V]{Key: key, Value: value}}

	c.itemList.Prepend(newNode)
	c.itemMap[key] = newNode

	evicted := c.itemList.TrimRight(c.capacity)
	for evicted != nil {
		delete(c.itemMap, evicted.entry.Key)
		next := evicted.next
		evicted.prev = nil
		evicted.next = nil
		evicted = next
	}

	return nil
}

// Lookup returns the value for key and whether it was found. A hit
// rotates the entry to the front of the cache.
func (c *Cache[K, V]) Lookup(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, exists := c.itemMap[key]
	if !exists {
		var zero V
		return zero, false
	}

	_ = c.itemList.RotateFront(target)
	return target.entry.Value, true
}

// Erase removes key if present.
func (c *Cache[K, V]) Erase(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, ok := c.itemMap[key]
	if !ok {
		return false
	}

	_ = c.itemList.Remove(target)
	delete(c.itemMap, key)
	return true
}

// Len reports the number of live entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.itemList.count
}

type node[K comparable, V any] struct {
	next, prev *node[K, V]
	entry      biasedmap.Entry[K, V]
}

type doublyLinkedList[K comparable, V any] struct {
	head, tail *node[K, V]
	count      int
}

func newDoublyLinkedList[K comparable, V any]() *doublyLinkedList[K, V] {
	return &doublyLinkedList[K, V]{}
}

// Prepend inserts newNode at the front of the list.
func (list *doublyLinkedList[K, V]) Prepend(newNode *node[K, V]) {
	if list.head == nil {
		list.head = newNode
		list.tail = newNode
		newNode.prev, newNode.next = nil, nil
		list.count = 1
		return
	}

	newNode.next = list.head
	list.head.prev = newNode
	list.head = newNode
	list.count++
}

// RotateFront moves target to the front of the list.
func (list *doublyLinkedList[K, V]) RotateFront(target *node[K, V]) error {
	if target == nil {
		return biasedmap.ErrInvalidParameter
	}

	if target.prev == nil {
		// Already at the front.
		return nil
	}

	_ = list.Remove(target)
	list.Prepend(target)

	return nil
}

// TrimRight slices the list at the zero-based nth position and returns the
// first node from that position onward (the chain of evicted nodes), or
// nil if the list is not over capacity.
func (list *doublyLinkedList[K, V]) TrimRight(n int) (evicted *node[K, V]) {
	if list.count <= n {
		return nil
	}

	evicted = list.head
	for i := 0; i < n; i++ {
		evicted = evicted.next
	}

	if evicted == list.head {
		list.head = nil
		list.tail = nil
		list.count = 0
		return
	}

	if evicted == list.tail {
		list.tail.prev.next = nil
		list.tail = list.tail.prev
		evicted.prev = nil
		list.count--
		return
	}

	list.tail = evicted.prev
	list.tail.next = nil
	evicted.prev = nil
	list.count = n

	return
}

// Remove unlinks target from the list.
func (list *doublyLinkedList[K, V]) Remove(target *node[K, V]) error {
	if target == nil {
		return biasedmap.ErrInvalidParameter
	}

	defer func() {
		target.prev = nil
		target.next = nil
		list.count--
	}()

	if target.prev == nil && target.next == nil {
		list.head = nil
		list.tail = nil
		return nil
	}
	if target.prev == nil {
		list.head = target.next
		list.head.prev = nil
		return nil
	}
	if target.next == nil {
		list.tail = target.prev
		list.tail.next = nil
		return nil
	}
	target.prev.next = target.next
	target.next.prev = target.prev

	return nil
}
