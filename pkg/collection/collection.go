// Package collection provides strategies for sequences, sets, maps and heaps.
//
// Every strategy takes its size as a concrete count fixed at construction.
// Symbolic lengths are not supported: they multiply the paths an engine has to
// explore without adding coverage.
//
// The ordered containers draw their keys in non-decreasing order, so paths
// that only differ by insertion order are never generated. A key equal to the
// previous one coalesces, so those containers hold at most size elements.
package collection

import (
	"github.com/tidwall/btree"

	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Key is the set of types usable as ordered container keys.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// VecStrategy produces slices.
type VecStrategy[T any] struct {
	size    int
	element strategy.Strategy[T]
}

// Vec draws size elements and appends them in draw order.
func Vec[T any](size int, element strategy.Strategy[T]) VecStrategy[T] {
	return VecStrategy[T]{size: max(size, 0), element: element}
}

// Value draws the elements.
func (s VecStrategy[T]) Value(v verifier.Verifier) ([]T, error) {
	out := make([]T, 0, s.size)
	for range s.size {
		x, err := s.element.Value(v)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// VecDequeStrategy produces deques.
type VecDequeStrategy[T any] struct {
	size    int
	element strategy.Strategy[T]
}

// VecDeque draws size elements and pushes each to the front.
func VecDeque[T any](size int, element strategy.Strategy[T]) VecDequeStrategy[T] {
	return VecDequeStrategy[T]{size: max(size, 0), element: element}
}

// Value draws the elements.
func (s VecDequeStrategy[T]) Value(v verifier.Verifier) (*Deque[T], error) {
	d := NewDeque[T]()
	for range s.size {
		x, err := s.element.Value(v)
		if err != nil {
			return nil, err
		}
		d.PushFront(x)
	}
	return d, nil
}

// LinkedListStrategy produces singly linked lists.
type LinkedListStrategy[T any] struct {
	size    int
	element strategy.Strategy[T]
}

// LinkedList draws size elements and pushes each to the front.
func LinkedList[T any](size int, element strategy.Strategy[T]) LinkedListStrategy[T] {
	return LinkedListStrategy[T]{size: max(size, 0), element: element}
}

// Value draws the elements.
func (s LinkedListStrategy[T]) Value(v verifier.Verifier) (*List[T], error) {
	l := NewList[T]()
	for range s.size {
		x, err := s.element.Value(v)
		if err != nil {
			return nil, err
		}
		l.PushFront(x)
	}
	return l, nil
}

// ascending hands size keys to insert, each no smaller than the one before.
// Like the insertion loop it mirrors, it always draws one key ahead, so size+1
// keys are drawn and the last one only constrains the path.
func ascending[K Key](v verifier.Verifier, size int, key strategy.Strategy[K], insert func(K) error) error {
	cur, err := key.Value(v)
	if err != nil {
		return err
	}
	for range size {
		if err := insert(cur); err != nil {
			return err
		}
		next, err := key.Value(v)
		if err != nil {
			return err
		}
		if err := v.Assume(next >= cur); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// BTreeSetStrategy produces ordered sets.
type BTreeSetStrategy[K Key] struct {
	size int
	key  strategy.Strategy[K]
}

// BTreeSet draws up to size keys in non-decreasing order.
func BTreeSet[K Key](size int, key strategy.Strategy[K]) BTreeSetStrategy[K] {
	return BTreeSetStrategy[K]{size: max(size, 0), key: key}
}

// Value draws the keys.
func (s BTreeSetStrategy[K]) Value(v verifier.Verifier) (*btree.Set[K], error) {
	set := new(btree.Set[K])
	err := ascending(v, s.size, s.key, func(k K) error {
		set.Insert(k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// BTreeMapStrategy produces ordered maps.
type BTreeMapStrategy[K Key, V any] struct {
	size  int
	key   strategy.Strategy[K]
	value strategy.Strategy[V]
}

// BTreeMap draws up to size keys in non-decreasing order, each with an
// independently drawn value. A repeated key keeps the later value.
func BTreeMap[K Key, V any](size int, key strategy.Strategy[K], value strategy.Strategy[V]) BTreeMapStrategy[K, V] {
	return BTreeMapStrategy[K, V]{size: max(size, 0), key: key, value: value}
}

// Value draws the entries.
func (s BTreeMapStrategy[K, V]) Value(v verifier.Verifier) (*btree.Map[K, V], error) {
	m := new(btree.Map[K, V])
	err := ascending(v, s.size, s.key, func(k K) error {
		val, err := s.value.Value(v)
		if err != nil {
			return err
		}
		m.Set(k, val)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// BinaryHeapStrategy produces max-heaps.
type BinaryHeapStrategy[K Key] struct {
	size int
	key  strategy.Strategy[K]
}

// BinaryHeap pushes size keys in non-decreasing order, so the last key drawn
// is the largest.
func BinaryHeap[K Key](size int, key strategy.Strategy[K]) BinaryHeapStrategy[K] {
	return BinaryHeapStrategy[K]{size: max(size, 0), key: key}
}

// Value draws the keys.
func (s BinaryHeapStrategy[K]) Value(v verifier.Verifier) (*Heap[K], error) {
	h := NewHeap[K]()
	err := ascending(v, s.size, s.key, func(k K) error {
		h.Push(k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// SetKeys returns the keys of a set in ascending order.
func SetKeys[K Key](s *btree.Set[K]) []K {
	keys := make([]K, 0, s.Len())
	s.Scan(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// MapEntries returns the keys and values of a map in ascending key order.
func MapEntries[K Key, V any](m *btree.Map[K, V]) ([]K, []V) {
	keys := make([]K, 0, m.Len())
	values := make([]V, 0, m.Len())
	m.Scan(func(k K, v V) bool {
		keys = append(keys, k)
		values = append(values, v)
		return true
	})
	return keys, values
}
