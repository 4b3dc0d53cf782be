package collection

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Deque is a double-ended sequence.
type Deque[T any] struct {
	list *doublylinkedlist.List
}

// NewDeque returns a deque holding values front to back.
func NewDeque[T any](values ...T) *Deque[T] {
	d := &Deque[T]{list: doublylinkedlist.New()}
	for _, v := range values {
		d.PushBack(v)
	}
	return d
}

// PushFront adds v before the first element.
func (d *Deque[T]) PushFront(v T) { d.list.Prepend(v) }

// PushBack adds v after the last element.
func (d *Deque[T]) PushBack(v T) { d.list.Append(v) }

// Front returns the first element.
func (d *Deque[T]) Front() (T, bool) { return typed[T](d.list.Get(0)) }

// Back returns the last element.
func (d *Deque[T]) Back() (T, bool) { return typed[T](d.list.Get(d.list.Size() - 1)) }

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	v, ok := d.Front()
	if ok {
		d.list.Remove(0)
	}
	return v, ok
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	v, ok := d.Back()
	if ok {
		d.list.Remove(d.list.Size() - 1)
	}
	return v, ok
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.list.Size() }

// Values returns the elements front to back.
func (d *Deque[T]) Values() []T { return typedSlice[T](d.list.Values()) }

func (d *Deque[T]) String() string { return format(d.Values()) }

// List is a singly linked sequence.
type List[T any] struct {
	list *singlylinkedlist.List
}

// NewList returns a list holding values front to back.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{list: singlylinkedlist.New()}
	for _, v := range values {
		l.list.Append(v)
	}
	return l
}

// PushFront adds v before the first element.
func (l *List[T]) PushFront(v T) { l.list.Prepend(v) }

// Front returns the first element.
func (l *List[T]) Front() (T, bool) { return typed[T](l.list.Get(0)) }

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	v, ok := l.Front()
	if ok {
		l.list.Remove(0)
	}
	return v, ok
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.list.Size() }

// Values returns the elements front to back.
func (l *List[T]) Values() []T { return typedSlice[T](l.list.Values()) }

func (l *List[T]) String() string { return format(l.Values()) }

// Heap is a max-heap: Pop returns the largest element.
type Heap[K Key] struct {
	heap *binaryheap.Heap
}

// NewHeap returns a heap holding values.
func NewHeap[K Key](values ...K) *Heap[K] {
	h := &Heap[K]{heap: binaryheap.NewWith(descending[K])}
	for _, v := range values {
		h.heap.Push(v)
	}
	return h
}

// descending orders larger keys first, which turns the min-heap into a max-heap.
func descending[K Key](a, b interface{}) int {
	x, y := a.(K), b.(K)
	switch {
	case x > y:
		return -1
	case x < y:
		return 1
	default:
		return 0
	}
}

var _ utils.Comparator = descending[int]

// Push adds v.
func (h *Heap[K]) Push(v K) { h.heap.Push(v) }

// Peek returns the largest element.
func (h *Heap[K]) Peek() (K, bool) { return typed[K](h.heap.Peek()) }

// Pop removes and returns the largest element.
func (h *Heap[K]) Pop() (K, bool) { return typed[K](h.heap.Pop()) }

// Len returns the number of elements.
func (h *Heap[K]) Len() int { return h.heap.Size() }

// Sorted returns the elements largest first without modifying the heap.
func (h *Heap[K]) Sorted() []K {
	c := NewHeap[K](typedSlice[K](h.heap.Values())...)
	out := make([]K, 0, c.Len())
	for {
		v, ok := c.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func (h *Heap[K]) String() string { return format(h.Sorted()) }

func typed[T any](v interface{}, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func typedSlice[T any](values []interface{}) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = v.(T)
	}
	return out
}

func format[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
