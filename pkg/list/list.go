// Package list implements a generic singly linked list.
//
// A List mutates in place: Add, Prepend and Remove change the receiver and
// return nothing (Remove reports whether it found the value). Lists are not
// safe for concurrent use.
package list

import (
	"fmt"
	"iter"
)

// List is a singly linked list of comparable values. The zero value is an
// empty list ready to use.
type List[T comparable] struct {
	// Always one of empty[T], *single[T] or *chain[T]; nil is treated as
	// empty[T].
	head node[T]
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{head: empty[T]{}}
}

// From returns a list containing the given values in order.
func From[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// Add appends v as the last element of the list. It takes time proportional
// to the length of the list.
func (l *List[T]) Add(v T) {
	l.head = appendNode(l.head, v)
}

// Prepend inserts v as the first element of the list.
func (l *List[T]) Prepend(v T) {
	l.head = prependNode(l.head, v)
}

// Remove removes the first element that is equal to v, and reports whether
// such an element was found. The list is unchanged if it returns false.
func (l *List[T]) Remove(v T) bool {
	return removeNode(&l.head, v)
}

// All returns an iterator over the elements of the list, from first to last.
// The iterator reads the list when it is run, and can be run any number of
// times.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(l.head, yield)
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	n := 0
	walk(l.head, func(T) bool {
		n++
		return true
	})
	return n
}

// String returns the elements of the list formatted like a slice, such as
// "[a b c]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.values())
}

// Returns the elements as a slice. The result is non-nil even when the list
// is empty, so that it encodes as an empty sequence rather than null.
func (l *List[T]) values() []T {
	vs := make([]T, 0, l.Len())
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// Replaces the content of the list with vs.
func (l *List[T]) reset(vs []T) {
	l.head = empty[T]{}
	for _, v := range vs {
		l.Add(v)
	}
}
