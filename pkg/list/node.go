package list

// The shape of a list is one of three node types:
//
//   - empty, a list with no elements;
//   - *single, the last (or only) element;
//   - *chain, an element followed by a successor.
//
// The successor of a *chain is always a *single or a *chain; "no more
// elements" is expressed by the *single shape, never by an empty successor.
// Values stored in nodes are never modified; the next field of a *chain may
// be rewritten to splice the list.
type node[T comparable] interface {
	isNode()
}

type empty[T comparable] struct{}

type single[T comparable] struct {
	value T
}

type chain[T comparable] struct {
	value T
	next  node[T]
}

func (empty[T]) isNode()   {}
func (*single[T]) isNode() {}
func (*chain[T]) isNode()  {}

// appendNode returns the head of the list that results from appending v to
// the list starting at head. When head is a *chain, it is returned unchanged
// and the chain is extended in place.
func appendNode[T comparable](head node[T], v T) node[T] {
	switch h := head.(type) {
	case *single[T]:
		return &chain[T]{h.value, &single[T]{v}}
	case *chain[T]:
		c := h
		for {
			next, ok := c.next.(*chain[T])
			if !ok {
				break
			}
			c = next
		}
		last := c.next.(*single[T])
		c.next = &chain[T]{last.value, &single[T]{v}}
		return h
	default:
		return &single[T]{v}
	}
}

// prependNode returns the head of the list that results from inserting v
// in front of head. The old head becomes the successor of the new one.
func prependNode[T comparable](head node[T], v T) node[T] {
	switch h := head.(type) {
	case *single[T], *chain[T]:
		return &chain[T]{v, h}
	default:
		return &single[T]{v}
	}
}

// removeNode removes the first element equal to v from the list whose head
// is stored in *slot, and reports whether an element was removed.
//
// The scan keeps slot pointing at the link that references the current
// node, so that both the current node and its predecessor can be replaced.
func removeNode[T comparable](slot *node[T], v T) bool {
	switch h := (*slot).(type) {
	case *single[T]:
		if h.value != v {
			return false
		}
		*slot = empty[T]{}
		return true
	case *chain[T]:
		for {
			c := (*slot).(*chain[T])
			if c.value == v {
				*slot = c.next
				return true
			}
			switch next := c.next.(type) {
			case *single[T]:
				if next.value != v {
					return false
				}
				// c loses its successor and becomes the last element.
				*slot = &single[T]{c.value}
				return true
			case *chain[T]:
				slot = &c.next
			}
		}
	default:
		return false
	}
}

// walk calls f with each value from head to tail, stopping early when f
// returns false.
func walk[T comparable](head node[T], f func(T) bool) {
	for {
		switch n := head.(type) {
		case *chain[T]:
			if !f(n.value) {
				return
			}
			head = n.next
		case *single[T]:
			f(n.value)
			return
		default:
			return
		}
	}
}
