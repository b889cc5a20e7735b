package orderedpart

// Class is one class of an ordered partition: an unordered set of vertex IDs
// plus the doubly-linked list pointers that place it among its siblings.
type Class struct {
	IDs  map[string]struct{}
	prev *Class
	next *Class
}

// NewClass builds a standalone Class from the given vertex-ID set. ids must
// be nonempty; the caller owns ids and must not mutate it afterwards.
func NewClass(ids map[string]struct{}) *Class {
	return &Class{IDs: ids}
}

// List is an ordered partition ⟨P1, …, Pm⟩ of disjoint, nonempty vertex-ID
// sets, represented as a doubly-linked list with a head pointer.
type List struct {
	head *Class
}

// New returns an empty ordered partition.
func New() *List {
	return &List{}
}

// IsEmpty reports whether the partition has no classes.
func (l *List) IsEmpty() bool {
	return l.head == nil
}

// First returns the head class without removing it, or nil if empty.
func (l *List) First() *Class {
	return l.head
}

// Prepend inserts a new class at the head of the partition. Complexity: O(1).
func (l *List) Prepend(ids map[string]struct{}) {
	c := NewClass(ids)
	if l.head != nil {
		c.next = l.head
		l.head.prev = c
	}
	l.head = c
}

// PopFirst removes and returns the head class, or nil if the partition is
// empty. Complexity: O(1).
func (l *List) PopFirst() *Class {
	if l.head == nil {
		return nil
	}
	old := l.head
	l.head = old.next
	if l.head != nil {
		l.head.prev = nil
	}
	old.next = nil

	return old
}

// Replace splices target out of the partition and inserts two new classes, a
// then b, in its place. a and b must both be nonempty and partition
// target.IDs between them; this is the caller's responsibility (mirrors the
// source specification's "replace(P, A, B)" primitive, which carries the
// same precondition).
func (l *List) Replace(target *Class, a, b map[string]struct{}) {
	ca := NewClass(a)
	cb := NewClass(b)
	ca.next = cb
	cb.prev = ca

	if target.prev == nil {
		l.head = ca
	} else {
		target.prev.next = ca
		ca.prev = target.prev
	}
	if target.next != nil {
		target.next.prev = cb
		cb.next = target.next
	}
}

// Classes returns a snapshot slice of the partition's classes, head to tail.
// Safe to range over while mutating the List, since it is a one-time copy.
func (l *List) Classes() []*Class {
	var out []*Class
	for c := l.head; c != nil; c = c.next {
		out = append(out, c)
	}

	return out
}

// Flatten returns the union of all classes in the partition. Complexity:
// O(Σ|Pi|).
func (l *List) Flatten() map[string]struct{} {
	out := make(map[string]struct{})
	for c := l.head; c != nil; c = c.next {
		for id := range c.IDs {
			out[id] = struct{}{}
		}
	}

	return out
}
