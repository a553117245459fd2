// Package pointers revisits the smart pointers chapter without the smart.
//
// Go has exactly one pointer type and a garbage collector, so the whole
// Box/Rc/RefCell catalogue collapses: Box<T> is a plain *T, Rc<T> is any
// number of copies of that *T, and RefCell's interior mutability is just
// what pointers always allow. Reference cycles leak nothing because the
// collector handles them. What remains worth writing down is recursive
// types, nil, and the few places Go still makes indirection explicit.
package pointers

import "fmt"

// List is the cons list. The recursive field must be a pointer; a direct
// List field would make the type infinitely large, the exact problem Box
// solved. nil is the Nil variant.
type List struct {
	Value int
	Next  *List
}

// Cons prepends a value, returning the new head.
func Cons(value int, next *List) *List {
	return &List{Value: value, Next: next}
}

// Len walks the list counting elements.
func (l *List) Len() int {
	n := 0
	for node := l; node != nil; node = node.Next {
		n++
	}
	return n
}

// String renders the list in the (1, (2, (3, Nil))) notation the chapter
// used to explain cons pairs.
func (l *List) String() string {
	if l == nil {
		return "Nil"
	}
	return fmt.Sprintf("(%d, %s)", l.Value, l.Next)
}

// Box is the MyBox exercise. Go has no Deref trait, so the explicit Get is
// as close as it gets; the point of the exercise survives, which is that a
// wrapper type can behave like a reference only by providing access on
// purpose.
type Box[T any] struct {
	value T
}

// NewBox wraps a value.
func NewBox[T any](value T) *Box[T] {
	return &Box[T]{value: value}
}

// Get returns the wrapped value; where Deref let *b do this implicitly,
// Go spells the access out.
func (b *Box[T]) Get() T {
	return b.value
}

// Set replaces the wrapped value, the RefCell half of the chapter: the
// holder of the box mutates through it, no borrow tracking involved.
func (b *Box[T]) Set(value T) {
	b.value = value
}

// SharedCount shows Rc-style sharing: three structs hold the same pointer
// and all observe the write. The "strong count" has no equivalent to
// inspect, so the observation is the test.
type SharedCount struct {
	N *int
}

// NewShared hands out count sharers over one integer.
func NewShared(initial int, holders int) []SharedCount {
	n := initial
	out := make([]SharedCount, holders)
	for i := range out {
		out[i] = SharedCount{N: &n}
	}
	return out
}

// Drop semantics: Go runs no destructors. Cleanup is the caller's job via
// defer, which is what this helper demonstrates by returning its release
// function, the idiom used everywhere from file handles to mutexes.
func AcquireResource(log func(string)) (release func()) {
	log("resource acquired")
	return func() {
		log("resource released")
	}
}
