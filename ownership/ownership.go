// Package ownership re-examines the ownership chapter through Go's model.
//
// Go has no borrow checker. Instead everything comes down to one rule:
// assignment and parameter passing always copy the value. For scalars and
// structs the copy is the whole thing; for slices and maps the copied value
// is a small header or pointer, so two copies can observe the same backing
// data. The garbage collector frees heap memory once nothing refers to it,
// which is why double frees and use-after-move simply do not exist here.
package ownership

import "strings"

// AppendWorld builds a string the way Rust grows one with push_str.
// Go strings are immutable, so "appending" always produces a new
// string; strings.Builder avoids the intermediate allocations when many
// pieces are joined.
func AppendWorld(s string) string {
	var b strings.Builder
	b.WriteString(s)
	b.WriteString(", world!")
	return b.String()
}

// CopyScalar shows that integers are plain values. After the assignment,
// x and y are independent; changing one never affects the other.
func CopyScalar() (x, y int) {
	x = 5
	y = x
	y++
	return x, y
}

// ShareSlice shows the pointer-like nature of slices. s2 is a copy of the
// slice header, not of the elements, so writing through s2 is visible
// through s1. This is the closest Go comes to two owners of one buffer,
// and it is allowed.
func ShareSlice() (first int, same bool) {
	s1 := []int{1, 2, 3}
	s2 := s1
	s2[0] = 99
	return s1[0], &s1[0] == &s2[0]
}

// CloneSlice makes a deep copy the explicit way. After copy, the two slices
// have separate backing arrays and writes no longer alias.
func CloneSlice() (original, clone int) {
	s1 := []int{1, 2, 3}
	s2 := make([]int, len(s1))
	copy(s2, s1)
	s2[0] = 99
	return s1[0], s2[0]
}

// ShareMap shows that maps behave like references too. Assigning a map
// copies a pointer to the same hash table.
func ShareMap() int {
	m1 := map[string]int{"hello": 1}
	m2 := m1
	m2["hello"] = 42
	return m1["hello"]
}

// TakesCopy receives a struct by value. Mutations inside stay inside;
// the caller's value is untouched. Nothing is "moved" and the argument
// remains usable at the call site.
func TakesCopy(p Point) Point {
	p.X = 0
	p.Y = 0
	return p
}

// TakesPointer receives the address instead. Now mutations are shared with
// the caller. Passing a pointer is Go's equivalent of a mutable borrow,
// minus the exclusivity rule.
func TakesPointer(p *Point) {
	p.X = 0
	p.Y = 0
}

// Point exists so the two functions above have something to copy or share.
type Point struct {
	X, Y int
}

// Escape returns the address of a local variable. In C this would be a bug;
// in Go escape analysis moves the value to the heap and the pointer stays
// valid for as long as anyone holds it.
func Escape() *Point {
	p := Point{X: 1, Y: 2}
	return &p
}
