// Package advanced covers the grab bag at the end of the book: unsafe
// code, function values and the closest Go gets to a derive macro.
package advanced

import (
	"fmt"
	"reflect"
	"unsafe"
)

// HelloName is the HelloMacro trait. Instead of a derive macro generating
// an implementation per type, Go reaches for reflection at runtime: one
// function that works for every type by asking the type for its name.
// Compile-time generation exists too (go:generate), but for a method this
// small reflection is the idiomatic answer.
func HelloName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "Hello! I have no name."
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		// Anonymous types (slices, maps, funcs) have no name; fall back
		// to the full type string.
		name = t.String()
	}
	return fmt.Sprintf("Hello! My name is %s!", name)
}

// AddOne exists to be referenced as a function value.
func AddOne(x int) int {
	return x + 1
}

// DoTwice shows functions as ordinary values: passed in, called twice.
// Function pointers and closures are the same type in Go, func(int) int,
// so there is no fn/Fn split to navigate.
func DoTwice(f func(int) int, arg int) int {
	return f(arg) + f(arg)
}

// MakeAdder returns a closure, the returns-a-closure example. No Box, no
// dyn: the closure type is spelled the same whether it captures or not.
func MakeAdder(x int) func(int) int {
	return func(y int) int {
		return x + y
	}
}

// Compose chains two functions into one, generics making it type safe all
// the way through.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Header is the unsafe example's subject. Its fields stay unexported so
// the only way to the magic from outside is the front door, or PeekMagic.
type Header struct {
	magic uint32
	flag  uint8
}

// NewHeader builds a subject for PeekMagic.
func NewHeader(magic uint32) *Header {
	return &Header{magic: magic, flag: 1}
}

// PeekMagic reads a struct field through a raw pointer. This is the
// dereference-a-raw-pointer demonstration: unsafe.Pointer suspends the
// type system, and unsafe.Offsetof does the arithmetic the compiler would
// normally do. Real code wants this roughly never; it is here because the
// chapter is about knowing what the escape hatch looks like.
func PeekMagic(h *Header) uint32 {
	p := unsafe.Pointer(uintptr(unsafe.Pointer(h)) + unsafe.Offsetof(h.magic))
	return *(*uint32)(p)
}

// Counter demonstrates method values: counter.Increment with no call
// parentheses is a func() bound to that receiver.
type Counter struct {
	n int
}

// Increment bumps the count.
func (c *Counter) Increment() {
	c.n++
}

// Value reads the count.
func (c *Counter) Value() int {
	return c.n
}

// ApplyN calls a bound method value n times.
func ApplyN(f func(), n int) {
	for i := 0; i < n; i++ {
		f()
	}
}
