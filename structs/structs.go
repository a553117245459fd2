// Package structs covers struct definitions, literals and methods.
package structs

import "fmt"

// User groups related data under named fields. Mutability belongs to the
// variable, not the type: a User stored in a var can be changed field by
// field, one stored behind a constant cannot exist at all (Go constants are
// scalars and strings only).
type User struct {
	Active      bool
	Username    string
	Email       string
	SignInCount uint64
}

// BuildUser uses the positional field names explicitly. Go has no field init
// shorthand; when a parameter and a field share a name you still write
// `Username: username`. Keeping the parameter order close to the field order
// is the usual compromise.
func BuildUser(email, username string) User {
	return User{
		Active:      true,
		Username:    username,
		Email:       email,
		SignInCount: 1,
	}
}

// WithEmail is the struct-update idiom. Go has no `..base` spread syntax;
// you copy the whole value and overwrite the fields that differ. Because
// the copy is a real copy, the original stays fully usable afterwards.
func WithEmail(base User, email string) User {
	updated := base
	updated.Email = email
	return updated
}

// Color and Position play the role of tuple structs: same shape, distinct
// types. A Color is never a Position even though both are three ints.
type Color struct{ R, G, B int }

// Position is a point in 3D space.
type Position struct{ X, Y, Z int }

// AlwaysEqual is an empty struct. It occupies zero bytes and is useful when
// only the type matters, most commonly as map[T]struct{} sets or as a
// receiver for interface implementations that need no state.
type AlwaysEqual struct{}

// Rectangle is the running example for methods.
type Rectangle struct {
	Width  uint
	Height uint
}

// Area is a method with a value receiver. The receiver is a copy, which is
// fine here since Area only reads.
func (r Rectangle) Area() uint {
	return r.Width * r.Height
}

// CanHold reports whether other fits entirely inside r.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// Scale uses a pointer receiver because it mutates. Mixing receiver kinds
// on one type is legal but confusing; Rectangle keeps value receivers for
// reads and pointers for writes.
func (r *Rectangle) Scale(factor uint) {
	r.Width *= factor
	r.Height *= factor
}

// Square is an associated-function style constructor: just a package-level
// function returning the type.
func Square(size uint) Rectangle {
	return Rectangle{Width: size, Height: size}
}

// String implements fmt.Stringer, the Go answer to derived Debug output.
// %+v already prints field names without any help; String is for when the
// default shape is not what you want.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle %dx%d", r.Width, r.Height)
}
