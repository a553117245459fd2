// Package writingtests is the testing chapter.
//
// The interesting content lives in the _test.go file next to this one: it
// demonstrates Fatalf versus Errorf, custom failure messages, asserting
// that code panics (recover standing in for should_panic), error-returning
// helpers, and subtests. The functions here exist to be tested; AddTwo is
// also exercised from the root package as the integration-test half of
// the chapter.
package writingtests

import "fmt"

// AddTwo adds two to its argument.
func AddTwo(a int) int {
	return a + 2
}

// Greeting greets by name. The test asserts the name is contained rather
// than matching the whole string, so the wording can change freely.
func Greeting(name string) string {
	return fmt.Sprintf("Hello %s!", name)
}

// Guess holds a validated guess between 1 and 100.
type Guess struct {
	value int
}

// NewGuess panics when the value is out of range. The panic messages are
// split so a failing test can tell which bound was violated, which is what
// the chapter's expected-substring example relies on.
func NewGuess(value int) Guess {
	if value < 1 {
		panic(fmt.Sprintf("Guess value must be greater than or equal to 1, got %d.", value))
	}
	if value > 100 {
		panic(fmt.Sprintf("Guess value must be less than or equal to 100, got %d.", value))
	}
	return Guess{value: value}
}

// Value returns the validated guess.
func (g Guess) Value() int {
	return g.value
}

// Rectangle is redeclared locally; each chapter keeps its own toy types.
type Rectangle struct {
	Width  uint
	Height uint
}

// CanHold reports whether other fits inside r.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width > other.Width && r.Height > other.Height
}

// PrintsAndReturnsTen prints its input and returns 10. Output from passing
// tests is hidden unless `go test -v` is used, the same visibility rule the
// chapter demonstrates with --show-output.
func PrintsAndReturnsTen(a int) int {
	fmt.Printf("I got the value %d\n", a)
	return 10
}
