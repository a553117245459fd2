// Package patterns covers what survives of pattern matching in Go.
//
// Go has no general pattern syntax, so this chapter is a translation
// exercise: multiple assignment does tuple destructuring, switch with no
// expression does match guards, type switches do enum dispatch, and the
// blank identifier does _. What has no counterpart at all (bindings with @,
// nested struct patterns, or-patterns in one arm beyond the comma list) is
// noted where it would have appeared.
package patterns

import "fmt"

// Destructure is tuple destructuring via multiple assignment. Works in
// declarations, assignments and returns; there is nothing to destructure
// positionally in a struct, you name the fields instead.
func Destructure() (x, y, z int) {
	point := [3]int{1, 2, 3}
	x, y, z = point[0], point[1], point[2]
	return
}

// Swap is the classic two-variable pattern.
func Swap(a, b int) (int, int) {
	a, b = b, a
	return a, b
}

// Categorize uses an expressionless switch, Go's spelling of match guards:
// each case is a boolean, first true one wins.
func Categorize(x int) string {
	switch {
	case x < 0:
		return "negative"
	case x == 0:
		return "zero"
	case x < 10:
		return "small"
	default:
		return "large"
	}
}

// MatchRanges shows comma lists and the absence of range patterns: 1..=5
// becomes an explicit comparison in a guard-style switch.
func MatchRanges(x int) string {
	switch x {
	case 1, 2, 3, 4, 5:
		return "one through five"
	}
	switch {
	case 'a' <= x && x <= 'z':
		return "lowercase ascii letter"
	default:
		return "something else"
	}
}

// Point gets destructured by naming fields, the only way Go offers.
type Point struct {
	X, Y int
}

// DescribePoint matches on the axes the way a Rust match would
// destructure Point { x: 0, y } and friends.
func DescribePoint(p Point) string {
	switch {
	case p.X == 0 && p.Y == 0:
		return "on both axes at the origin"
	case p.X == 0:
		return fmt.Sprintf("on the y axis at %d", p.Y)
	case p.Y == 0:
		return fmt.Sprintf("on the x axis at %d", p.X)
	default:
		return fmt.Sprintf("on neither axis: (%d, %d)", p.X, p.Y)
	}
}

// IgnoreParts shows the blank identifier in its usual roles: unused
// returns and unused range components.
func IgnoreParts(values map[string]int) int {
	count := 0
	for _, v := range values {
		// The key is deliberately dropped.
		if v > 0 {
			count++
		}
	}

	_, err := fmt.Sscanf("5", "%d", &count)
	_ = err // intentionally ignoring a parse that cannot fail on "5"
	return count
}

// ShadowInArm reproduces the shadowing pitfall: the y declared inside the
// case hides the outer y for the rest of the case.
func ShadowInArm(x *int, y int) string {
	if x != nil {
		y := *x // shadows the parameter
		return fmt.Sprintf("matched, y = %d", y)
	}
	return fmt.Sprintf("default case, y = %d", y)
}
