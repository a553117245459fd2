// Package functions covers function declarations, parameters and returns.
package functions

import (
	"fmt"
	"io"
)

// PrintLabeledMeasurement shows a function taking parameters of different
// types. Every parameter needs a type; there is no inference in signatures.
func PrintLabeledMeasurement(out io.Writer, value int, unitLabel rune) {
	fmt.Fprintf(out, "The measurement is: %d%c\n", value, unitLabel)
}

// Five returns a value without naming it. In Go the return keyword is always
// explicit; there is no expression-position return like in some languages,
// so `return 5` is the whole story.
func Five() int {
	return 5
}

// PlusOne demonstrates that arguments are expressions: Five() can be passed
// straight into another call.
func PlusOne(x int) int {
	return x + 1
}

// Divide shows multiple return values, the usual way Go reports failure
// alongside a result. Callers are expected to check the second value.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide %d by zero", a)
	}
	return a / b, nil
}

// MinMax uses named return values. The names document what comes back and
// allow a bare return, though bare returns get hard to follow in long
// functions and are best kept to short ones like this.
func MinMax(values []int) (min, max int) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}
