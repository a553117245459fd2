// Package controlflow covers if/else and Go's single loop keyword.
//
// Go has exactly one loop construct, for, which plays the role of while and
// of the infinite loop depending on what you leave out. There is no ternary
// operator and no loop-as-expression; where a loop needs to produce a value
// it assigns to a variable and breaks.
package controlflow

import (
	"fmt"
	"io"
)

// Classify shows an if/else-if chain. Conditions must be bool; there is no
// truthiness, so `if number` does not compile.
func Classify(number int) string {
	if number < 5 {
		return "small"
	} else if number > 5 {
		return "big"
	}
	return "five"
}

// PickNumber is the closest Go gets to a conditional expression. Both
// branches assign to the same variable and must agree on its type.
func PickNumber(condition bool) int {
	number := 6
	if condition {
		number = 5
	}
	return number
}

// LoopResult runs an infinite for loop that counts up and breaks once the
// counter reaches 10, handing back twice its value. A bare `for { }` loops
// forever; break and continue work the same as everywhere else.
func LoopResult() int {
	counter := 0
	result := 0
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}
	return result
}

// CountNested uses a labeled break to leave both loops at once. Labels are
// rare in practice but this is exactly what they exist for.
func CountNested(out io.Writer) int {
	count := 0
counting:
	for {
		fmt.Fprintf(out, "count = %d\n", count)
		remaining := 10

		for {
			fmt.Fprintf(out, "remaining = %d\n", remaining)
			if remaining == 9 {
				break
			}
			if count == 2 {
				break counting
			}
			remaining--
		}

		count++
	}
	fmt.Fprintf(out, "End count = %d\n", count)
	return count
}

// Countdown is the while-style for: just a condition, no init or post.
func Countdown(out io.Writer, from int) {
	for from != 0 {
		fmt.Fprintf(out, "%d!\n", from)
		from--
	}
	fmt.Fprintln(out, "LIFTOFF!!!")
}

// PrintAll ranges over a slice. range gives index and value; the index is
// dropped with the blank identifier here.
func PrintAll(out io.Writer, values []int) {
	for _, element := range values {
		fmt.Fprintf(out, "the value is %d\n", element)
	}
}

// CountdownRange walks a range in reverse. Go has no built-in reverse range,
// so a plain three-part for does the job.
func CountdownRange(out io.Writer, from, to int) {
	for number := from; number >= to; number-- {
		fmt.Fprintf(out, "%d!\n", number)
	}
}
