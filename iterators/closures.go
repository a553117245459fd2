// Package iterators covers closures and iteration.
//
// Go closures are function literals that capture variables from the
// enclosing scope by reference, always. There is no Fn/FnMut/FnOnce
// distinction and no move keyword; if a closure writes to a captured
// variable, every holder of the closure sees the write. The iterator half
// of the chapter builds a minimal pull-based Iterator[T] on a function
// type, since Go's range works over built-in types only (until range-over-
// func, which needs a newer Go than this repo targets).
package iterators

import "sort"

// ShirtColor is the giveaway example's enum.
type ShirtColor int

// The two colors the store stocks.
const (
	Red ShirtColor = iota
	Blue
)

// String names the colors for printing.
func (c ShirtColor) String() string {
	if c == Red {
		return "Red"
	}
	return "Blue"
}

// Inventory holds the shirts on hand.
type Inventory struct {
	Shirts []ShirtColor
}

// Giveaway picks the user's preferred color, falling back to the most
// stocked one. The fallback is passed as a closure to getOrElse, the same
// shape as unwrap_or_else: the fallback only runs when needed.
func (i Inventory) Giveaway(userPreference *ShirtColor) ShirtColor {
	return getOrElse(userPreference, i.mostStocked)
}

// getOrElse dereferences the pointer when present, otherwise computes the
// fallback lazily.
func getOrElse(v *ShirtColor, fallback func() ShirtColor) ShirtColor {
	if v != nil {
		return *v
	}
	return fallback()
}

func (i Inventory) mostStocked() ShirtColor {
	numRed, numBlue := 0, 0
	for _, color := range i.Shirts {
		switch color {
		case Red:
			numRed++
		case Blue:
			numBlue++
		}
	}
	if numRed > numBlue {
		return Red
	}
	return Blue
}

// MakeCounter returns a closure that captures its own count. Each call to
// MakeCounter produces an independent counter; calls to the returned
// closure share one. This is the capture-by-reference rule in one example.
func MakeCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// Rectangle is the sort-by-key example's element type.
type Rectangle struct {
	Width  uint
	Height uint
}

// SortByWidth sorts in place using a closure as the key, counting how many
// times the closure ran. Mutating a captured counter from inside the
// comparison is perfectly legal in Go; the FnMut restrictions have no
// equivalent here.
func SortByWidth(list []Rectangle) (comparisons int) {
	sort.Slice(list, func(a, b int) bool {
		comparisons++
		return list[a].Width < list[b].Width
	})
	return comparisons
}
