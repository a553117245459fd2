// Package commaok covers Go's answer to if let: the comma-ok idiom.
//
// Where Rust uses if let to handle a single interesting
// case and ignore the rest, Go pairs a lookup with a bool and tests it in
// the if statement's init clause. The scope of the bound variable is the
// if/else chain, nothing more, which is exactly the property if let had.
package commaok

import "fmt"

// ConfigMax mirrors the chapter's Option<u8> example. The map lookup gives
// a value and whether the key was present; the else branch is the "None"
// arm and is optional.
func ConfigMax(settings map[string]int) string {
	if max, ok := settings["max"]; ok {
		return fmt.Sprintf("The maximum is configured to be %d", max)
	}
	return "no maximum configured"
}

// CountNonQuarters counts coins, announcing quarters as it goes. This is
// the if-let-else shape: one pattern handled specially, everything else in
// the default path.
func CountNonQuarters(coins []Coin, announce func(string)) int {
	count := 0
	for _, coin := range coins {
		if coin.Quarter {
			announce(fmt.Sprintf("State quarter from %s!", coin.State))
		} else {
			count++
		}
	}
	return count
}

// Coin is a tiny stand-in for the matchflow version; each chapter keeps
// its own toy types on purpose.
type Coin struct {
	Quarter bool
	State   string
}

// DescribeValue uses the comma-ok form of a type assertion. Without the ok,
// a failed assertion panics; with it, the failure is just a branch.
func DescribeValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("a string %q", s)
	}
	if n, ok := v.(int); ok {
		return fmt.Sprintf("an int %d", n)
	}
	return "something else"
}

// TryReceive applies comma-ok to channels: ok reports whether the channel
// is still open. A closed channel yields the zero value with ok false.
func TryReceive(ch <-chan int) (int, bool) {
	v, ok := <-ch
	return v, ok
}
