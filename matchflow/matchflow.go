// Package matchflow maps the match chapter onto Go's switch.
//
// Go's switch does not enforce exhaustiveness the way match does, so the
// compiler will not catch a missing coin. The convention is a default arm
// that either handles the rest or fails loudly.
package matchflow

import (
	"fmt"
	"io"
)

// UsState tags quarters minted per state.
type UsState int

// A subset of states, enough for the example.
const (
	Alabama UsState = iota
	Alaska
	Georgia
	Florida
	California
)

// String gives states printable names.
func (s UsState) String() string {
	names := [...]string{"Alabama", "Alaska", "Georgia", "Florida", "California"}
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("UsState(%d)", int(s))
}

// Coin is the classic enum from the chapter. The quarter's state lives in a
// struct because Go constants cannot carry payloads.
type Coin struct {
	Kind  CoinKind
	State UsState // only meaningful for quarters
}

// CoinKind enumerates the coin denominations.
type CoinKind int

const (
	Penny CoinKind = iota
	Nickel
	Dime
	Quarter
)

// ValueInCents switches over the coin kind. An arm can be a block of
// statements; no fallthrough happens unless asked for, which makes Go's
// switch behave much more like match than like C's switch.
func ValueInCents(out io.Writer, coin Coin) int {
	switch coin.Kind {
	case Penny:
		fmt.Fprintln(out, "Lucky penny!")
		return 1
	case Nickel:
		return 5
	case Dime:
		return 10
	case Quarter:
		// The payload is right there on the struct; no binding syntax
		// needed to get at it.
		fmt.Fprintf(out, "State quarter from %s!\n", coin.State)
		return 25
	default:
		return 0
	}
}

// PlusOne is the Option<i32> example with a pointer in the Some role. A nil
// pointer stands for None and flows straight through.
func PlusOne(x *int) *int {
	if x == nil {
		return nil
	}
	result := *x + 1
	return &result
}

// DiceMove shows the catch-all arms. A named default binding is just the
// switch value itself; ignoring the rest entirely is an empty default.
func DiceMove(roll int) string {
	switch roll {
	case 3:
		return "add fancy hat"
	case 7:
		return "remove fancy hat"
	default:
		// Matching "everything else and do nothing" is simply this.
		return ""
	}
}
