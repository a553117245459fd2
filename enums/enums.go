// Package enums approximates enums with iota constants and small interfaces.
//
// Go has no enum keyword. The conventional substitute is a named integer
// type with a block of iota constants, which buys exhaustive switch by
// discipline rather than by compiler. Variants that carry data are modeled
// as separate types implementing a shared interface.
package enums

import "fmt"

// IPAddrKind enumerates address families the iota way.
type IPAddrKind int

const (
	V4 IPAddrKind = iota
	V6
)

// String makes the constants print as names instead of raw integers.
func (k IPAddrKind) String() string {
	switch k {
	case V4:
		return "V4"
	case V6:
		return "V6"
	default:
		return fmt.Sprintf("IPAddrKind(%d)", int(k))
	}
}

// IPAddr pairs the kind with its textual address. Where a Rust enum
// attaches data directly to the variant, Go attaches it to a struct
// beside the tag.
type IPAddr struct {
	Kind    IPAddrKind
	Address string
}

// Message is the data-carrying-variant pattern: each variant is its own
// type and the interface is the enum. The unexported marker method keeps
// outside packages from inventing new variants.
type Message interface {
	message()
}

// Quit carries no data at all.
type Quit struct{}

// Move has named fields like a struct variant.
type Move struct {
	X, Y int
}

// Write carries a single string.
type Write struct {
	Text string
}

// ChangeColor carries three ints like a tuple variant.
type ChangeColor struct {
	R, G, B int
}

func (Quit) message()        {}
func (Move) message()        {}
func (Write) message()       {}
func (ChangeColor) message() {}

// Describe dispatches over the variants with a type switch, the moral
// equivalent of a match over the enum.
func Describe(m Message) string {
	switch v := m.(type) {
	case Quit:
		return "quit"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", v.X, v.Y)
	case Write:
		return fmt.Sprintf("write %q", v.Text)
	case ChangeColor:
		return fmt.Sprintf("change color to (%d, %d, %d)", v.R, v.G, v.B)
	default:
		return "unknown message"
	}
}

// Option-shaped values in Go are usually a pointer or the comma-ok pair
// rather than a dedicated type. Find returns the index of target and a
// found flag; the flag plays the Some/None role.
func Find(values []int, target int) (int, bool) {
	for i, v := range values {
		if v == target {
			return i, true
		}
	}
	return 0, false
}
