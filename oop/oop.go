// Package oop covers the object-oriented patterns chapter.
//
// Go has no inheritance, so the chapter's three examples translate to the
// three tools Go offers instead: unexported fields for encapsulation,
// interface values for dynamic dispatch, and distinct types for compile-
// time state machines.
package oop

import "fmt"

// AveragedCollection encapsulates its invariant: average always matches
// the list. The fields are unexported, so only these methods can break it,
// and they don't.
type AveragedCollection struct {
	list    []int
	average float64
}

// Add appends a value and refreshes the cached average.
func (c *AveragedCollection) Add(value int) {
	c.list = append(c.list, value)
	c.updateAverage()
}

// Remove pops the last value, reporting whether there was one.
func (c *AveragedCollection) Remove() (int, bool) {
	if len(c.list) == 0 {
		return 0, false
	}
	value := c.list[len(c.list)-1]
	c.list = c.list[:len(c.list)-1]
	c.updateAverage()
	return value, true
}

// Average returns the cached mean.
func (c *AveragedCollection) Average() float64 {
	return c.average
}

func (c *AveragedCollection) updateAverage() {
	if len(c.list) == 0 {
		c.average = 0
		return
	}
	total := 0
	for _, v := range c.list {
		total += v
	}
	c.average = float64(total) / float64(len(c.list))
}

// Drawer is the Draw trait. Any type with a Draw method satisfies it,
// including types defined in other packages that never heard of this one.
type Drawer interface {
	Draw() string
}

// Screen holds a mix of components behind the interface. This is dynamic
// dispatch: each element carries its own Draw.
type Screen struct {
	Components []Drawer
}

// Run draws every component in order.
func (s Screen) Run() []string {
	out := make([]string, 0, len(s.Components))
	for _, c := range s.Components {
		out = append(out, c.Draw())
	}
	return out
}

// Button is one concrete component.
type Button struct {
	Width  int
	Height int
	Label  string
}

// Draw renders the button.
func (b Button) Draw() string {
	return fmt.Sprintf("button %q (%dx%d)", b.Label, b.Width, b.Height)
}

// SelectBox is another, with different data, drawable all the same.
type SelectBox struct {
	Width   int
	Height  int
	Options []string
}

// Draw renders the select box.
func (s SelectBox) Draw() string {
	return fmt.Sprintf("select box with %d options (%dx%d)", len(s.Options), s.Width, s.Height)
}
