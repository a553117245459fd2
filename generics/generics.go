// Package generics covers type parameters and interfaces as trait stand-ins.
package generics

import (
	"cmp"
	"fmt"
)

// LargestInt and LargestString are the pre-generics versions: identical
// bodies, different types. They are kept to motivate the generic one.
func LargestInt(list []int) int {
	largest := list[0]
	for _, item := range list {
		if item > largest {
			largest = item
		}
	}
	return largest
}

// LargestString is the same algorithm over strings.
func LargestString(list []string) string {
	largest := list[0]
	for _, item := range list {
		if item > largest {
			largest = item
		}
	}
	return largest
}

// Largest is generic over any ordered type. cmp.Ordered plays the role of
// the PartialOrd bound: without it, the > comparison would not compile.
func Largest[T cmp.Ordered](list []T) T {
	largest := list[0]
	for _, item := range list {
		if item > largest {
			largest = item
		}
	}
	return largest
}

// Point is a generic struct. Both coordinates share one type parameter, so
// a mixed-type literal like Point[int]{X: 5, Y: 4.0} is a compile error,
// exactly as it should be.
type Point[T any] struct {
	X, Y T
}

// Pair shows methods on generic types plus a constrained constructor.
type Pair[T cmp.Ordered] struct {
	First, Second T
}

// NewPair builds a Pair. Type inference usually makes the instantiation
// invisible at the call site.
func NewPair[T cmp.Ordered](first, second T) Pair[T] {
	return Pair[T]{First: first, Second: second}
}

// LargestMember compares the pair's members, possible only because T is
// constrained to be ordered.
func (p Pair[T]) LargestMember() T {
	if p.First >= p.Second {
		return p.First
	}
	return p.Second
}

// Summary is the trait from the chapter as a Go interface. Interfaces are
// satisfied implicitly; no impl block, just matching method sets.
type Summary interface {
	Summarize() string
	SummarizeAuthor() string
}

// NewsArticle gets the "default" Summarize behaviour via defaultSummary
// below, since Go interfaces cannot carry method bodies.
type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

// SummarizeAuthor names the article's author.
func (a NewsArticle) SummarizeAuthor() string {
	return a.Author
}

// Summarize reuses the shared default wording.
func (a NewsArticle) Summarize() string {
	return defaultSummary(a)
}

// defaultSummary is how the default trait method translates: a package
// function over the interface that implementors may call or ignore.
func defaultSummary(s Summary) string {
	return fmt.Sprintf("(Read more from %s...)", s.SummarizeAuthor())
}

// Tweet overrides both methods.
type Tweet struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

// Summarize shows the full text inline instead of the default teaser.
func (t Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.Username, t.Content)
}

// SummarizeAuthor prefixes the handle.
func (t Tweet) SummarizeAuthor() string {
	return "@" + t.Username
}

// Notify accepts any Summary. This is both the `impl Trait` parameter and
// the trait bound collapsed into one spelling, because interface values are
// how Go does both.
func Notify(item Summary) string {
	return "Breaking news! " + item.Summarize()
}

// ReturnsSummarizable shows an interface in return position. Unlike
// impl Trait, a Go function returning an interface may return
// different concrete types from different branches; doing so is usually a
// design smell, which is why this one does not.
func ReturnsSummarizable() Summary {
	return Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}
}
