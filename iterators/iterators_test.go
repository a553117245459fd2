package iterators

import (
	"reflect"
	"testing"
)

func TestGiveawayWithPreference(t *testing.T) {
	store := Inventory{Shirts: []ShirtColor{Blue, Red, Blue}}

	pref := Red
	if got := store.Giveaway(&pref); got != Red {
		t.Errorf("expected the stated preference, got %s", got)
	}
}

func TestGiveawayFallsBackToMostStocked(t *testing.T) {
	store := Inventory{Shirts: []ShirtColor{Blue, Red, Blue}}

	if got := store.Giveaway(nil); got != Blue {
		t.Errorf("expected the most stocked color, got %s", got)
	}
}

func TestMakeCounter(t *testing.T) {
	counter := MakeCounter()
	counter()
	counter()
	if got := counter(); got != 3 {
		t.Errorf("expected the closure to keep its own count, got %d", got)
	}

	// A second counter starts from scratch.
	if got := MakeCounter()(); got != 1 {
		t.Errorf("expected an independent counter, got %d", got)
	}
}

func TestSortByWidth(t *testing.T) {
	list := []Rectangle{
		{Width: 10, Height: 1},
		{Width: 3, Height: 5},
		{Width: 7, Height: 12},
	}

	comparisons := SortByWidth(list)
	if list[0].Width != 3 || list[1].Width != 7 || list[2].Width != 10 {
		t.Errorf("list not sorted by width: %v", list)
	}
	if comparisons == 0 {
		t.Error("expected the captured counter to have been incremented")
	}
}

// TestIteratorDemonstration mirrors the next() walkthrough.
func TestIteratorDemonstration(t *testing.T) {
	it := FromSlice([]int{1, 2, 3})

	for _, want := range []int{1, 2, 3} {
		v, ok := it()
		if !ok || v != want {
			t.Fatalf("expected (%d, true), got (%d, %v)", want, v, ok)
		}
	}
	if _, ok := it(); ok {
		t.Error("expected the iterator to be exhausted")
	}
}

func TestIteratorSum(t *testing.T) {
	if total := Sum(FromSlice([]int{1, 2, 3})); total != 6 {
		t.Errorf("expected 6, got %d", total)
	}
}

func TestIteratorMap(t *testing.T) {
	got := Collect(Map(FromSlice([]int{1, 2, 3}), func(x int) int { return x + 1 }))
	if !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Errorf("expected [2 3 4], got %v", got)
	}
}

func TestFilterBySize(t *testing.T) {
	shoes := []Shoe{
		{Size: 10, Style: "sneaker"},
		{Size: 13, Style: "sandal"},
		{Size: 10, Style: "boot"},
	}

	inMySize := ShoesInSize(shoes, 10)

	want := []Shoe{
		{Size: 10, Style: "sneaker"},
		{Size: 10, Style: "boot"},
	}
	if !reflect.DeepEqual(inMySize, want) {
		t.Errorf("expected %v, got %v", want, inMySize)
	}
}

// Laziness check: Map must not touch elements nobody pulled.
func TestMapIsLazy(t *testing.T) {
	touched := 0
	it := Map(FromSlice([]int{1, 2, 3}), func(x int) int {
		touched++
		return x * 2
	})

	if touched != 0 {
		t.Fatalf("expected no work before the first pull, got %d calls", touched)
	}
	it()
	if touched != 1 {
		t.Errorf("expected exactly one call after one pull, got %d", touched)
	}
}
