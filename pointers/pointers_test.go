package pointers

import "testing"

func TestConsList(t *testing.T) {
	list := Cons(1, Cons(2, Cons(3, nil)))

	if got := list.Len(); got != 3 {
		t.Errorf("expected length 3, got %d", got)
	}
	if got := list.String(); got != "(1, (2, (3, Nil)))" {
		t.Errorf("unexpected rendering %q", got)
	}

	var empty *List
	if empty.Len() != 0 {
		t.Error("expected nil to behave as the empty list")
	}
	if empty.String() != "Nil" {
		t.Errorf("expected Nil, got %q", empty.String())
	}
}

func TestBox(t *testing.T) {
	b := NewBox(5)
	if b.Get() != 5 {
		t.Errorf("expected 5, got %d", b.Get())
	}

	b.Set(10)
	if b.Get() != 10 {
		t.Errorf("expected 10 after Set, got %d", b.Get())
	}
}

func TestSharedCount(t *testing.T) {
	holders := NewShared(0, 3)

	*holders[0].N = 42
	for i, h := range holders {
		if *h.N != 42 {
			t.Errorf("holder %d did not observe the shared write, got %d", i, *h.N)
		}
	}
}

func TestAcquireResource(t *testing.T) {
	var events []string
	log := func(s string) { events = append(events, s) }

	func() {
		release := AcquireResource(log)
		defer release()
		log("working")
	}()

	want := []string{"resource acquired", "working", "resource released"}
	if len(events) != len(want) {
		t.Fatalf("expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, events)
		}
	}
}
