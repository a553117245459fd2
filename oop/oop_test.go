package oop

import (
	"strings"
	"testing"
)

func TestAveragedCollection(t *testing.T) {
	var c AveragedCollection

	c.Add(1)
	c.Add(2)
	c.Add(3)
	if got := c.Average(); got != 2.0 {
		t.Errorf("expected average 2.0, got %v", got)
	}

	v, ok := c.Remove()
	if !ok || v != 3 {
		t.Fatalf("expected to remove 3, got (%d, %v)", v, ok)
	}
	if got := c.Average(); got != 1.5 {
		t.Errorf("expected average 1.5 after removal, got %v", got)
	}

	c.Remove()
	c.Remove()
	if _, ok := c.Remove(); ok {
		t.Error("expected removal from an empty collection to report false")
	}
	if got := c.Average(); got != 0 {
		t.Errorf("expected zero average when empty, got %v", got)
	}
}

func TestScreenRunsMixedComponents(t *testing.T) {
	screen := Screen{
		Components: []Drawer{
			SelectBox{
				Width:   75,
				Height:  10,
				Options: []string{"Yes", "Maybe", "No"},
			},
			Button{
				Width:  50,
				Height: 10,
				Label:  "OK",
			},
		},
	}

	drawn := screen.Run()
	if len(drawn) != 2 {
		t.Fatalf("expected 2 components drawn, got %d", len(drawn))
	}
	if !strings.Contains(drawn[0], "3 options") {
		t.Errorf("expected the select box first, got %q", drawn[0])
	}
	if !strings.Contains(drawn[1], `"OK"`) {
		t.Errorf("expected the button second, got %q", drawn[1])
	}
}

func TestPostStateMachine(t *testing.T) {
	post := NewPost()

	post.AddText("I ate a salad for lunch today")
	if post.Content() != "" {
		t.Error("draft content must be hidden")
	}

	post.RequestReview()
	if post.Content() != "" {
		t.Error("content under review must be hidden")
	}

	// Text added outside draft is dropped.
	post.AddText(" and a cookie")

	post.Approve()
	if got := post.Content(); got != "I ate a salad for lunch today" {
		t.Errorf("unexpected published content %q", got)
	}
}

func TestPostReject(t *testing.T) {
	post := NewPost()
	post.AddText("first attempt")
	post.RequestReview()
	post.Reject()

	// Back in draft: text is accepted again, content still hidden.
	post.AddText(", revised")
	if post.Content() != "" {
		t.Error("rejected post must be back in draft with hidden content")
	}

	post.RequestReview()
	post.Approve()
	if got := post.Content(); got != "first attempt, revised" {
		t.Errorf("unexpected content after revision %q", got)
	}
}

func TestPostInvalidTransitionsDoNothing(t *testing.T) {
	post := NewPost()
	post.AddText("text")

	// Approving a draft is a no-op, not a panic.
	post.Approve()
	if post.Content() != "" {
		t.Error("a draft must not publish on Approve")
	}

	post.RequestReview()
	post.Approve()
	post.RequestReview() // published posts stay published
	if post.Content() != "text" {
		t.Error("published content must survive stray transitions")
	}
}

func TestTypedPost(t *testing.T) {
	draft := NewDraftPost()
	draft.AddText("I ate a salad for lunch today")

	pending := draft.RequestReview()
	published := pending.Approve()

	if got := published.Content(); got != "I ate a salad for lunch today" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestTypedPostReject(t *testing.T) {
	draft := NewDraftPost()
	draft.AddText("needs work")

	back := draft.RequestReview().Reject()
	back.AddText(", fixed")

	if got := back.RequestReview().Approve().Content(); got != "needs work, fixed" {
		t.Errorf("unexpected content %q", got)
	}
}
