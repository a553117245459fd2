package oop

// The blog post state machine. A post starts as a draft, goes through
// review, and only shows content once published. The state lives behind an
// unexported interface so transitions can only happen through the Post's
// methods, which is the whole trick of the state pattern.

// Post is a blog post whose behaviour depends on its current state.
type Post struct {
	state   state
	content string
}

// NewPost starts in draft.
func NewPost() *Post {
	return &Post{state: draft{}}
}

// AddText appends to the draft. Only drafts accept text; in every other
// state the call is ignored, matching the chapter's final behaviour.
func (p *Post) AddText(text string) {
	if p.state.allowsText() {
		p.content += text
	}
}

// Content is empty until the post is published.
func (p *Post) Content() string {
	return p.state.content(p)
}

// RequestReview moves draft into review; elsewhere it does nothing.
func (p *Post) RequestReview() {
	p.state = p.state.requestReview()
}

// Approve publishes a post under review; elsewhere it does nothing.
func (p *Post) Approve() {
	p.state = p.state.approve()
}

// Reject sends a post under review back to draft.
func (p *Post) Reject() {
	p.state = p.state.reject()
}

// state is the State trait. Each transition returns the next state,
// defaulting to "stay where you are".
type state interface {
	requestReview() state
	approve() state
	reject() state
	content(p *Post) string
	allowsText() bool
}

type draft struct{}

func (draft) requestReview() state   { return pendingReview{} }
func (d draft) approve() state       { return d }
func (d draft) reject() state        { return d }
func (draft) content(p *Post) string { return "" }
func (draft) allowsText() bool       { return true }

type pendingReview struct{}

func (p pendingReview) requestReview() state { return p }
func (pendingReview) approve() state         { return published{} }
func (pendingReview) reject() state          { return draft{} }
func (pendingReview) content(p *Post) string { return "" }
func (pendingReview) allowsText() bool       { return false }

type published struct{}

func (p published) requestReview() state { return p }
func (p published) approve() state       { return p }
func (p published) reject() state        { return p }
func (published) content(p *Post) string { return p.content }
func (published) allowsText() bool       { return false }
