package oop

// The type-safe rewrite: each state is its own type and invalid calls
// simply do not exist. A DraftPost has no Content method at all, so
// showing unpublished content is a compile error rather than an empty
// string at runtime.

// DraftPost accumulates text.
type DraftPost struct {
	content string
}

// NewDraftPost starts a typed draft.
func NewDraftPost() *DraftPost {
	return &DraftPost{}
}

// AddText appends to the draft.
func (p *DraftPost) AddText(text string) {
	p.content += text
}

// RequestReview consumes the draft and yields a post awaiting review.
func (p *DraftPost) RequestReview() *PendingReviewPost {
	return &PendingReviewPost{content: p.content}
}

// PendingReviewPost can only be approved or rejected.
type PendingReviewPost struct {
	content string
}

// Approve yields the published post.
func (p *PendingReviewPost) Approve() *PublishedPost {
	return &PublishedPost{content: p.content}
}

// Reject returns the text to draft.
func (p *PendingReviewPost) Reject() *DraftPost {
	return &DraftPost{content: p.content}
}

// PublishedPost is the only state with readable content.
type PublishedPost struct {
	content string
}

// Content returns the published text.
func (p *PublishedPost) Content() string {
	return p.content
}
