package store

import "sync"

// Content owns the single editable HomeContent value. Editing follows a
// draft-and-publish cycle: changes accumulate in a working copy and only
// become visible on Save; Cancel never partially applies.
type Content struct {
	mu        sync.Mutex
	published HomeContent
}

// NewContent returns a content store publishing the given initial value.
func NewContent(initial HomeContent) *Content {
	return &Content{published: initial}
}

// Get returns the currently published value.
func (c *Content) Get() HomeContent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.published
}

// Replace swaps the published value directly, used by snapshot import.
func (c *Content) Replace(hc HomeContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = hc
}

// ContentDraft is a working copy of the homepage content. Mutate its fields
// freely; nothing is visible until Save.
type ContentDraft struct {
	HomeContent

	parent *Content
	closed bool
}

// BeginEdit returns a draft seeded from the published value.
func (c *Content) BeginEdit() *ContentDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &ContentDraft{HomeContent: c.published, parent: c}
}

// Save publishes the draft atomically. A draft can be saved or canceled only
// once.
func (d *ContentDraft) Save() error {
	if d.closed {
		return ErrDraftClosed
	}
	d.closed = true
	d.parent.mu.Lock()
	d.parent.published = d.HomeContent
	d.parent.mu.Unlock()
	return nil
}

// Cancel discards the draft without touching the published value.
func (d *ContentDraft) Cancel() {
	d.closed = true
}
