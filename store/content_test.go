package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentDraftInvisibleUntilSave(t *testing.T) {
	c := NewContent(DefaultHomeContent())

	draft := c.BeginEdit()
	draft.Title = "Новая пекарня"
	draft.Subtitle = "Совсем новая"

	assert.Equal(t, DefaultHomeContent(), c.Get(), "draft edits must not be published before Save")

	require.NoError(t, draft.Save())
	got := c.Get()
	assert.Equal(t, "Новая пекарня", got.Title)
	assert.Equal(t, "Совсем новая", got.Subtitle)
	assert.Equal(t, DefaultHomeContent().Description, got.Description)
}

func TestContentCancelDiscards(t *testing.T) {
	c := NewContent(DefaultHomeContent())

	draft := c.BeginEdit()
	draft.Title = "lost"
	draft.Cancel()

	assert.Equal(t, DefaultHomeContent(), c.Get())
	assert.ErrorIs(t, draft.Save(), ErrDraftClosed)
}

func TestContentDraftSingleUse(t *testing.T) {
	c := NewContent(HomeContent{Title: "a"})

	draft := c.BeginEdit()
	draft.Title = "b"
	require.NoError(t, draft.Save())

	draft.Title = "c"
	assert.ErrorIs(t, draft.Save(), ErrDraftClosed)
	assert.Equal(t, "b", c.Get().Title)
}

func TestContentReplace(t *testing.T) {
	c := NewContent(HomeContent{Title: "a"})
	c.Replace(HomeContent{Title: "b", Subtitle: "s", Description: "d"})

	assert.Equal(t, HomeContent{Title: "b", Subtitle: "s", Description: "d"}, c.Get())
}
