package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	id := int64(7)
	orig := Banner{ID: &id, Description: "Sale today", Link: "https://x.com", Timer: 5, IsVisible: true}

	t.Run("hide keeps other fields", func(t *testing.T) {
		got := Merge(orig, Hide())
		assert.Equal(t, Banner{ID: &id, Description: "Sale today", Link: "https://x.com", Timer: 5}, got)
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.Equal(t, orig, Merge(orig, Patch{}))
	})

	t.Run("full patch overwrites everything but id", func(t *testing.T) {
		next := Banner{Description: "New", Link: "www.y.com", Timer: 0, IsVisible: false}
		got := Merge(orig, PatchFromBanner(next))
		require.NotNil(t, got.ID)
		assert.Equal(t, int64(7), *got.ID)
		assert.Equal(t, "New", got.Description)
		assert.Equal(t, "www.y.com", got.Link)
		assert.Equal(t, 0, got.Timer)
		assert.False(t, got.IsVisible)
	})
}

func TestClone(t *testing.T) {
	var nilBanner *Banner
	assert.Nil(t, nilBanner.Clone())

	id := int64(1)
	b := &Banner{ID: &id, Description: "a"}
	c := b.Clone()
	*c.ID = 2
	c.Description = "b"
	assert.Equal(t, int64(1), *b.ID)
	assert.Equal(t, "a", b.Description)
}
