package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

func TestCampaignUnlockChain(t *testing.T) {
	c := NewCampaign([]content.Level{
		{ID: "one"},
		{ID: "two", Unlock: "one"},
	})

	assert.True(t, c.Unlocked("one"))
	assert.False(t, c.Unlocked("two"))
	assert.False(t, c.Unlocked("three"), "unknown levels are locked")

	assert.False(t, c.Record(Snapshot{Level: "one", Status: StatusFailed}))
	assert.False(t, c.Record(Snapshot{Status: StatusComplete}), "free play is not recorded")
	assert.True(t, c.Record(Snapshot{Level: "one", Status: StatusComplete}))
	assert.False(t, c.Record(Snapshot{Level: "one", Status: StatusComplete}), "only the first completion counts")

	assert.True(t, c.Completed("one"))
	assert.True(t, c.Unlocked("two"))
}

func TestCampaignSetLevels(t *testing.T) {
	c := NewCampaign([]content.Level{{ID: "one"}})
	c.Record(Snapshot{Level: "one", Status: StatusComplete})
	assert.False(t, c.Unlocked("three"))

	c.SetLevels([]content.Level{
		{ID: "one"},
		{ID: "three", Unlock: "one"},
	})
	assert.True(t, c.Completed("one"))
	assert.True(t, c.Unlocked("three"))
}
