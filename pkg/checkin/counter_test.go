package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterTopN(t *testing.T) {
	c := NewCounter()
	for _, key := range []string{"a", "b", "a", "c", "b", "a"} {
		c.Add(key)
	}

	top := c.TopN(2)
	require.Len(t, top, 2)
	assert.Equal(t, Entry{Key: "a", Count: 3}, top[0])
	assert.Equal(t, Entry{Key: "b", Count: 2}, top[1])
}

func TestCounterTiesKeepFirstEncounterOrder(t *testing.T) {
	c := NewCounter()
	for _, key := range []string{"zebra", "apple", "zebra", "apple"} {
		c.Add(key)
	}

	top := c.TopN(0)
	require.Len(t, top, 2)
	assert.Equal(t, "zebra", top[0].Key)
	assert.Equal(t, "apple", top[1].Key)
}

func TestCounterIgnoresEmptyKeys(t *testing.T) {
	c := NewCounter()
	c.Add("")
	c.Add("x")
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Total())
}

func TestCounterSeed(t *testing.T) {
	c := NewCounter()
	c.Seed("Jan", "Feb", "Mar")
	c.Add("Feb")

	top := c.TopN(0)
	require.Len(t, top, 3)
	assert.Equal(t, Entry{Key: "Feb", Count: 1}, top[0])
	// zero-count seeds keep their seeded order
	assert.Equal(t, "Jan", top[1].Key)
	assert.Equal(t, "Mar", top[2].Key)
}
