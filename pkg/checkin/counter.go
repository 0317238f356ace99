package checkin

import "sort"

// Counter tallies string keys while remembering first-encounter order, so
// ties in TopN come back in the order the keys were first seen
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for key. Empty keys are ignored.
func (c *Counter) Add(key string) {
	if key == "" {
		return
	}
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Seed registers keys at count zero so they appear in TopN output even when
// nothing incremented them
func (c *Counter) Seed(keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := c.counts[key]; !ok {
			c.counts[key] = 0
			c.order = append(c.order, key)
		}
	}
}

// Len returns the number of distinct keys
func (c *Counter) Len() int {
	return len(c.counts)
}

// Total returns the sum of all counts
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Entry is one key with its tally
type Entry struct {
	Key   string
	Count int
}

// TopN returns up to n entries sorted by count descending. Equal counts keep
// first-encounter order. n <= 0 returns all entries.
func (c *Counter) TopN(n int) []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, Entry{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
