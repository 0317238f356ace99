package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarLength(t *testing.T) {
	assert.Equal(t, 25, barLength(100, 100))
	assert.Equal(t, 12, barLength(50, 100))
	// nonzero counts never round down to an empty bar
	assert.Equal(t, 1, barLength(1, 1000))
	assert.Equal(t, 0, barLength(0, 100))
	assert.Equal(t, 0, barLength(5, 0))
}
