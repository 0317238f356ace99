package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDining(t *testing.T) {
	assert.True(t, IsDining(13000))
	assert.True(t, IsDining(13035))
	assert.True(t, IsDining(13999))
	assert.False(t, IsDining(12999))
	assert.False(t, IsDining(14000))
	assert.False(t, IsDining(0))
}

func TestDiningLabel(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{13035, "Coffee & Cafe"},
		{13145, "Fast Food"},
		{13009, "Bars"},
		{13002, "Bakery & Dessert"},
		{13029, "Brewery & Winery"},
		{13263, "Restaurants"},
		{14000, ""},
		{0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DiningLabel(tt.code), "code %d", tt.code)
	}
}
