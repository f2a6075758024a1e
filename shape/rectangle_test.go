package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleArea(t *testing.T) {
	tests := []struct {
		width, height, want float64
	}{
		{10, 20, 200},
		{0, 5, 0},
		{0, 0, 0},
		{3.5, 2, 7},
	}

	for _, tt := range tests {
		r := NewRectangle(tt.width, tt.height)
		assert.Equal(t, tt.width, r.Width)
		assert.Equal(t, tt.height, r.Height)
		assert.Equal(t, tt.want, r.Area())
	}
}

func TestRectangleAreaRecomputed(t *testing.T) {
	r := NewRectangle(2, 3)
	assert.Equal(t, 6.0, r.Area())

	r.Width = 10
	assert.Equal(t, 30.0, r.Area())
}
