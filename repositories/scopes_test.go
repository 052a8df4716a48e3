package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	in := []uint{3, 1, 3, 2, 1}
	assert.Equal(t, []uint{1, 2, 3}, uniqueIDs(in))
	assert.Equal(t, []uint{3, 1, 3, 2, 1}, in, "input is left alone")
	assert.Empty(t, uniqueIDs(nil))
}
