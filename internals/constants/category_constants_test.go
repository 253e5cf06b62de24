package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsValidCategory(c), c)
	}
	assert.False(t, IsValidCategory("sports"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("News")) // exact match only
}
