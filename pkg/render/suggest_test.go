package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestClosestName(t *testing.T) {
	got, ok := Suggest("gri")
	assert.True(t, ok)
	assert.Equal(t, "grid", got)
}
