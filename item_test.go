package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntLess(t *testing.T) {
	assert.True(t, Int(1).Less(Int(2)))
	assert.False(t, Int(2).Less(Int(1)))
	assert.False(t, Int(2).Less(Int(2)))
}

func TestStringItems(t *testing.T) {
	tree, err := FromItems(String("pear"), String("apple"), String("quince"), String("apple"))
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, []Item{String("apple"), String("pear"), String("quince")}, tree.Items())
	assert.True(t, tree.Contains(String("pear")))
	assert.False(t, tree.Contains(String("plum")))
	assert.Equal(t, "{pear:{apple:{}|{}}|{quince:{}|{}}}", tree.Describe())
}
