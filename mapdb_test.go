package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapdb(t *testing.T) {
	db := NewMapdb()
	defer db.Close()

	assert.True(t, db.Add(Int(2)))
	assert.True(t, db.Add(Int(1)))
	assert.True(t, db.Add(Int(3)))
	assert.False(t, db.Add(Int(2)))

	assert.Equal(t, 3, db.Len())
	assert.True(t, db.Has(Int(1)))
	assert.False(t, db.Has(Int(4)))
	assert.Equal(t, intItems(1, 2, 3), db.Items())

	db.Delete(Int(1))
	assert.False(t, db.Has(Int(1)))
	assert.Equal(t, 2, db.Len())
}
