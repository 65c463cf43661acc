// Package bst implements an unbalanced binary search tree whose branches
// terminate in an explicit empty sentinel instead of nil pointers. Every
// position in the tree is either occupied or empty, so operations dispatch
// polymorphically on the node and callers never test for nil.
//
// The tree rejects duplicates: inserting an item that is already present is
// a normal false outcome, not an error. There is no deletion and no
// rebalancing, so a monotonic insertion order degenerates the tree into a
// chain.
//
// Write operations are not safe for concurrent use; each Tree assumes a
// single exclusive owner.
package bst

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned by FromItems when no items are given, since no
// seed for the root exists.
var ErrEmptyInput = errors.New("bst: empty input")

type (
	// subtree is the contract every tree position satisfies. A position is
	// either an occupied *node or the empty sentinel; the sentinel answers
	// every operation with the trivial case, which is what lets the
	// recursive methods run off the end of a branch without nil checks.
	//
	// insert returns the subtree that must occupy the caller's slot after
	// the operation: the sentinel returns a fresh leaf, an occupied node
	// returns itself. The caller always stores the result back, so the
	// empty-to-occupied transition is a plain slot replacement.
	subtree interface {
		insert(item Item) (subtree, bool)
		contains(item Item) bool
		min() Item
		max() Item
		each(fn func(item Item) bool) bool
		appendItems(out []Item) []Item
		describe(b *strings.Builder)
		depth() int
	}

	// node is an occupied position: one item and two child subtrees, each
	// occupied or empty.
	node struct {
		item  Item
		left  subtree
		right subtree
	}

	// emptyNode is the sentinel. It carries no state, so a single value is
	// shared by every empty position in every tree.
	emptyNode struct{}

	// Tree is an ordered set of Items. The zero value is not usable; create
	// trees with New, NewLeaf or FromItems.
	Tree struct {
		root   subtree
		length int
	}
)

var empty emptyNode

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: empty}
}

// NewLeaf returns a tree holding the single given item.
func NewLeaf(item Item) *Tree {
	return &Tree{root: leaf(item), length: 1}
}

// FromItems builds a tree seeded with the first item and inserts the rest
// in the given order. The resulting shape depends on that order; the stored
// set does not. Returns ErrEmptyInput when called with no items.
func FromItems(items ...Item) (*Tree, error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	t := NewLeaf(items[0])
	for _, item := range items {
		t.Insert(item)
	}
	return t, nil
}

// Insert adds item to the tree. It returns true if the item was added and
// false if an equal item was already present, in which case the tree is
// unchanged.
func (t *Tree) Insert(item Item) bool {
	root, added := t.root.insert(item)
	t.root = root
	if added {
		t.length++
	}
	return added
}

// Contains reports whether an item equal to the given one is in the tree.
func (t *Tree) Contains(item Item) bool {
	return t.root.contains(item)
}

// Items returns all stored items in ascending order. The slice is freshly
// allocated on every call.
func (t *Tree) Items() []Item {
	return t.root.appendItems(make([]Item, 0, t.length))
}

// Each calls fn for every item in ascending order until fn returns false.
func (t *Tree) Each(fn func(item Item) bool) {
	t.root.each(fn)
}

// Len returns the number of stored items.
func (t *Tree) Len() int {
	return t.length
}

// Depth returns the number of occupied nodes on the longest path from the
// root down to a sentinel. An empty tree has depth 0; inserting ascending
// keys grows depth linearly since nothing rebalances.
func (t *Tree) Depth() int {
	return t.root.depth()
}

// Min returns the smallest item in the tree, or nil if the tree is empty.
func (t *Tree) Min() Item {
	return t.root.min()
}

// Max returns the largest item in the tree, or nil if the tree is empty.
func (t *Tree) Max() Item {
	return t.root.max()
}

// Describe renders the tree shape as nested brackets, {item:left|right} for
// an occupied node and {} for the sentinel. Diagnostic only; the output is
// deterministic for a given shape.
func (t *Tree) Describe() string {
	var b strings.Builder
	t.root.describe(&b)
	return b.String()
}

// leaf returns an occupied node with both children empty.
func leaf(item Item) *node {
	return &node{item: item, left: empty, right: empty}
}

// node

func (n *node) insert(item Item) (subtree, bool) {
	var added bool
	switch {
	case item.Less(n.item):
		n.left, added = n.left.insert(item)
	case n.item.Less(item):
		n.right, added = n.right.insert(item)
	default:
		// Already present.
		return n, false
	}
	return n, added
}

func (n *node) contains(item Item) bool {
	switch {
	case item.Less(n.item):
		return n.left.contains(item)
	case n.item.Less(item):
		return n.right.contains(item)
	default:
		return true
	}
}

func (n *node) min() Item {
	if m := n.left.min(); m != nil {
		return m
	}
	return n.item
}

func (n *node) max() Item {
	if m := n.right.max(); m != nil {
		return m
	}
	return n.item
}

func (n *node) each(fn func(item Item) bool) bool {
	if !n.left.each(fn) {
		return false
	}
	if !fn(n.item) {
		return false
	}
	return n.right.each(fn)
}

func (n *node) appendItems(out []Item) []Item {
	out = n.left.appendItems(out)
	out = append(out, n.item)
	return n.right.appendItems(out)
}

func (n *node) describe(b *strings.Builder) {
	fmt.Fprintf(b, "{%v:", n.item)
	n.left.describe(b)
	b.WriteByte('|')
	n.right.describe(b)
	b.WriteByte('}')
}

func (n *node) depth() int {
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// emptyNode

// The sentinel cannot hold the item itself, so insert hands a fresh leaf
// back to the parent, which stores it in place of the sentinel.
func (emptyNode) insert(item Item) (subtree, bool) {
	return leaf(item), true
}

// Search exhausted this branch, so the item is definitively absent.
func (emptyNode) contains(Item) bool { return false }

func (emptyNode) min() Item { return nil }

func (emptyNode) max() Item { return nil }

func (emptyNode) each(func(item Item) bool) bool { return true }

func (emptyNode) appendItems(out []Item) []Item { return out }

func (emptyNode) describe(b *strings.Builder) { b.WriteString("{}") }

func (emptyNode) depth() int { return 0 }
