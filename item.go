package bst

type (
	// Item is a single element in the tree. The ordering it defines must be
	// a strict total order; the tree's behavior is unspecified otherwise.
	Item interface {
		// Less tests whether the current item is less than the given
		// argument. If !a.Less(b) && !b.Less(a), the tree treats a and b as
		// equal and holds only one of them.
		Less(than Item) bool
	}

	// Int implements Item for ints.
	Int int

	// String implements Item for strings.
	String string
)

// Less returns true if int(a) < int(b).
func (a Int) Less(b Item) bool {
	return a < b.(Int)
}

// Less returns true if string(a) < string(b).
func (a String) Less(b Item) bool {
	return a < b.(String)
}
