package bst

import "sort"

type (
	// Mapdb is a built-in-map-backed item set. It is the baseline the
	// benchmark command races the tree against, and the oracle the property
	// tests compare traversal output with. Item values must be comparable
	// with == (Int and String are); equality by == must agree with
	// Less-equality for the results to be meaningful.
	Mapdb struct {
		mp map[Item]struct{}
	}
)

func NewMapdb() *Mapdb {
	return &Mapdb{mp: make(map[Item]struct{})}
}

// Add stores the item and returns true, or returns false if it was already
// present.
func (db *Mapdb) Add(item Item) bool {
	if _, ok := db.mp[item]; ok {
		return false
	}
	db.mp[item] = struct{}{}
	return true
}

func (db *Mapdb) Has(item Item) bool {
	_, ok := db.mp[item]
	return ok
}

func (db *Mapdb) Delete(item Item) {
	delete(db.mp, item)
}

func (db *Mapdb) Len() int {
	return len(db.mp)
}

// Items returns the stored items in ascending order. The map holds no
// order, so every call sorts afresh.
func (db *Mapdb) Items() []Item {
	items := make([]Item, 0, len(db.mp))
	for item := range db.mp {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
	return items
}

func (db *Mapdb) Close() {
	db.mp = nil
}
