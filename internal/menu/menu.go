// Package menu implements the keyboard driven selection menu.
package menu

import "errors"

// ErrNoItems is returned by New for an empty item list.
var ErrNoItems = errors.New("menu needs at least one item")

// DefaultItems are the entries of the main menu.
var DefaultItems = []string{"NEW FILE", "OPEN FILE", "SETTINGS", "CREDITS"}

// Menu is the selection state: a fixed list of labels and exactly one
// selected index. Navigation wraps around at both ends.
type Menu struct {
	items    []string
	selected int
}

// New returns a menu over a copy of items with the first one selected.
func New(items ...string) (*Menu, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return &Menu{items: append([]string(nil), items...)}, nil
}

// Len is the number of items.
func (m *Menu) Len() int { return len(m.items) }

// Items returns a copy of the labels.
func (m *Menu) Items() []string { return append([]string(nil), m.items...) }

// Selected is the index of the selected item.
func (m *Menu) Selected() int { return m.selected }

// Label returns the selected label.
func (m *Menu) Label() string { return m.items[m.selected] }

// Up selects the previous item, wrapping to the last.
func (m *Menu) Up() {
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
}

// Down selects the next item, wrapping to the first.
func (m *Menu) Down() {
	m.selected = (m.selected + 1) % len(m.items)
}
