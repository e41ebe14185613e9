// Package dyngroup implements the dynamic group engine (§3.5, §4.I):
// an ordered, named collection of owned dynamic lists. Grounded on
// original_source/c/src/dynio.c's DYN_GROUP lifecycle and the
// teacher's slice-of-pointers ownership idiom (documentbuilder.go's
// DocumentBuilder, which accumulates owned fields in order).
package dyngroup

import (
	"github.com/SheinbergLab/dgcodec/dynlist"
	"github.com/SheinbergLab/dgcodec/wire"
)

// Group is an ordered, named sequence of owned dynamic lists. List
// names are permitted to repeat; lookup by name is a linear scan (the
// core only promises index access, per §3.5 — name lookup is a
// convenience for callers, not a core guarantee).
type Group struct {
	Name      string
	Increment int
	Lists     []*dynlist.List
}

// NewNamed creates an empty group. capacityHint is advisory only (Go
// slices grow on their own); it matches the constructor shape from
// §4.I so callers porting code from the C API have a direct
// equivalent.
func NewNamed(name string, capacityHint int) *Group {
	inc := capacityHint
	if inc < 1 {
		inc = 1
	}
	g := &Group{Name: name, Increment: inc}
	if capacityHint > 0 {
		g.Lists = make([]*dynlist.List, 0, capacityHint)
	}
	return g
}

// N returns the number of lists currently in the group.
func (g *Group) N() int { return len(g.Lists) }

// AddNewList creates a list of datatype/increment, appends it, and
// returns it for the caller to populate.
func (g *Group) AddNewList(name string, datatype wire.DataType, increment int) *dynlist.List {
	l := dynlist.NewNamed(name, datatype, increment)
	g.Lists = append(g.Lists, l)
	return l
}

// AddExistingList appends list, taking ownership of it without
// copying.
func (g *Group) AddExistingList(list *dynlist.List) {
	g.Lists = append(g.Lists, list)
}

// CopyExistingList deep-copies list and appends the copy.
func (g *Group) CopyExistingList(list *dynlist.List) {
	g.Lists = append(g.Lists, list.Copy())
}

// List returns the list at index i, bounds-checked.
func (g *Group) List(i int) *dynlist.List { return g.Lists[i] }

// Find returns the first list named name, or nil if none matches.
// This is the linear-scan name lookup §3.5 describes as living
// outside the core.
func (g *Group) Find(name string) *dynlist.List {
	for _, l := range g.Lists {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Copy deep-copies every contained list into a new group named
// newName.
func (g *Group) Copy(newName string) *Group {
	c := &Group{Name: newName, Increment: g.Increment, Lists: make([]*dynlist.List, len(g.Lists))}
	for i, l := range g.Lists {
		c.Lists[i] = l.Copy()
	}
	return c
}

// Reset resets every contained list (see dynlist.List.Reset) but
// keeps the group's own list slice intact.
func (g *Group) Reset() {
	for _, l := range g.Lists {
		l.Reset()
	}
}
