// Package store holds the backing stores plot objects are persisted to: a
// tree of named groups, each holding named entries. Writing an entry whose
// name already exists in the group replaces it.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HamletTheHamster/plothelper/plotobj"
)

var (
	ErrNotFound = errors.New("store: no such entry")
	ErrClosed   = errors.New("store: closed")
)

// Store is a hierarchical namespace of groups.
type Store interface {
	// Group returns the group at path, creating missing segments.
	// The empty path is the root group.
	Group(path string) (Group, error)
	// Close flushes the store. The store is unusable afterwards.
	Close() error
}

// Group is a named set of entries and sub-groups.
type Group interface {
	Name() string
	// Put writes obj under obj.Name(), replacing an entry of the same name.
	Put(obj plotobj.Object) error
	// Get returns the entry called name or ErrNotFound.
	Get(name string) (plotobj.Object, error)
	// Names returns entry names in first-write order.
	Names() []string
	// Groups returns sub-group names in creation order.
	Groups() []string
}

// SplitPath splits a slash separated path into its segments, dropping
// empty and "." segments.
func SplitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s == "" || s == "." {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// node is the in-memory group tree shared by all stores.
type node struct {
	name    string
	entries []*entry
	groups  []*node
}

// entry holds a live object (Mem) or a converted ROOT object (RootFile).
type entry struct {
	name string
	obj  plotobj.Object
	raw  any
}

func (n *node) child(name string) *node {
	for _, g := range n.groups {
		if g.name == name {
			return g
		}
	}
	return nil
}

func (n *node) mkdirAll(segs []string) *node {
	cur := n
	for _, s := range segs {
		next := cur.child(s)
		if next == nil {
			next = &node{name: s}
			cur.groups = append(cur.groups, next)
		}
		cur = next
	}
	return cur
}

func (n *node) put(e *entry) {
	for i, old := range n.entries {
		if old.name == e.name {
			n.entries[i] = e
			return
		}
	}
	n.entries = append(n.entries, e)
}

func (n *node) lookup(name string) *entry {
	for _, e := range n.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (n *node) names() []string {
	names := make([]string, len(n.entries))
	for i, e := range n.entries {
		names[i] = e.name
	}
	return names
}

func (n *node) groupNames() []string {
	names := make([]string, len(n.groups))
	for i, g := range n.groups {
		names[i] = g.name
	}
	return names
}

func checkName(obj plotobj.Object) error {
	if obj == nil {
		return fmt.Errorf("store: nil object")
	}
	name := obj.Name()
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("store: invalid entry name %q", name)
	}
	return nil
}
