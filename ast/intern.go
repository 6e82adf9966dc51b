/*
File    : parselatex/ast/intern.go

The content-addressable intern pool (spec §3 "Intern pool", §4.6). A Pool
maps a structural key derived from (op, arity, child ids, leaf payload,
optional bracket pair) to a dense integer id, so that structurally
identical subtrees anywhere in a parse share the same id.

Grounded on the teacher's scope.Scope (scope/scope.go): that type is a
map-backed store keyed by name with a parent chain; this one is a
map-backed store keyed by structure with no parent chain (the pool is
flat and append-only, per spec §5 "the intern pool grows monotonically
for the lifetime of a Model instance").
*/
package ast

import (
	"strconv"
	"strings"
)

// Pool is a content-addressable store of interned Nodes, indexed from 1
// (index 0 is reserved, matching spec §3).
type Pool struct {
	entries []*Node
	index   map[string]int
}

// NewPool creates an empty intern pool.
func NewPool() *Pool {
	return &Pool{
		entries: make([]*Node, 1), // entries[0] is the reserved slot
		index:   make(map[string]int),
	}
}

// Intern recursively interns n and its children bottom-up, returning the
// id assigned to n. Calling Intern twice with structurally Equal trees
// returns the same id both times, including for subtrees nested at
// different positions.
func (p *Pool) Intern(n *Node) int {
	if n == nil {
		return 0
	}

	var childIDs []int
	var canonicalChildren []*Node
	if !n.IsLeaf() {
		childIDs = make([]int, len(n.Children))
		canonicalChildren = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			id := p.Intern(c)
			childIDs[i] = id
			canonicalChildren[i] = p.entries[id]
		}
	}

	key := structuralKey(n, childIDs)
	if id, ok := p.index[key]; ok {
		return id
	}

	canonical := n.Clone()
	canonical.Children = canonicalChildren
	id := len(p.entries)
	p.entries = append(p.entries, canonical)
	p.index[key] = id
	return id
}

// Node reconstructs a fresh, independent deep copy of the tree rooted at
// id, or nil if id is out of range. The pool's internal DAG (in which
// shared subtrees share *Node pointers) is never exposed directly: every
// call gets its own copy, matching spec §3 "Ownership".
func (p *Pool) Node(id int) *Node {
	if id <= 0 || id >= len(p.entries) {
		return nil
	}
	return p.entries[id].Clone()
}

// Len reports how many distinct structural entries the pool holds (not
// counting the reserved index-0 slot).
func (p *Pool) Len() int {
	return len(p.entries) - 1
}

// structuralKey builds the content-addressing key for n given the
// already-resolved ids of its (interned) children.
func structuralKey(n *Node, childIDs []int) string {
	var b strings.Builder
	b.WriteString(string(n.Op))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(n.Arity()))
	b.WriteByte('|')
	if n.IsLeaf() {
		b.WriteString(n.Payload)
		// NUM leaves additionally key on NumberFormat: "1" (integer) and
		// "1." (decimal, trailing separator with no digits) must not
		// collide just because their lexeme happens to match.
		if n.Op == OpNum {
			b.WriteByte('|')
			b.WriteString(string(n.NumberFormat))
		}
	} else {
		for i, id := range childIDs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(id))
		}
	}
	if n.hasBracketContext() {
		b.WriteByte('|')
		b.WriteString(n.LBrk)
		b.WriteByte(0)
		b.WriteString(n.RBrk)
	}
	return b.String()
}
