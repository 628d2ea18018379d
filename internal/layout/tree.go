package layout

import (
	"errors"
	"fmt"
)

// NodeID addresses a node in a Tree. IDs stay valid until the node is
// removed; a removed ID may be handed out again by a later NewNode.
type NodeID int32

// NoNode is the ID returned where no node exists.
const NoNode NodeID = -1

var (
	// ErrUnknownNode is returned when an ID does not address a live node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrAlreadyAttached is returned when attaching a node that has a parent.
	ErrAlreadyAttached = errors.New("node already has a parent")

	// ErrCycle is returned when attaching a node under its own descendant.
	ErrCycle = errors.New("attachment would create a cycle")
)

// node is one arena slot.
type node struct {
	style    Style
	layout   Layout
	children []NodeID
	parent   NodeID // Read-only back-reference for position composition
	live     bool
}

// Tree owns every node of one or more layout hierarchies.
// A node's children are removed with it. Trees are not safe for
// concurrent use.
type Tree struct {
	nodes []node
	free  []NodeID
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewNode creates a detached node with the given style.
// Detached nodes act as roots until attached with AddChild.
func (t *Tree) NewNode(style Style) NodeID {
	n := node{style: style, parent: NoNode, live: true}
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) node(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].live {
		return nil
	}
	return &t.nodes[id]
}

// Has reports whether id addresses a live node.
func (t *Tree) Has(id NodeID) bool {
	return t.node(id) != nil
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes) - len(t.free)
}

// AddChild appends children to parent in declaration order.
// Each child must be live, detached, and not an ancestor of parent.
func (t *Tree) AddChild(parent NodeID, children ...NodeID) error {
	p := t.node(parent)
	if p == nil {
		return fmt.Errorf("adding children to %d: %w", parent, ErrUnknownNode)
	}
	for _, id := range children {
		c := t.node(id)
		if c == nil {
			return fmt.Errorf("adding child %d to %d: %w", id, parent, ErrUnknownNode)
		}
		if c.parent != NoNode {
			return fmt.Errorf("adding child %d to %d: %w", id, parent, ErrAlreadyAttached)
		}
		if t.isAncestor(id, parent) {
			return fmt.Errorf("adding child %d to %d: %w", id, parent, ErrCycle)
		}
		c.parent = parent
		p.children = append(p.children, id)
	}
	return nil
}

// isAncestor reports whether a is b or one of b's ancestors.
func (t *Tree) isAncestor(a, b NodeID) bool {
	for id := b; id != NoNode; id = t.nodes[id].parent {
		if id == a {
			return true
		}
	}
	return false
}

// RemoveChild detaches child from parent, preserving the order of the
// remaining children. The child and its subtree stay alive as a detached
// hierarchy. Returns true if the child was found and removed.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	p := t.node(parent)
	if p == nil {
		return false
	}
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			t.nodes[child].parent = NoNode
			return true
		}
	}
	return false
}

// Remove detaches id from its parent and frees it with its whole subtree.
func (t *Tree) Remove(id NodeID) {
	n := t.node(id)
	if n == nil {
		return
	}
	if n.parent != NoNode {
		t.RemoveChild(n.parent, id)
	}
	t.free = t.release(id, t.free)
}

func (t *Tree) release(id NodeID, free []NodeID) []NodeID {
	for _, c := range t.nodes[id].children {
		free = t.release(c, free)
	}
	t.nodes[id] = node{parent: NoNode}
	return append(free, id)
}

// Parent returns the parent of id, or NoNode for roots and unknown IDs.
func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.node(id); n != nil {
		return n.parent
	}
	return NoNode
}

// Children returns the children of id in declaration order.
// The returned slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	if n := t.node(id); n != nil {
		return n.children
	}
	return nil
}

// Style returns the declarations of id.
func (t *Tree) Style(id NodeID) Style {
	if n := t.node(id); n != nil {
		return n.style
	}
	return Style{}
}

// SetStyle replaces the declarations of id. The change takes effect on the next pass.
func (t *Tree) SetStyle(id NodeID, style Style) {
	if n := t.node(id); n != nil {
		n.style = style
	}
}

// Layout returns the values computed for id by the last pass.
func (t *Tree) Layout(id NodeID) Layout {
	if n := t.node(id); n != nil {
		return n.layout
	}
	return Layout{}
}

// Rect returns the resolved box of id relative to its parent.
func (t *Tree) Rect(id NodeID) Rect {
	return t.Layout(id).Rect
}

// AbsoluteRect returns the resolved box of id in viewport coordinates,
// composing positions through the parent chain.
func (t *Tree) AbsoluteRect(id NodeID) Rect {
	n := t.node(id)
	if n == nil {
		return Rect{}
	}
	r := n.layout.Rect
	for p := n.parent; p != NoNode; p = t.nodes[p].parent {
		r = r.Translate(t.nodes[p].layout.Rect.X, t.nodes[p].layout.Rect.Y)
	}
	return r
}

// Walk visits root and its descendants depth-first in pre-order.
// Returning false from fn skips the node's children.
func (t *Tree) Walk(root NodeID, fn func(id NodeID) bool) {
	if t.node(root) == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range t.nodes[root].children {
		t.Walk(c, fn)
	}
}

// Roots returns every live node without a parent, in ID order.
func (t *Tree) Roots() []NodeID {
	var roots []NodeID
	for i := range t.nodes {
		if t.nodes[i].live && t.nodes[i].parent == NoNode {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}
