// Package scene provides an in-memory scene graph of named transform nodes.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/volview/pkg/math"
)

var (
	// ErrDuplicateNode is returned when adding a node whose name is taken.
	ErrDuplicateNode = errors.New("duplicate node name")

	// ErrUnknownParent is returned when a parent name is not in the graph.
	ErrUnknownParent = errors.New("unknown parent node")
)

// Node is a named transform in the graph.
type Node struct {
	Name string

	local    math.Mat4
	parent   *Node
	children []*Node
}

// Transform returns the node's local transform.
func (n *Node) Transform() math.Mat4 {
	return n.local
}

// SetTransform replaces the node's local transform. Descendant world
// transforms follow automatically since they are derived on demand.
func (n *Node) SetTransform(m math.Mat4) {
	n.local = m
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// World returns the full transform from this node's space to world space.
func (n *Node) World() math.Mat4 {
	if n.parent == nil {
		return n.local
	}
	return n.parent.World().Mul(n.local)
}

// WorldTransform returns the world transform, or false for a root node.
func (n *Node) WorldTransform() (math.Mat4, bool) {
	if n.parent == nil {
		return math.Identity(), false
	}
	return n.World(), true
}

// Graph owns a set of nodes.
type Graph struct {
	nodes map[string]*Node
	order []*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}

// Add inserts a node under parent; an empty parent makes it a root.
func (g *Graph) Add(name, parent string, local math.Mat4) (*Node, error) {
	if _, ok := g.nodes[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}

	n := &Node{Name: name, local: local}
	if parent != "" {
		p, ok := g.nodes[parent]
		if !ok {
			return nil, fmt.Errorf("%w: %q (for %q)", ErrUnknownParent, parent, name)
		}
		n.parent = p
		p.children = append(p.children, n)
	}

	g.nodes[name] = n
	g.order = append(g.order, n)
	return n, nil
}

// Node returns the named node, or nil.
func (g *Graph) Node(name string) *Node {
	return g.nodes[name]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return g.order
}

// At returns the i-th node in insertion order, or nil if out of range.
func (g *Graph) At(i int) *Node {
	if i < 0 || i >= len(g.order) {
		return nil
	}
	return g.order[i]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}
