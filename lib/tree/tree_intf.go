package tree

import "github.com/benz9527/xtree/lib/infra"

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	default:
	}
	return "RBColor(?)"
}

// Node is the read-only view of a tree node.
// A missing child is returned as a nil interface, never as a typed nil.
type Node[K infra.OrderedKey] interface {
	Key() K
	Left() Node[K]
	Right() Node[K]
}

type AVLNode[K infra.OrderedKey] interface {
	Node[K]
	// Height of the subtree rooted here, leaf is 1.
	Height() int
}

type RBNode[K infra.OrderedKey] interface {
	Node[K]
	Color() RBColor
}

// Edge is a parent to child link.
type Edge[K infra.OrderedKey] struct {
	Parent K
	Child  K
}

// OrderedSet is the contract shared by the unbalanced, AVL and
// left-leaning red-black trees. None of them is safe for concurrent use,
// and the key slices handed out by the traversals are copies.
type OrderedSet[K infra.OrderedKey] interface {
	Name() string
	Len() int64
	IsEmpty() bool
	Root() Node[K]
	// Insert returns false if key is already present or unordered.
	Insert(key K) bool
	// Remove returns false if key is absent or unordered.
	Remove(key K) bool
	RemoveMin() (K, bool)
	RemoveMax() (K, bool)
	Contains(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	// Height counts the edges on the longest root to leaf path.
	Height() int
	PreOrder() []K
	InOrder() []K
	PostOrder() []K
	LevelOrder() []K
	// Ceil returns the smallest key greater than or equal to key.
	Ceil(key K) (K, bool)
	// Floor returns the largest key less than or equal to key.
	Floor(key K) (K, bool)
	Connections() []Edge[K]
	Foreach(action func(idx int64, key K) bool)
	Release()
}
