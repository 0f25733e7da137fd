package tree

import "github.com/benz9527/xtree/lib/infra"

type avlNode[K infra.OrderedKey] struct {
	left   *avlNode[K]
	right  *avlNode[K]
	key    K
	height int
}

func (node *avlNode[K]) Key() K {
	return node.key
}

func (node *avlNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *avlNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// Height of an empty subtree is 0.
func (node *avlNode[K]) Height() int {
	if node == nil {
		return 0
	}
	return node.height
}

func (node *avlNode[K]) updateHeight() {
	node.height = 1 + max(node.left.Height(), node.right.Height())
}

func (node *avlNode[K]) balanceFactor() int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

/*
		 |                         |
		 X                         L
		/ \    rightRotate(X)     / \
	   L   R   ============>    Ll   X
	  / \                           / \
	Ll   Lr                       Lr   R

X is the lower node after the rotation, so its height is refreshed first.
*/
func (node *avlNode[K]) rightRotate() *avlNode[K] {
	if node == nil || node.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] right rotate node x is nil or x.left is nil")
	}
	y := node.left
	node.left, y.right = y.right, node
	node.updateHeight()
	y.updateHeight()
	return y
}

/*
		 |                         |
		 X                         R
		/ \    leftRotate(X)      / \
	   L   R   ============>     X   Rr
		  / \                   / \
		Rl   Rr                L   Rl
*/
func (node *avlNode[K]) leftRotate() *avlNode[K] {
	if node == nil || node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[avl] left rotate node x is nil or x.right is nil")
	}
	y := node.right
	node.right, y.left = y.left, node
	node.updateHeight()
	y.updateHeight()
	return y
}

// rebalance expects the height of node to be fresh.
//
// LL: bf > 1 and bf(L) >= 0, rightRotate(X).
// LR: bf > 1 and bf(L) < 0, leftRotate(L) then rightRotate(X).
// RR: bf < -1 and bf(R) <= 0, leftRotate(X).
// RL: bf < -1 and bf(R) > 0, rightRotate(R) then leftRotate(X).
func (node *avlNode[K]) rebalance() *avlNode[K] {
	switch bf := node.balanceFactor(); {
	case bf > 1:
		if /* LR */ node.left.balanceFactor() < 0 {
			node.left = node.left.leftRotate()
		}
		return node.rightRotate()
	case bf < -1:
		if /* RL */ node.right.balanceFactor() > 0 {
			node.right = node.right.rightRotate()
		}
		return node.leftRotate()
	default:
	}
	return node
}

// insert returns the new root of the subtree and whether key was added.
func (node *avlNode[K]) insert(key K) (*avlNode[K], bool) {
	if node == nil {
		return &avlNode[K]{key: key, height: 1}, true
	}

	var added bool
	res, _ := infra.Compare(key, node.key)
	if /* equal */ res == 0 {
		return node, false
	} else /* less */ if res < 0 {
		node.left, added = node.left.insert(key)
	} else /* greater */ {
		node.right, added = node.right.insert(key)
	}
	if !added {
		return node, false
	}
	node.updateHeight()
	return node.rebalance(), true
}

func (node *avlNode[K]) remove(key K) (*avlNode[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	res, _ := infra.Compare(key, node.key)
	if res < 0 {
		node.left, removed = node.left.remove(key)
	} else if res > 0 {
		node.right, removed = node.right.remove(key)
	} else {
		switch {
		case node.left == nil:
			r := node.right
			node.right = nil
			return r, true
		case node.right == nil:
			l := node.left
			node.left = nil
			return l, true
		default:
			node.key, node.right = node.right.detachMin()
			removed = true
		}
	}
	if !removed {
		return node, false
	}
	node.updateHeight()
	return node.rebalance(), true
}

// detachMin returns the smallest key of the subtree and the subtree
// without it, rebalanced on the way up.
func (node *avlNode[K]) detachMin() (K, *avlNode[K]) {
	if node.left == nil {
		r := node.right
		node.right = nil
		return node.key, r
	}
	var key K
	key, node.left = node.left.detachMin()
	node.updateHeight()
	return key, node.rebalance()
}

type avlTree[K infra.OrderedKey] struct {
	root  *avlNode[K]
	count int64
	ext   extremes[K]
	opt   treeOption
}

func (tree *avlTree[K]) Name() string {
	return tree.opt.name
}

func (tree *avlTree[K]) Len() int64 {
	return tree.count
}

func (tree *avlTree[K]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *avlTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *avlTree[K]) Insert(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "insert", key)
		return false
	}
	var added bool
	if tree.root, added = tree.root.insert(key); !added {
		return false
	}
	tree.count++
	tree.ext.inserted(key)
	return true
}

func (tree *avlTree[K]) Remove(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "remove", key)
		return false
	}
	var removed bool
	if tree.root, removed = tree.root.remove(key); !removed {
		return false
	}
	tree.count--
	tree.ext.removed(key, tree.Root())
	return true
}

func (tree *avlTree[K]) RemoveMin() (K, bool) {
	return removeExtreme[K](tree, false)
}

func (tree *avlTree[K]) RemoveMax() (K, bool) {
	return removeExtreme[K](tree, true)
}

func (tree *avlTree[K]) Contains(key K) bool {
	return search(tree.Root(), key)
}

func (tree *avlTree[K]) Min() (K, bool) {
	return tree.ext.get(false)
}

func (tree *avlTree[K]) Max() (K, bool) {
	return tree.ext.get(true)
}

// Height is read from the root, O(1).
func (tree *avlTree[K]) Height() int {
	if tree.root == nil {
		return 0
	}
	return tree.root.height - 1
}

func (tree *avlTree[K]) PreOrder() []K {
	return preOrder(tree.Root(), tree.count)
}

func (tree *avlTree[K]) InOrder() []K {
	return inOrder(tree.Root(), tree.count)
}

func (tree *avlTree[K]) PostOrder() []K {
	return postOrder(tree.Root(), tree.count)
}

func (tree *avlTree[K]) LevelOrder() []K {
	return levelOrder(tree.Root(), tree.count)
}

func (tree *avlTree[K]) Ceil(key K) (K, bool) {
	return ceil(tree.Root(), key)
}

func (tree *avlTree[K]) Floor(key K) (K, bool) {
	return floor(tree.Root(), key)
}

func (tree *avlTree[K]) Connections() []Edge[K] {
	return connections(tree.Root(), tree.count)
}

func (tree *avlTree[K]) Foreach(action func(idx int64, key K) bool) {
	foreach(tree.Root(), action)
}

func (tree *avlTree[K]) Release() {
	logReleased(&tree.opt, tree.count)
	tree.root = nil
	tree.count = 0
	tree.ext.refresh(nil)
}

func NewAVLTree[K infra.OrderedKey](opts ...TreeOpt) OrderedSet[K] {
	return &avlTree[K]{
		opt: newTreeOption("AVL", opts...),
	}
}
