package tree

import "github.com/benz9527/xtree/lib/infra"

type bstNode[K infra.OrderedKey] struct {
	left  *bstNode[K]
	right *bstNode[K]
	key   K
}

func (node *bstNode[K]) Key() K {
	return node.key
}

func (node *bstNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// bsTree is the unbalanced baseline. Insert and remove walk down
// a pointer to the child slot, so no parent link is needed.
type bsTree[K infra.OrderedKey] struct {
	root  *bstNode[K]
	count int64
	ext   extremes[K]
	opt   treeOption
}

func (tree *bsTree[K]) Name() string {
	return tree.opt.name
}

func (tree *bsTree[K]) Len() int64 {
	return tree.count
}

func (tree *bsTree[K]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *bsTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *bsTree[K]) Insert(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "insert", key)
		return false
	}

	slot := &tree.root
	for *slot != nil {
		res, _ := infra.Compare(key, (*slot).key)
		if /* equal */ res == 0 {
			return false
		} else /* less */ if res < 0 {
			slot = &(*slot).left
		} else /* greater */ {
			slot = &(*slot).right
		}
	}

	*slot = &bstNode[K]{key: key}
	tree.count++
	tree.ext.inserted(key)
	return true
}

/*
r1: X has no child, the parent slot becomes empty.

r2: X has exactly one child C, C takes the parent slot of X.

r3: X has both children. The succ S is the leftmost node of the
right subtree and it has no left child. Copy S's key into X, then
S's parent slot takes S's right child.

	  |                  |
	  X                  S
	 / \                / \
	L   R   =======>   L   R
	   /                  /
	  S                 Sr
	   \
	   Sr
*/
func (tree *bsTree[K]) Remove(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "remove", key)
		return false
	}

	slot := &tree.root
	for x := *slot; x != nil; x = *slot {
		res, _ := infra.Compare(key, x.key)
		if res < 0 {
			slot = &x.left
			continue
		} else if res > 0 {
			slot = &x.right
			continue
		}

		switch {
		case /* r1, r2 */ x.left == nil:
			*slot = x.right
			x.right = nil
		case /* r2 */ x.right == nil:
			*slot = x.left
			x.left = nil
		default /* r3 */ :
			x.key = detachBSTMin(&x.right)
		}
		tree.count--
		tree.ext.removed(key, tree.Root())
		return true
	}
	return false
}

// detachBSTMin unlinks the leftmost node under slot and returns its key.
func detachBSTMin[K infra.OrderedKey](slot **bstNode[K]) K {
	if *slot == nil {
		// impossible run to here
		panic( /* debug assertion */ "[bst] detach minimum from an empty subtree")
	}
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	succ := *slot
	*slot = succ.right
	succ.right = nil
	return succ.key
}

func (tree *bsTree[K]) RemoveMin() (K, bool) {
	return removeExtreme[K](tree, false)
}

func (tree *bsTree[K]) RemoveMax() (K, bool) {
	return removeExtreme[K](tree, true)
}

func (tree *bsTree[K]) Contains(key K) bool {
	return search(tree.Root(), key)
}

func (tree *bsTree[K]) Min() (K, bool) {
	return tree.ext.get(false)
}

func (tree *bsTree[K]) Max() (K, bool) {
	return tree.ext.get(true)
}

// Height is not maintained by the unbalanced tree, O(n).
func (tree *bsTree[K]) Height() int {
	return levels(tree.Root())
}

func (tree *bsTree[K]) PreOrder() []K {
	return preOrder(tree.Root(), tree.count)
}

func (tree *bsTree[K]) InOrder() []K {
	return inOrder(tree.Root(), tree.count)
}

func (tree *bsTree[K]) PostOrder() []K {
	return postOrder(tree.Root(), tree.count)
}

func (tree *bsTree[K]) LevelOrder() []K {
	return levelOrder(tree.Root(), tree.count)
}

func (tree *bsTree[K]) Ceil(key K) (K, bool) {
	return ceil(tree.Root(), key)
}

func (tree *bsTree[K]) Floor(key K) (K, bool) {
	return floor(tree.Root(), key)
}

func (tree *bsTree[K]) Connections() []Edge[K] {
	return connections(tree.Root(), tree.count)
}

func (tree *bsTree[K]) Foreach(action func(idx int64, key K) bool) {
	foreach(tree.Root(), action)
}

func (tree *bsTree[K]) Release() {
	logReleased(&tree.opt, tree.count)
	tree.root = nil
	tree.count = 0
	tree.ext.refresh(nil)
}

func NewBSTree[K infra.OrderedKey](opts ...TreeOpt) OrderedSet[K] {
	return &bsTree[K]{
		opt: newTreeOption("BST", opts...),
	}
}

// removeExtreme is RemoveMin and RemoveMax for every tree.
func removeExtreme[K infra.OrderedKey](tree OrderedSet[K], wantMax bool) (key K, ok bool) {
	if wantMax {
		key, ok = tree.Max()
	} else {
		key, ok = tree.Min()
	}
	if !ok {
		return key, false
	}
	return key, tree.Remove(key)
}
