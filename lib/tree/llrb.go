package tree

import "github.com/benz9527/xtree/lib/infra"

type llrbNode[K infra.OrderedKey] struct {
	left  *llrbNode[K]
	right *llrbNode[K]
	key   K
	color RBColor
}

func (node *llrbNode[K]) Key() K {
	return node.key
}

func (node *llrbNode[K]) Color() RBColor {
	return node.color
}

func (node *llrbNode[K]) Left() Node[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *llrbNode[K]) Right() Node[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// NIL nodes are black.
func (node *llrbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

/*
<X> is a RED link.
[X] is a BLACK link (or NIL).

		 |                         |
		 X                         S
		/ \     rotateLeft(X)     / \
	   L  <S>   ============>   <X>  Sr
		  / \                   / \
		Sl   Sr                L   Sl

S takes over the color of X and X turns red.
*/
func (node *llrbNode[K]) rotateLeft() *llrbNode[K] {
	if node == nil || node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] left rotate node x is nil or x.right is nil")
	}
	y := node.right
	node.right, y.left = y.left, node
	y.color, node.color = node.color, Red
	return y
}

/*
		   |                        |
		   X                        L
		  / \    rotateRight(X)    / \
		<L>  R   ============>   Ll  <X>
		/ \                          / \
	  Ll   Lr                      Lr   R
*/
func (node *llrbNode[K]) rotateRight() *llrbNode[K] {
	if node == nil || node.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] right rotate node x is nil or x.left is nil")
	}
	y := node.left
	node.left, y.right = y.right, node
	y.color, node.color = node.color, Red
	return y
}

func (c RBColor) flip() RBColor {
	if c == Red {
		return Black
	}
	return Red
}

// flipColors splits a temporary 4-node (both children red) or
// merges the node with both children into one (move red down).
func (node *llrbNode[K]) flipColors() {
	node.color = node.color.flip()
	if node.left != nil {
		node.left.color = node.left.color.flip()
	}
	if node.right != nil {
		node.right.color = node.right.color.flip()
	}
}

/*
balance is applied on every return of insert and remove.

b1: Right link is red and left link is not, rotate left (lean left).

b2: Left link and left-left link are both red, rotate right.

b3: Both links are red (a 4-node in the 2-3-4 tree), flip colors
and pass the red link up.

	    [X]             <X>
	    / \             / \
	  <L> <R>  ====>  [L] [R]
*/
func (node *llrbNode[K]) balance() *llrbNode[K] {
	if /* b1 */ node.right.isRed() && !node.left.isRed() {
		node = node.rotateLeft()
	}
	if /* b2 */ node.left.isRed() && node.left.left.isRed() {
		node = node.rotateRight()
	}
	if /* b3 */ node.left.isRed() && node.right.isRed() {
		node.flipColors()
	}
	return node
}

func (node *llrbNode[K]) insert(key K) (*llrbNode[K], bool) {
	if node == nil {
		return &llrbNode[K]{key: key, color: Red}, true
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
	return node.balance(), true
}

/*
moveRedLeft: X is red, X.left and X.left.left are black.
Make X.left or one of its children red.

	    <X>                  [X]
	    / \     flip(X)      / \
	  [L] [R]  ========>   <L> <R>
	  /   /                /   /
	[Ll] <Rl>            [Ll] <Rl>

If Rl is red, borrow it from the sibling:
rotateRight(R), rotateLeft(X), flip.
*/
func (node *llrbNode[K]) moveRedLeft() *llrbNode[K] {
	node.flipColors()
	if node.right != nil && node.right.left.isRed() {
		node.right = node.right.rotateRight()
		node = node.rotateLeft()
		node.flipColors()
	}
	return node
}

// moveRedRight is the mirror of moveRedLeft, X.right and
// X.right.left are black. Borrow from the left if Ll is red.
func (node *llrbNode[K]) moveRedRight() *llrbNode[K] {
	node.flipColors()
	if node.left != nil && node.left.left.isRed() {
		node = node.rotateRight()
		node.flipColors()
	}
	return node
}

func (node *llrbNode[K]) removeMin() *llrbNode[K] {
	if node.left == nil {
		return nil
	}
	if !node.left.isRed() && !node.left.left.isRed() {
		node = node.moveRedLeft()
	}
	node.left = node.left.removeMin()
	return node.balance()
}

func (node *llrbNode[K]) min() *llrbNode[K] {
	aux := node
	for ; aux.left != nil; aux = aux.left {
	}
	return aux
}

/*
remove pushes a red link down the search path, so the node finally
cut off is red and the black height never changes.

rm1: key is less, keep a red link on the left path (moveRedLeft) then
recurse into the left.

rm2: key is equal or greater. Lean the red link right first, so
a match without right child is a red leaf and it is cut off directly.

rm3: keep a red link on the right path (moveRedRight). On a match the
succ key is copied in and removed from the right subtree, otherwise
recurse into the right.

key must be present in the subtree.
*/
func (node *llrbNode[K]) remove(key K) *llrbNode[K] {
	if res, _ := infra.Compare(key, node.key); /* rm1 */ res < 0 {
		if node.left == nil {
			// impossible run to here
			panic( /* debug assertion */ "[llrb] remove an absent key, violate (rm1)")
		}
		if !node.left.isRed() && !node.left.left.isRed() {
			node = node.moveRedLeft()
		}
		node.left = node.left.remove(key)
		return node.balance()
	}

	if /* rm2 */ node.left.isRed() {
		node = node.rotateRight()
	}
	if res, _ := infra.Compare(key, node.key); res == 0 && node.right == nil {
		return nil
	}

	if node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] remove an absent key, violate (rm3)")
	}
	if /* rm3 */ !node.right.isRed() && !node.right.left.isRed() {
		node = node.moveRedRight()
	}
	if res, _ := infra.Compare(key, node.key); res == 0 {
		node.key = node.right.min().key
		node.right = node.right.removeMin()
	} else {
		node.right = node.right.remove(key)
	}
	return node.balance()
}

// rbTree is a left-leaning red-black tree, red links only lean left
// and every 2-3-4 node maps to a black node plus its red children.
type rbTree[K infra.OrderedKey] struct {
	root  *llrbNode[K]
	count int64
	ext   extremes[K]
	opt   treeOption
}

func (tree *rbTree[K]) Name() string {
	return tree.opt.name
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *rbTree[K]) Root() Node[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *rbTree[K]) Insert(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "insert", key)
		return false
	}
	var added bool
	tree.root, added = tree.root.insert(key)
	tree.root.color = Black
	if !added {
		return false
	}
	tree.count++
	tree.ext.inserted(key)
	return true
}

func (tree *rbTree[K]) Remove(key K) bool {
	if infra.Unordered(key) {
		logUnordered(&tree.opt, "remove", key)
		return false
	}
	if !tree.Contains(key) {
		return false
	}

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.root.remove(key)
	if tree.root != nil {
		tree.root.color = Black
	}
	tree.count--
	tree.ext.removed(key, tree.Root())
	return true
}

func (tree *rbTree[K]) RemoveMin() (K, bool) {
	return removeExtreme[K](tree, false)
}

func (tree *rbTree[K]) RemoveMax() (K, bool) {
	return removeExtreme[K](tree, true)
}

func (tree *rbTree[K]) Contains(key K) bool {
	return search(tree.Root(), key)
}

func (tree *rbTree[K]) Min() (K, bool) {
	return tree.ext.get(false)
}

func (tree *rbTree[K]) Max() (K, bool) {
	return tree.ext.get(true)
}

func (tree *rbTree[K]) Height() int {
	return levels(tree.Root())
}

func (tree *rbTree[K]) PreOrder() []K {
	return preOrder(tree.Root(), tree.count)
}

func (tree *rbTree[K]) InOrder() []K {
	return inOrder(tree.Root(), tree.count)
}

func (tree *rbTree[K]) PostOrder() []K {
	return postOrder(tree.Root(), tree.count)
}

func (tree *rbTree[K]) LevelOrder() []K {
	return levelOrder(tree.Root(), tree.count)
}

func (tree *rbTree[K]) Ceil(key K) (K, bool) {
	return ceil(tree.Root(), key)
}

func (tree *rbTree[K]) Floor(key K) (K, bool) {
	return floor(tree.Root(), key)
}

func (tree *rbTree[K]) Connections() []Edge[K] {
	return connections(tree.Root(), tree.count)
}

func (tree *rbTree[K]) Foreach(action func(idx int64, key K) bool) {
	foreach(tree.Root(), action)
}

func (tree *rbTree[K]) Release() {
	logReleased(&tree.opt, tree.count)
	tree.root = nil
	tree.count = 0
	tree.ext.refresh(nil)
}

func NewRBTree[K infra.OrderedKey](opts ...TreeOpt) OrderedSet[K] {
	return &rbTree[K]{
		opt: newTreeOption("RBT", opts...),
	}
}
