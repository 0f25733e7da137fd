package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/infra"
)

// tree rule validation utilities, for tests and debugging only.

var (
	ErrBSTOrderViolation    = errors.New("tree order violation")
	ErrAVLBalanceViolation  = errors.New("avl balance violation")
	ErrRedViolation         = errors.New("rbtree red violation")
	ErrBlackViolation       = errors.New("rbtree black violation")
	ErrLeftLeaningViolation = errors.New("rbtree left leaning violation")
	ErrNotAVLTree           = errors.New("not an avl tree node")
	ErrNotRBTree            = errors.New("not a rbtree node")
)

// BSTOrderValidate checks every key against the open interval (lo, hi)
// that its ancestors allow.
func BSTOrderValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	var check func(node Node[K], lo, hi *K) error
	check = func(node Node[K], lo, hi *K) error {
		if node == nil {
			return nil
		}
		key := node.Key()
		if infra.Unordered(key) {
			return fmt.Errorf("%w: unordered key %v", ErrBSTOrderViolation, key)
		}
		if lo != nil && key <= *lo {
			return fmt.Errorf("%w: key %v not greater than %v", ErrBSTOrderViolation, key, *lo)
		}
		if hi != nil && key >= *hi {
			return fmt.Errorf("%w: key %v not less than %v", ErrBSTOrderViolation, key, *hi)
		}
		if err := check(node.Left(), lo, &key); err != nil {
			return err
		}
		return check(node.Right(), &key, hi)
	}
	return check(tree.Root(), nil, nil)
}

// AVLBalanceValidate checks the balance factor and the stored height
// of every node.
func AVLBalanceValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	var check func(node Node[K]) (int, error)
	check = func(node Node[K]) (int, error) {
		if node == nil {
			return 0, nil
		}
		avl, ok := node.(AVLNode[K])
		if !ok {
			return 0, ErrNotAVLTree
		}
		lh, err := check(node.Left())
		if err != nil {
			return 0, err
		}
		rh, err := check(node.Right())
		if err != nil {
			return 0, err
		}
		if bf := lh - rh; bf > 1 || bf < -1 {
			return 0, fmt.Errorf("%w: key %v balance factor %d", ErrAVLBalanceViolation, node.Key(), bf)
		}
		if h := 1 + max(lh, rh); avl.Height() != h {
			return 0, fmt.Errorf("%w: key %v height %d, expected %d", ErrAVLBalanceViolation, node.Key(), avl.Height(), h)
		}
		return avl.Height(), nil
	}
	_, err := check(tree.Root())
	return err
}

func rbNodeOf[K infra.OrderedKey](node Node[K]) (RBNode[K], error) {
	if node == nil {
		return nil, nil
	}
	rb, ok := node.(RBNode[K])
	if !ok {
		return nil, ErrNotRBTree
	}
	return rb, nil
}

func isRedNode[K infra.OrderedKey](node Node[K]) bool {
	rb, err := rbNodeOf(node)
	return err == nil && rb != nil && rb.Color() == Red
}

// RedViolationValidate checks that the root is black and no red
// node has a red child.
func RedViolationValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	if _, err := rbNodeOf(root); err != nil {
		return err
	}
	if isRedNode(root) {
		return fmt.Errorf("%w: red root %v", ErrRedViolation, root.Key())
	}

	var check func(node Node[K]) error
	check = func(node Node[K]) error {
		if node == nil {
			return nil
		}
		if _, err := rbNodeOf(node); err != nil {
			return err
		}
		if isRedNode(node) && (isRedNode(node.Left()) || isRedNode(node.Right())) {
			return fmt.Errorf("%w: red node %v has a red child", ErrRedViolation, node.Key())
		}
		if err := check(node.Left()); err != nil {
			return err
		}
		return check(node.Right())
	}
	return check(root)
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
	        /  \
	     <8>    [15]
	     / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Each NIL to root black depth are equal, a NIL counts 1.
*/
func BlackViolationValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	var check func(node Node[K]) (int, error)
	check = func(node Node[K]) (int, error) {
		if node == nil {
			return 1, nil
		}
		if _, err := rbNodeOf(node); err != nil {
			return 0, err
		}
		lh, err := check(node.Left())
		if err != nil {
			return 0, err
		}
		rh, err := check(node.Right())
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, fmt.Errorf("%w: key %v left %d, right %d", ErrBlackViolation, node.Key(), lh, rh)
		}
		if isRedNode(node) {
			return lh, nil
		}
		return lh + 1, nil
	}
	_, err := check(tree.Root())
	return err
}

// LeftLeaningValidate checks that no red link leans right.
func LeftLeaningValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	var check func(node Node[K]) error
	check = func(node Node[K]) error {
		if node == nil {
			return nil
		}
		if _, err := rbNodeOf(node); err != nil {
			return err
		}
		if isRedNode(node.Right()) {
			return fmt.Errorf("%w: key %v", ErrLeftLeaningViolation, node.Right().Key())
		}
		if err := check(node.Left()); err != nil {
			return err
		}
		return check(node.Right())
	}
	return check(tree.Root())
}

// RBTreeValidate reports every rule a left-leaning red-black tree breaks.
func RBTreeValidate[K infra.OrderedKey](tree OrderedSet[K]) error {
	return multierr.Combine(
		BSTOrderValidate(tree),
		RedViolationValidate(tree),
		BlackViolationValidate(tree),
		LeftLeaningValidate(tree),
	)
}
