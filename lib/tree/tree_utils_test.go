package tree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestBSTOrderValidate(t *testing.T) {
	tree := &bsTree[int]{opt: newTreeOption("BST")}
	require.NoError(t, BSTOrderValidate[int](tree))

	/*
		  5
		 / \
		3   8
		 \
		  6  <- greater than the root
	*/
	tree.root = &bstNode[int]{
		key: 5,
		left: &bstNode[int]{
			key:   3,
			right: &bstNode[int]{key: 6},
		},
		right: &bstNode[int]{key: 8},
	}
	tree.count = 4
	err := BSTOrderValidate[int](tree)
	require.ErrorIs(t, err, ErrBSTOrderViolation)

	tree.root.left.right.key = 4
	require.NoError(t, BSTOrderValidate[int](tree))

	// Duplicates are not allowed.
	tree.root.right.key = 5
	require.ErrorIs(t, BSTOrderValidate[int](tree), ErrBSTOrderViolation)
}

func TestAVLBalanceValidate(t *testing.T) {
	tree := &avlTree[int]{opt: newTreeOption("AVL")}
	tree.root = &avlNode[int]{
		key:    3,
		height: 3,
		left: &avlNode[int]{
			key:    2,
			height: 2,
			left:   &avlNode[int]{key: 1, height: 1},
		},
	}
	require.ErrorIs(t, AVLBalanceValidate[int](tree), ErrAVLBalanceViolation)

	tree.root = tree.root.rightRotate()
	require.NoError(t, AVLBalanceValidate[int](tree))
	require.Equal(t, []int{2, 1, 3}, tree.PreOrder())

	// Stale height.
	tree.root.height = 5
	require.ErrorIs(t, AVLBalanceValidate[int](tree), ErrAVLBalanceViolation)

	require.NoError(t, AVLBalanceValidate(NewBSTree[int]()))
	bst := NewBSTree[int]()
	bst.Insert(1)
	require.ErrorIs(t, AVLBalanceValidate(bst), ErrNotAVLTree)
}

func TestRBTreeValidate(t *testing.T) {
	tree := &rbTree[int]{opt: newTreeOption("RBT")}
	require.NoError(t, RBTreeValidate[int](tree))

	// Red root.
	tree.root = &llrbNode[int]{key: 1, color: Red}
	err := RBTreeValidate[int](tree)
	require.ErrorIs(t, err, ErrRedViolation)
	require.Len(t, multierr.Errors(err), 1)

	// Red right link and a red child under a red node.
	tree.root = &llrbNode[int]{
		key:   2,
		color: Black,
		right: &llrbNode[int]{
			key:   4,
			color: Red,
			left:  &llrbNode[int]{key: 3, color: Red},
		},
		left: &llrbNode[int]{key: 1, color: Red},
	}
	err = RBTreeValidate[int](tree)
	require.ErrorIs(t, err, ErrRedViolation)
	require.ErrorIs(t, err, ErrLeftLeaningViolation)
	require.NoError(t, BlackViolationValidate[int](tree))
	require.Len(t, multierr.Errors(err), 2)

	// Unequal black height.
	tree.root = &llrbNode[int]{
		key:   2,
		color: Black,
		left:  &llrbNode[int]{key: 1, color: Black},
	}
	err = RBTreeValidate[int](tree)
	require.ErrorIs(t, err, ErrBlackViolation)
	require.False(t, errors.Is(err, ErrRedViolation))

	bst := NewBSTree[int]()
	bst.Insert(1)
	require.ErrorIs(t, RedViolationValidate(bst), ErrNotRBTree)
	require.ErrorIs(t, BlackViolationValidate(bst), ErrNotRBTree)
	require.ErrorIs(t, LeftLeaningValidate(bst), ErrNotRBTree)
}

func TestDOT(t *testing.T) {
	tree := NewBSTree[int]()
	for _, v := range []int{5, 3, 7, 2} {
		tree.Insert(v)
	}
	buf := bytes.Buffer{}
	require.NoError(t, DumpDOT(&buf, tree))
	require.Equal(t, "digraph BST {\n"+
		"    node [shape=circle];\n"+
		"    5 -> 3;\n"+
		"    5 -> 7;\n"+
		"    3 -> 2;\n"+
		"}\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteDOT(&buf, "Empty", NewRBTree[string]().Connections()))
	require.Equal(t, "digraph Empty {\n    node [shape=circle];\n}\n", buf.String())

	avl := NewAVLTree[string](WithTreeName("Words"))
	for _, v := range []string{"a", "b", "c"} {
		avl.Insert(v)
	}
	buf.Reset()
	require.NoError(t, DumpDOT(&buf, avl))
	require.Equal(t, "digraph Words {\n"+
		"    node [shape=circle];\n"+
		"    b -> a;\n"+
		"    b -> c;\n"+
		"}\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestDOT_WriteError(t *testing.T) {
	tree := NewRBTree[int]()
	tree.Insert(1)
	err := DumpDOT[int](brokenWriter{}, tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "RBT")
}
