package tree

import "github.com/benz9527/xtree/lib/infra"

// Walks shared by every tree. They only read through the Node view,
// so the balancing metadata never changes the visiting order.

func search[K infra.OrderedKey](root Node[K], key K) bool {
	for aux := root; aux != nil; {
		res, ok := infra.Compare(key, aux.Key())
		if !ok {
			return false
		}
		if res == 0 {
			return true
		} else if res < 0 {
			aux = aux.Left()
		} else {
			aux = aux.Right()
		}
	}
	return false
}

func minimum[K infra.OrderedKey](root Node[K]) Node[K] {
	aux := root
	for ; aux != nil && aux.Left() != nil; aux = aux.Left() {
	}
	return aux
}

func maximum[K infra.OrderedKey](root Node[K]) Node[K] {
	aux := root
	for ; aux != nil && aux.Right() != nil; aux = aux.Right() {
	}
	return aux
}

// Every node on the path that is not less than key is a candidate,
// the last one found is the closest.
func ceil[K infra.OrderedKey](root Node[K], key K) (res K, found bool) {
	for aux := root; aux != nil; {
		cmp, ok := infra.Compare(key, aux.Key())
		if !ok {
			var zero K
			return zero, false
		}
		if cmp == 0 {
			return aux.Key(), true
		} else if cmp < 0 {
			res, found = aux.Key(), true
			aux = aux.Left()
		} else {
			aux = aux.Right()
		}
	}
	return res, found
}

func floor[K infra.OrderedKey](root Node[K], key K) (res K, found bool) {
	for aux := root; aux != nil; {
		cmp, ok := infra.Compare(key, aux.Key())
		if !ok {
			var zero K
			return zero, false
		}
		if cmp == 0 {
			return aux.Key(), true
		} else if cmp > 0 {
			res, found = aux.Key(), true
			aux = aux.Right()
		} else {
			aux = aux.Left()
		}
	}
	return res, found
}

func preOrder[K infra.OrderedKey](root Node[K], size int64) []K {
	keys := make([]K, 0, size)
	stack := make([]Node[K], 0, 16)
	for aux := root; aux != nil || len(stack) > 0; {
		for ; aux != nil; aux = aux.Left() {
			keys = append(keys, aux.Key())
			stack = append(stack, aux)
		}
		aux = stack[len(stack)-1].Right()
		stack = stack[:len(stack)-1]
	}
	return keys
}

func inOrder[K infra.OrderedKey](root Node[K], size int64) []K {
	keys := make([]K, 0, size)
	foreach(root, func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// No parent links, so the last emitted node tells whether the right
// subtree of the stack top has been finished already.
func postOrder[K infra.OrderedKey](root Node[K], size int64) []K {
	keys := make([]K, 0, size)
	stack := make([]Node[K], 0, 16)
	var last Node[K]
	for aux := root; aux != nil || len(stack) > 0; {
		for ; aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
		top := stack[len(stack)-1]
		if r := top.Right(); r == nil || r == last {
			keys = append(keys, top.Key())
			last = top
			stack = stack[:len(stack)-1]
		} else {
			aux = r
		}
	}
	return keys
}

func levelOrder[K infra.OrderedKey](root Node[K], size int64) []K {
	keys := make([]K, 0, size)
	if root == nil {
		return keys
	}
	queue := make([]Node[K], 0, size>>1+1)
	queue = append(queue, root)
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		keys = append(keys, aux.Key())
		if l := aux.Left(); l != nil {
			queue = append(queue, l)
		}
		if r := aux.Right(); r != nil {
			queue = append(queue, r)
		}
	}
	return keys
}

// BFS level count, the edges of the longest path.
func levels[K infra.OrderedKey](root Node[K]) int {
	if root == nil {
		return 0
	}
	height := -1
	queue := []Node[K]{root}
	for len(queue) > 0 {
		height++
		next := make([]Node[K], 0, len(queue)<<1)
		for _, aux := range queue {
			if l := aux.Left(); l != nil {
				next = append(next, l)
			}
			if r := aux.Right(); r != nil {
				next = append(next, r)
			}
		}
		queue = next
	}
	return height
}

func connections[K infra.OrderedKey](root Node[K], size int64) []Edge[K] {
	if root == nil {
		return []Edge[K]{}
	}
	edges := make([]Edge[K], 0, size)
	queue := []Node[K]{root}
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		if l := aux.Left(); l != nil {
			queue = append(queue, l)
			edges = append(edges, Edge[K]{Parent: aux.Key(), Child: l.Key()})
		}
		if r := aux.Right(); r != nil {
			queue = append(queue, r)
			edges = append(edges, Edge[K]{Parent: aux.Key(), Child: r.Key()})
		}
	}
	return edges
}

// Inorder traversal to implement the DFS.
func foreach[K infra.OrderedKey](root Node[K], action func(idx int64, key K) bool) {
	stack := make([]Node[K], 0, 16)
	defer func() {
		clear(stack)
	}()

	for aux := root; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	for idx := int64(0); len(stack) > 0; idx++ {
		aux := stack[len(stack)-1]
		if !action(idx, aux.Key()) {
			return
		}
		stack = stack[:len(stack)-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
}

// extremes caches the smallest and the largest key of a tree.
type extremes[K infra.OrderedKey] struct {
	min, max K
	has      bool
}

func (e *extremes[K]) get(wantMax bool) (K, bool) {
	if wantMax {
		return e.max, e.has
	}
	return e.min, e.has
}

// inserted only sees keys that really joined the tree.
func (e *extremes[K]) inserted(key K) {
	if !e.has {
		e.min, e.max, e.has = key, key, true
		return
	}
	if key < e.min {
		e.min = key
	}
	if key > e.max {
		e.max = key
	}
}

// removed re-walks only if one of the extremes went away.
func (e *extremes[K]) removed(key K, root Node[K]) {
	if !e.has || (key != e.min && key != e.max) {
		return
	}
	e.refresh(root)
}

func (e *extremes[K]) refresh(root Node[K]) {
	if root == nil {
		var zero K
		e.min, e.max, e.has = zero, zero, false
		return
	}
	e.min, e.max, e.has = minimum(root).Key(), maximum(root).Key(), true
}
