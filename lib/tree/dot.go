package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/benz9527/xtree/lib/infra"
)

// WriteDOT renders the edges as a graphviz digraph.
//
//	digraph BST {
//	    node [shape=circle];
//	    5 -> 3;
//	}
func WriteDOT[K infra.OrderedKey](w io.Writer, name string, edges []Edge[K]) error {
	lines := lo.Map(edges, func(e Edge[K], _ int) string {
		return fmt.Sprintf("    %v -> %v;\n", e.Parent, e.Child)
	})

	builder := strings.Builder{}
	_, _ = builder.WriteString("digraph " + name + " {\n")
	_, _ = builder.WriteString("    node [shape=circle];\n")
	_, _ = builder.WriteString(strings.Join(lines, ""))
	_, _ = builder.WriteString("}\n")

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("[tree] write %s dot: %w", name, err)
	}
	return nil
}

// DumpDOT writes the current shape of the tree, named after the tree.
func DumpDOT[K infra.OrderedKey](w io.Writer, tree OrderedSet[K]) error {
	return WriteDOT(w, tree.Name(), tree.Connections())
}
