package graph

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const indentStep = "   "

// Render returns an indented depth-first dump of the subgraph rooted at
// n. Each line shows the node's label (operator symbol, leaf name, or
// constant value), its current value, its grad from the last backward
// pass, and its tangent from the last forward-mode pass. A node shared
// by several parents appears once per path.
//
// Render is purely diagnostic: it mutates nothing and re-renders the
// current state deterministically on every call.
func (n Node) Render() string {
	if n.g == nil {
		return ""
	}
	var sb strings.Builder
	g := n.g
	type frame struct {
		id    int32
		depth int
	}
	// Preorder with an explicit stack; rhs pushed first so lhs prints
	// first.
	stack := []frame{{n.id, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sb.WriteString(strings.Repeat(indentStep, f.depth))
		sb.WriteString(g.label(f.id))
		sb.WriteString("| val=")
		sb.WriteString(ftoa(g.value[f.id]))
		sb.WriteString(" grad=")
		sb.WriteString(ftoa(g.grad[f.id]))
		sb.WriteString(" forward=")
		sb.WriteString(ftoa(g.tangent[f.id]))
		sb.WriteByte('\n')
		if g.kinds[f.id] != kindOp {
			continue
		}
		if r := g.rhs[f.id]; r != none {
			stack = append(stack, frame{r, f.depth + 1})
		}
		stack = append(stack, frame{g.lhs[f.id], f.depth + 1})
	}
	return sb.String()
}

// Print writes the Render output to standard output.
func (n Node) Print() {
	n.Fprint(os.Stdout)
}

// Fprint writes the Render output to w.
func (n Node) Fprint(w io.Writer) {
	fmt.Fprint(w, n.Render())
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
