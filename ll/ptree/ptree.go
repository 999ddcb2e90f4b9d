/*
Package ptree implements parse trees as produced by LL(1) parsers.

Nodes for terminals carry the lexeme of the token they have been created from,
and the location of that token. Nodes for non-terminals derive their location
from their children. A node for a non-terminal which has been expanded with an
epsilon rule covers no input; its location is the location of the lookahead
token at the time it was created.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ptree

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Egoushka/PredictiveAnalizator"
)

// Node is a node of a parse tree.
type Node struct {
	Symbol   string  // grammar symbol
	Value    string  // lexeme for terminals, empty for non-terminals
	Terminal bool    // is this a node for a terminal?
	Children []*Node // children in left-to-right order
	line     int
	column   int
	pos      uint64
}

// NewTerminal creates a leaf node for a terminal, located at line:column,
// starting at input position pos.
func NewTerminal(sym, value string, line, column int, pos uint64) *Node {
	n := &Node{Symbol: sym, Value: value, Terminal: true}
	n.SetLocation(line, column, pos)
	return n
}

// NewNonTerminal creates an interior node for a non-terminal.
func NewNonTerminal(sym string) *Node {
	return &Node{Symbol: sym}
}

// SetLocation records the location of a node. For terminals and for nodes
// not covering any input, this is the location reported by Line, Column
// and Position.
func (n *Node) SetLocation(line, column int, pos uint64) {
	n.line, n.column, n.pos = line, column, pos
}

// Add appends a child node.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// coversInput is true for terminals and for nodes with terminal descendants.
func (n *Node) coversInput() bool {
	if n.Terminal {
		return true
	}
	for _, ch := range n.Children {
		if ch.coversInput() {
			return true
		}
	}
	return false
}

func (n *Node) firstCovering() *Node {
	for _, ch := range n.Children {
		if ch.coversInput() {
			return ch
		}
	}
	return nil
}

func (n *Node) lastCovering() *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if n.Children[i].coversInput() {
			return n.Children[i]
		}
	}
	return nil
}

// Line returns the 1-based line the node starts at.
func (n *Node) Line() int {
	if n.Terminal {
		return n.line
	}
	if ch := n.firstCovering(); ch != nil {
		return ch.Line()
	}
	return n.line
}

// Column returns the 1-based column the node starts at.
func (n *Node) Column() int {
	if n.Terminal {
		return n.column
	}
	if ch := n.firstCovering(); ch != nil {
		return ch.Column()
	}
	return n.column
}

// Position returns the input position the node starts at.
func (n *Node) Position() uint64 {
	if n.Terminal {
		return n.pos
	}
	if ch := n.firstCovering(); ch != nil {
		return ch.Position()
	}
	return n.pos
}

// Length returns the length of input covered by the node. Nodes not covering
// any input have length 0.
func (n *Node) Length() uint64 {
	if n.Terminal {
		return uint64(len(n.Value))
	}
	last := n.lastCovering()
	if last == nil {
		return 0
	}
	return last.Position() + last.Length() - n.Position()
}

// Span returns the span of input covered by the node.
func (n *Node) Span() predictive.Span {
	from := n.Position()
	return predictive.Span{from, from + n.Length()}
}

// FillDescendantsAndSelf appends n and all its descendants to result, in
// pre-order.
func (n *Node) FillDescendantsAndSelf(result []*Node) []*Node {
	result = append(result, n)
	for _, ch := range n.Children {
		result = ch.FillDescendantsAndSelf(result)
	}
	return result
}

// String returns an indented ASCII rendering of the tree rooted at n,
// one node per line:
//
//    +- E
//       +- T
//       |  +- F
//       |  |  +- int 3
//       …
//
func (n *Node) String() string {
	var b strings.Builder
	n.appendTo(&b, nil, false)
	return b.String()
}

// appendTo writes n, indented by guides. A guide is set for each ancestor
// which has further siblings to come. more tells if n has further siblings.
func (n *Node) appendTo(b *strings.Builder, guides []bool, more bool) {
	for _, g := range guides {
		if g {
			b.WriteString("|  ")
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(strings.TrimRight("+- "+n.Symbol+" "+n.Value, " "))
	b.WriteByte('\n')
	guides = append(guides[:len(guides):len(guides)], more)
	for i, ch := range n.Children {
		ch.appendTo(b, guides, i < len(n.Children)-1)
	}
}

// Render renders the tree rooted at n with pterm.
func (n *Node) Render() (string, error) {
	return pterm.DefaultTree.WithRoot(n.treeNode()).Srender()
}

func (n *Node) label() string {
	if n.Terminal {
		return fmt.Sprintf("%s %q", n.Symbol, n.Value)
	}
	if len(n.Children) == 0 {
		return n.Symbol + " ε"
	}
	return n.Symbol
}

func (n *Node) treeNode() pterm.TreeNode {
	tn := pterm.TreeNode{Text: n.label()}
	for _, ch := range n.Children {
		tn.Children = append(tn.Children, ch.treeNode())
	}
	return tn
}
