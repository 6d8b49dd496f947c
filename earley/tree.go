package earley

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/dregot/gramercy"
	"github.com/dregot/gramercy/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// Tree is a node of a derivation tree. Inner nodes carry the name of
// the non-terminal they reduce; leaves additionally carry the matched
// lexeme. A non-terminal which derived the empty string is a childless
// inner node with a zero-width span.
type Tree struct {
	Symbol   string
	Lexeme   string // set for leaves only
	Span     gramercy.Span
	Children []*Tree
}

// IsLeaf is true for nodes matching an input lexeme.
func (t *Tree) IsLeaf() bool {
	return t.Lexeme != ""
}

// Leaves returns the lexemes at the tree's leaves, left to right.
// For any derivation tree of a successful parse this is exactly the
// consumed token sequence.
func (t *Tree) Leaves() []string {
	var leaves []string
	var walk func(*Tree)
	walk = func(n *Tree) {
		if n.IsLeaf() {
			leaves = append(leaves, n.Lexeme)
			return
		}
		for _, ch := range n.Children {
			walk(ch)
		}
	}
	walk(t)
	return leaves
}

// Hash returns a version-stable digest of the tree's structure. Equal
// trees hash equally; clients enumerating ambiguous derivations can
// use it to deduplicate the forest.
func (t *Tree) Hash() string {
	return fmt.Sprintf("%x", structhash.Sha1(t, 1))
}

// String renders the tree as an s-expression, leaves as their lexemes.
func (t *Tree) String() string {
	var b bytes.Buffer
	var walk func(*Tree)
	walk = func(n *Tree) {
		if n.IsLeaf() {
			fmt.Fprintf(&b, "%q", n.Lexeme)
			return
		}
		fmt.Fprintf(&b, "(%s", n.Symbol)
		for _, ch := range n.Children {
			b.WriteString(" ")
			walk(ch)
		}
		b.WriteString(")")
	}
	walk(t)
	return b.String()
}

// BuildTree reconstructs one derivation tree from a successful parse.
// The derivation is deterministic: at every ambiguous node the
// completed item first in its column's insertion order wins. This is
// a fixed, reproducible tie-break, not a claim of being the "best"
// parse.
//
// A nil return means the chart holds no derivation, which cannot
// happen for a ParseState produced by Parse; it indicates chart
// corruption and is reported through the parser-stuck hook.
func BuildTree(g *grammar.Grammar, ps *ParseState) *Tree {
	t, ok := BuildTrees(g, ps).Next()
	if !ok {
		stuck("no derivation can be reconstructed from the chart")
		return nil
	}
	return t
}

func stuck(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Earley tree builder is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
}
