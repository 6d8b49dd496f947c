package earley

import (
	"github.com/dregot/gramercy"
	"github.com/dregot/gramercy/grammar"
)

// Tree enumeration works backward over the chart, in the manner
// described by Grune & Jacobs, "Parsing Techniques", Section 7.2.1.2:
// a completed item [A ::= s1 … sk ∙, origin] spanning origin…end must
// have been produced by a completed sub-recognition of sk ending at
// end, preceded by a recognition of s1 … sk-1 over the remaining
// prefix. Every completed candidate for sk is a choice point. The
// enumerating builder explores all of them, which gives the Cartesian
// expansion of all derivations; the only pruning is a guard against
// revisiting an item span already being expanded higher up in the
// walk, which would recurse forever on cyclic derivations such as
// S ::= S S.
//
// The expansion is lazy throughout. Generators are chained closures,
// so pulling the first K trees of a catastrophically ambiguous parse
// does a bounded amount of work.

// TreeIter is a pull-based iterator over the derivation trees of a
// parse. It is a single forward pass; it cannot be restarted.
type TreeIter struct {
	gen treeGen
}

// Next returns the next derivation tree, or ok=false when all
// derivations have been enumerated.
func (it *TreeIter) Next() (*Tree, bool) {
	if it.gen == nil {
		return nil, false
	}
	t, rest := it.gen()
	it.gen = rest
	return t, true
}

// Take pulls at most k trees from the iterator.
func (it *TreeIter) Take(k int) []*Tree {
	var trees []*Tree
	for len(trees) < k {
		t, ok := it.Next()
		if !ok {
			break
		}
		trees = append(trees, t)
	}
	return trees
}

// BuildTrees enumerates all distinct derivations of a successful
// parse lazily. Grammars exhibiting Earley's cyclic-ambiguity quirk
// may yield duplicate trees; the enumeration makes no uniqueness
// promise, and callers needing a canonical forest should deduplicate,
// e.g. by Tree.Hash.
func BuildTrees(g *grammar.Grammar, ps *ParseState) *TreeIter {
	if ps == nil || len(ps.States) == 0 {
		return &TreeIter{}
	}
	w := &walker{g: g, ps: ps}
	last := len(ps.States) - 1
	S := ps.States[last]
	var roots []Item
	for n := 0; n < S.Size(); n++ {
		item := S.Item(n)
		if item.Completed() && item.Origin == 0 && item.Rule().LHS().Equals(g.Start()) {
			roots = append(roots, item)
		}
	}
	var from func(i int) treeGen
	from = func(i int) treeGen {
		if i >= len(roots) {
			return nil
		}
		return chainTrees(w.itemTrees(roots[i], nil), func() treeGen {
			return from(i + 1)
		})
	}
	return &TreeIter{gen: from(0)}
}

// --- Lazy generators --------------------------------------------------

// A generator yields a value plus its own successor; a nil generator
// is exhausted. Generators never mutate captured state, so a
// generator value may be re-run (the choice-point machinery relies on
// restarting prefix expansions).

type treeGen func() (*Tree, treeGen)

type seqGen func() (children []*Tree, rest seqGen)

type walker struct {
	g  *grammar.Grammar
	ps *ParseState
}

// trail is the set of item spans on the current expansion path, kept
// as a linked list up the recursion.
type trail struct {
	rule        int
	origin, end int
	up          *trail
}

func (tr *trail) seen(rule, origin, end int) bool {
	for t := tr; t != nil; t = t.up {
		if t.rule == rule && t.origin == origin && t.end == end {
			return true
		}
	}
	return false
}

// itemTrees generates every derivation tree for one completed item.
func (w *walker) itemTrees(item Item, tr *trail) treeGen {
	serial := item.Rule().Serial()
	if tr.seen(serial, item.Origin, item.End) {
		return nil
	}
	sub := &trail{rule: serial, origin: item.Origin, end: item.End, up: tr}
	return nodes(item, w.seqs(item.Rule().RHS(), item.Origin, item.End, sub))
}

// nodes wraps every children sequence into a tree node for the item's
// head symbol.
func nodes(item Item, children seqGen) treeGen {
	if children == nil {
		return nil
	}
	return func() (*Tree, treeGen) {
		ch, rest := children()
		t := &Tree{
			Symbol:   item.Rule().LHS().Name(),
			Span:     gramercy.Span{item.Origin, item.End},
			Children: ch,
		}
		return t, nodes(item, rest)
	}
}

// seqs generates every children sequence deriving syms over the chart
// span lo…hi. Symbols are resolved right to left: the last symbol is
// matched at hi, the rest over the remaining prefix.
func (w *walker) seqs(syms []*grammar.Symbol, lo, hi int, tr *trail) seqGen {
	if len(syms) == 0 {
		if lo != hi {
			return nil
		}
		return func() ([]*Tree, seqGen) { return []*Tree{}, nil }
	}
	last := syms[len(syms)-1]
	rest := syms[:len(syms)-1]
	if last.IsTerminal() {
		if hi <= lo || !last.Matches(w.ps.Lexeme(hi-1)) {
			return nil
		}
		leaf := &Tree{
			Symbol: last.Name(),
			Lexeme: w.ps.Lexeme(hi - 1),
			Span:   gramercy.Span{hi - 1, hi},
		}
		return extendAll(w.seqs(rest, lo, hi-1, tr), leaf)
	}
	// Candidates: completed items for the awaited non-terminal which
	// end at hi and do not reach left of lo. Insertion order of the
	// column fixes the enumeration order.
	S := w.ps.States[hi]
	var cands []Item
	for n := 0; n < S.Size(); n++ {
		item := S.Item(n)
		if item.Completed() && item.Origin >= lo && item.Rule().LHS().Equals(last) {
			cands = append(cands, item)
		}
	}
	var from func(i int) seqGen
	from = func(i int) seqGen {
		if i >= len(cands) {
			return nil
		}
		c := cands[i]
		g := cross(w.itemTrees(c, tr), func() seqGen {
			return w.seqs(rest, lo, c.Origin, tr)
		})
		return chainSeqs(g, func() seqGen { return from(i + 1) })
	}
	return from(0)
}

// extendAll appends leaf to every children sequence of prefixes.
func extendAll(prefixes seqGen, leaf *Tree) seqGen {
	if prefixes == nil {
		return nil
	}
	return func() ([]*Tree, seqGen) {
		ch, rest := prefixes()
		out := make([]*Tree, len(ch)+1)
		copy(out, ch)
		out[len(ch)] = leaf
		return out, extendAll(rest, leaf)
	}
}

// cross yields append(prefix, t) for every tree t and every prefix
// sequence, restarting the prefix generator for each t.
func cross(trees treeGen, mkPrefix func() seqGen) seqGen {
	var take func(t *Tree, prefixes seqGen, more treeGen) seqGen
	var advance func(more treeGen) seqGen
	advance = func(more treeGen) seqGen {
		for more != nil {
			t, rest := more()
			more = rest
			if p := mkPrefix(); p != nil {
				return take(t, p, more)
			}
		}
		return nil
	}
	take = func(t *Tree, prefixes seqGen, more treeGen) seqGen {
		return func() ([]*Tree, seqGen) {
			ch, rest := prefixes()
			out := make([]*Tree, len(ch)+1)
			copy(out, ch)
			out[len(ch)] = t
			if rest != nil {
				return out, take(t, rest, more)
			}
			return out, advance(more)
		}
	}
	return advance(trees)
}

func chainSeqs(g seqGen, tail func() seqGen) seqGen {
	if g == nil {
		return tail()
	}
	return func() ([]*Tree, seqGen) {
		v, rest := g()
		if rest != nil {
			return v, chainSeqs(rest, tail)
		}
		return v, tail()
	}
}

func chainTrees(g treeGen, tail func() treeGen) treeGen {
	if g == nil {
		return tail()
	}
	return func() (*Tree, treeGen) {
		v, rest := g()
		if rest != nil {
			return v, chainTrees(rest, tail)
		}
		return v, tail()
	}
}
