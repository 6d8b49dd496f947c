package earley

import (
	"strings"
	"testing"

	"github.com/dregot/gramercy/grammar"
	"github.com/dregot/gramercy/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use the expression grammar from
//
//	http://loup-vaillant.fr/tutorials/earley-parsing/recogniser
//
// extended by right-recursive exponentiation:
//
//	Sum ::= Sum [+-] Mul  |  Mul
//	Mul ::= Mul [*/] Pow  |  Pow
//	Pow ::= Num ^ Pow     |  Num
//	Num ::= ( Sum )       |  Number
func grammarMath() *grammar.Grammar {
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("Sum")).
		Symbol(grammar.Nonterm("Mul")).
		Symbol(grammar.Nonterm("Pow")).
		Symbol(grammar.Nonterm("Num")).
		Symbol(grammar.Terminal("Number", func(lexeme string) bool {
			return lexeme != "" && strings.Trim(lexeme, "1234567890") == ""
		})).
		Symbol(grammar.Terminal("[+-]", oneOf("+-"))).
		Symbol(grammar.Terminal("[*/]", oneOf("*/"))).
		Symbol(grammar.Terminal("[^]", literal("^"))).
		Symbol(grammar.Terminal("(", literal("("))).
		Symbol(grammar.Terminal(")", literal(")")))
	b.Rule("Sum", "Sum", "[+-]", "Mul").
		Rule("Sum", "Mul").
		Rule("Mul", "Mul", "[*/]", "Pow").
		Rule("Mul", "Pow").
		Rule("Pow", "Num", "[^]", "Pow").
		Rule("Pow", "Num").
		Rule("Num", "(", "Sum", ")").
		Rule("Num", "Number")
	return b.Grammar("Sum")
}

func literal(s string) grammar.Predicate {
	return func(lexeme string) bool { return lexeme == s }
}

func oneOf(set string) grammar.Predicate {
	return func(lexeme string) bool {
		return len(lexeme) == 1 && strings.Contains(set, lexeme)
	}
}

func expectLeaves(t *testing.T, tree *Tree, lexemes []string) {
	t.Helper()
	if tree == nil {
		t.Fatalf("Expected a derivation tree, got none")
	}
	leaves := tree.Leaves()
	if len(leaves) != len(lexemes) {
		t.Fatalf("Expected leaves %v, got %v", lexemes, leaves)
	}
	for i, lexeme := range lexemes {
		if leaves[i] != lexeme {
			t.Errorf("Leaf #%d: expected %q, got %q", i, lexeme, leaves[i])
		}
	}
}

// --- the Tests -------------------------------------------------------------

func TestParseMathInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	g := grammarMath()
	parser := NewParser(g)
	ps, err := parser.Parse(scanner.NewLexer("1+(2*3-4)", "+*-/()"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	if len(ps.States) != 10 {
		t.Errorf("Expected a chart of 10 columns, got %d", len(ps.States))
	}
	tree := BuildTree(g, ps)
	expectLeaves(t, tree, []string{"1", "+", "(", "2", "*", "3", "-", "4", ")"})
	if tree.Symbol != "Sum" {
		t.Errorf("Expected root of tree to be Sum, is %s", tree.Symbol)
	}
}

func TestParseMathVarious(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	g := grammarMath()
	parser := NewParser(g)
	inputs := []string{
		"1+2^3^4*5/6+7*8^9",
		"(1+2^3)^4*5/6+7*8^9",
		"1+2^3^4*5",
		"(1+2)*3",
	}
	for _, input := range inputs {
		lexer := scanner.NewLexer(input, "+*-/()^")
		expected := scanner.Collect(scanner.NewLexer(input, "+*-/()^"))
		ps, err := parser.Parse(lexer)
		if err != nil {
			t.Fatalf("Valid input not accepted: %q: %v", input, err)
		}
		if len(ps.States) != len(expected)+1 {
			t.Errorf("Expected %d chart columns for %q, got %d", len(expected)+1,
				input, len(ps.States))
		}
		expectLeaves(t, BuildTree(g, ps), expected)
	}
}

func TestParseBadInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// All lexemes are consumed without an early death, but no full-span
	// derivation exists: the grammar rejects the string.
	parser := NewParser(grammarMath())
	_, err := parser.Parse(scanner.NewLexer("1+", "+*"))
	if err != ErrBadInput {
		t.Errorf("Expected ErrBadInput, got %v", err)
	}
}

func TestParsePartialInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// The first two '+' complete a derivation of Start, the third one
	// cannot be scanned: a prefix parse survives the dead column.
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("Start")).
		Symbol(grammar.Terminal("+", literal("+")))
	b.Rule("Start", "+", "+")
	parser := NewParser(b.Grammar("Start"))
	_, err := parser.Parse(scanner.NewLexer("+++", "+"))
	if err != ErrPartialParse {
		t.Errorf("Expected ErrPartialParse, got %v", err)
	}
}

func TestParseLeftRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// S ::= S + N | N,  N ::= [0-9]
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("S")).
		Symbol(grammar.Nonterm("N")).
		Symbol(grammar.Terminal("[+]", literal("+"))).
		Symbol(grammar.Terminal("[0-9]", oneOf("1234567890")))
	b.Rule("S", "S", "[+]", "N").
		Rule("S", "N").
		Rule("N", "[0-9]")
	g := b.Grammar("S")
	ps, err := NewParser(g).Parse(scanner.NewLexer("1+2", "+"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	expectLeaves(t, BuildTree(g, ps), []string{"1", "+", "2"})
}

func TestParseRightRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// P ::= N ^ P | N,  N ::= [0-9]
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("P")).
		Symbol(grammar.Nonterm("N")).
		Symbol(grammar.Terminal("[^]", literal("^"))).
		Symbol(grammar.Terminal("[0-9]", oneOf("1234567890")))
	b.Rule("P", "N", "[^]", "P").
		Rule("P", "N").
		Rule("N", "[0-9]")
	g := b.Grammar("P")
	ps, err := NewParser(g).Parse(scanner.NewLexer("1^2", "^"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	expectLeaves(t, BuildTree(g, ps), []string{"1", "^", "2"})
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// A ::= ε | B,  B ::= A — the empty input has a derivation.
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("A")).Symbol(grammar.Nonterm("B"))
	b.Rule("A").Rule("A", "B").Rule("B", "A")
	g := b.Grammar("A")
	ps, err := NewParser(g).Parse(scanner.NewLexer("", "-"))
	if err != nil {
		t.Fatalf("Expected successful parse of empty input, got %v", err)
	}
	if len(ps.States) != 1 {
		t.Errorf("Expected a chart of 1 column, got %d", len(ps.States))
	}
	tree := BuildTree(g, ps)
	if tree == nil || tree.Symbol != "A" || len(tree.Children) != 0 {
		t.Errorf("Expected a childless A node, got %v", tree)
	}
	if !tree.Span.IsNull() {
		t.Errorf("Expected epsilon derivation to have a zero-width span")
	}
}

func TestParseAmbiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// S ::= S S | b is Earley's classic cyclic-ambiguity corner case.
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("S")).
		Symbol(grammar.Terminal("b", literal("b")))
	b.Rule("S", "S", "S").Rule("S", "b")
	g := b.Grammar("S")
	ps, err := NewParser(g).Parse(scanner.NewLexer("b b b", " "))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	if len(ps.States) != 4 {
		t.Errorf("Expected a chart of 4 columns, got %d", len(ps.States))
	}
	var trees []*Tree
	iter := BuildTrees(g, ps)
	for tree, ok := iter.Next(); ok; tree, ok = iter.Next() {
		expectLeaves(t, tree, []string{"b", "b", "b"})
		trees = append(trees, tree)
	}
	if len(trees) != 2 {
		t.Fatalf("Expected 2 derivations of 'b b b', got %d", len(trees))
	}
	if trees[0].Hash() == trees[1].Hash() {
		t.Errorf("Expected the two bracketings to be distinct trees")
	}
}

func TestParseChainedTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// Nullable X interleaved with terminals in every position.
	variants := [][]string{
		{"X", "+"},
		{"+", "X"},
		{"X", "+", "+"},
		{"+", "+", "X"},
		{"+", "X", "+"},
	}
	for _, variant := range variants {
		input := "+"
		if len(variant) == 3 {
			input = "++"
		}
		b := grammar.NewBuilder()
		b.Symbol(grammar.Nonterm("E")).
			Symbol(grammar.Nonterm("X")).
			Symbol(grammar.Terminal("+", literal("+")))
		b.Rule("E", variant...).Rule("X")
		g := b.Grammar("E")
		ps, err := NewParser(g).Parse(scanner.NewLexer(input, "+"))
		if err != nil {
			t.Fatalf("Variant %v over %q not accepted: %v", variant, input, err)
		}
		expectLeaves(t, BuildTree(g, ps), scanner.Collect(scanner.NewLexer(input, "+")))
	}
}

func TestBuildTreesLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	// E ::= E + E | E * E | n over a chain of products has many
	// bracketings; pulling the first few must not expand them all.
	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("E")).
		Symbol(grammar.Terminal("+", literal("+"))).
		Symbol(grammar.Terminal("*", literal("*"))).
		Symbol(grammar.Terminal("n", oneOf("1234567890")))
	b.Rule("E", "E", "+", "E").
		Rule("E", "E", "*", "E").
		Rule("E", "n")
	g := b.Grammar("E")
	input := scanner.NewLexer("0*1*2*3*4*5", "+*")
	ps, err := NewParser(g).Parse(input)
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	trees := BuildTrees(g, ps).Take(3)
	if len(trees) != 3 {
		t.Fatalf("Expected to pull 3 derivations, got %d", len(trees))
	}
	for _, tree := range trees {
		expectLeaves(t, tree, []string{"0", "*", "1", "*", "2", "*", "3", "*", "4", "*", "5"})
	}
}

func TestFirstTreeMatchesBuildTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	g := grammarMath()
	parser := NewParser(g)
	ps, err := parser.Parse(scanner.NewLexer("1+2*3", "+*-/()^"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	single := BuildTree(g, ps)
	first, ok := BuildTrees(g, ps).Next()
	if !ok {
		t.Fatalf("Expected at least one enumerated derivation")
	}
	if single.Hash() != first.Hash() {
		t.Errorf("Expected BuildTree to equal the first enumerated tree")
	}
}

func TestParseIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.earley")
	defer teardown()
	//
	parser := NewParser(grammarMath())
	first, err := parser.Parse(scanner.NewLexer("1+2*3", "+*-/()^"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	second, err := parser.Parse(scanner.NewLexer("1+2*3", "+*-/()^"))
	if err != nil {
		t.Fatalf("Expected successful parse, got %v", err)
	}
	if len(first.States) != len(second.States) {
		t.Fatalf("Expected charts of equal length, got %d and %d",
			len(first.States), len(second.States))
	}
	for col := range first.States {
		a, b := first.States[col], second.States[col]
		if a.Size() != b.Size() {
			t.Fatalf("Column %d differs in size: %d vs %d", col, a.Size(), b.Size())
		}
		for n := 0; n < a.Size(); n++ {
			if !a.Item(n).Equals(b.Item(n)) || a.Item(n).End != b.Item(n).End {
				t.Errorf("Column %d item %d differs: %s vs %s", col, n, a.Item(n), b.Item(n))
			}
		}
	}
}
