package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

func TestLexerMathInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	lexer := NewLexer("1+(2*3-4)", "+*-/()")
	expected := []string{"1", "+", "(", "2", "*", "3", "-", "4", ")"}
	lexemes := Collect(lexer)
	if len(lexemes) != len(expected) {
		t.Fatalf("Expected %d lexemes, got %v", len(expected), lexemes)
	}
	for i, lexeme := range expected {
		if lexemes[i] != lexeme {
			t.Errorf("Lexeme #%d: expected %q, got %q", i, lexeme, lexemes[i])
		}
	}
}

func TestLexerWhitespaceWinsOverOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	// A space in the operator set is still treated as whitespace.
	lexer := NewLexer("b b b", " ")
	lexemes := Collect(lexer)
	if len(lexemes) != 3 {
		t.Fatalf("Expected 3 lexemes, got %v", lexemes)
	}
	for _, lexeme := range lexemes {
		if lexeme != "b" {
			t.Errorf("Expected lexeme 'b', got %q", lexeme)
		}
	}
}

func TestLexerMaximalRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	lexer := NewLexer("  foo12+bar  baz ", "+")
	expected := []string{"foo12", "+", "bar", "baz"}
	lexemes := Collect(lexer)
	if len(lexemes) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, lexemes)
	}
	for i, lexeme := range expected {
		if lexemes[i] != lexeme {
			t.Errorf("Lexeme #%d: expected %q, got %q", i, lexeme, lexemes[i])
		}
	}
}

func TestLexerExhaustion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	lexer := NewLexer("x", "")
	if lexeme, ok := lexer.Next(); !ok || lexeme != "x" {
		t.Fatalf("Expected lexeme 'x', got %q (%v)", lexeme, ok)
	}
	for i := 0; i < 3; i++ {
		if _, ok := lexer.Next(); ok {
			t.Errorf("Expected exhausted stream to stay exhausted")
		}
	}
}

func TestRuneScannerBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	rs := NewRuneScanner("12.5e-3")
	mark := rs.Pos()
	if !rs.AcceptAll("0123456789") {
		t.Fatalf("Expected digits to be accepted")
	}
	if rs.Accept('x') {
		t.Errorf("Expected 'x' to be rejected")
	}
	if !rs.Accept('.') || !rs.AcceptAll("0123456789") {
		t.Fatalf("Expected fraction digits to be accepted")
	}
	if !rs.AcceptAny("eE") || !rs.AcceptAny("+-") || !rs.AcceptAll("0123456789") {
		t.Fatalf("Expected exponent to be accepted")
	}
	if rs.Extract(mark) != "12.5e-3" {
		t.Errorf("Expected to extract the full number, got %q", rs.Extract(mark))
	}
	rs.SetPos(mark)
	if c, ok := rs.Peek(); !ok || c != '1' {
		t.Errorf("Expected backtracking to position 0, peeking '1'")
	}
}

func TestLexmachineAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramercy.scanner")
	defer teardown()
	//
	adapter, err := NewLMAdapter(func(l *lexmachine.Lexer) {
		l.Add([]byte(`[0-9]+`), MakeLexeme)
	}, []string{"+", "*", "-", "/", "(", ")"})
	if err != nil {
		t.Fatalf("DFA compilation failed: %v", err)
	}
	stream, err := adapter.Scanner("1+(2*3-4)")
	if err != nil {
		t.Fatalf("scanner creation failed: %v", err)
	}
	reference := Collect(NewLexer("1+(2*3-4)", "+*-/()"))
	lexemes := Collect(stream)
	if len(lexemes) != len(reference) {
		t.Fatalf("Expected %v, got %v", reference, lexemes)
	}
	for i, lexeme := range reference {
		if lexemes[i] != lexeme {
			t.Errorf("Lexeme #%d: expected %q, got %q", i, lexeme, lexemes[i])
		}
	}
}
