/*
Package earley implements a chart parser after Earley's algorithm.

The parser accepts any context-free grammar from package grammar,
including ambiguous ones and grammars with epsilon productions, with
no code-generation or table-construction step. Epsilon productions
are handled with the nullability fix of Aycock & Horspool ("Practical
Earley Parsing", The Computer Journal, 2002): wherever the symbol
behind the dot is a nullable non-terminal, the dot is moved over it
immediately, closing the derivation gap the naive algorithm leaves
open.

Example:

	parser := earley.NewParser(g)
	lexer := scanner.NewLexer("1+(2*3-4)", "+*-/()")
	ps, err := parser.Parse(lexer)
	if err == nil {
	    tree := earley.BuildTree(g, ps)
	    ...
	}

Parsing either succeeds, returning the chart for tree reconstruction,
or fails with one of exactly two errors: ErrBadInput if no derivation
of the input exists, ErrPartialParse if a derivation exists for a
strict prefix of the input but the remainder could not be continued.
Both are ordinary results; malformed input never panics.

A Parser holds no per-parse state and may be shared by concurrently
running parses of different inputs.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package earley

import (
	"errors"

	"github.com/dregot/gramercy/grammar"
	"github.com/dregot/gramercy/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramercy.earley'.
func tracer() tracing.Trace {
	return tracing.Select("gramercy.earley")
}

// Parse errors. These two are the complete failure taxonomy of chart
// construction; no other error kinds are produced.
var (
	// ErrBadInput means no viable derivation of the full input exists.
	ErrBadInput = errors.New("earley: no derivation for input")
	// ErrPartialParse means a derivation exists for a strict prefix of
	// the input; the trailing input is left unconsumed.
	ErrPartialParse = errors.New("earley: derivation covers only a prefix of input")
)

// Parser is an Earley chart parser for a fixed grammar. The grammar
// is read-only for the parser's lifetime; a single parser may run any
// number of parses, sequentially or concurrently.
type Parser struct {
	g *grammar.Grammar
}

// NewParser creates a parser for a grammar.
func NewParser(g *grammar.Grammar) *Parser {
	if g == nil {
		panic("earley: parser created without a grammar")
	}
	return &Parser{g: g}
}

// Grammar returns the grammar this parser recognizes.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// ParseState is the outcome of a successful parse: the chart, one
// state set per token position, plus the lexemes that were consumed.
// Column i+1 holds the items recognized after scanning lexeme i.
type ParseState struct {
	States  []*StateSet
	lexemes []string
}

// Lexeme returns the input lexeme scanned between chart columns i
// and i+1.
func (ps *ParseState) Lexeme(i int) string {
	return ps.lexemes[i]
}

// TokenCount returns the number of lexemes consumed by the parse.
func (ps *ParseState) TokenCount() int {
	return len(ps.lexemes)
}

// Parse runs chart construction over the lexemes of input.
//
// On success the returned ParseState carries one state set per token
// position, 0 through TokenCount. On failure, Parse returns
// ErrPartialParse if some prefix of the input has a derivation which
// could not be extended over the remaining lexemes, and ErrBadInput
// otherwise.
func (p *Parser) Parse(input scanner.TokenStream) (*ParseState, error) {
	ps := &ParseState{States: []*StateSet{NewStateSet()}}
	for _, r := range p.g.Rules(p.g.Start().Name()) {
		ps.States[0].Push(NewItem(r, 0, 0, 0))
	}
	p.saturate(ps, 0)
	dumpState(ps.States, 0)
	for i := 0; ; i++ {
		lexeme, ok := input.Next()
		if !ok {
			break
		}
		ps.lexemes = append(ps.lexemes, lexeme)
		next := NewStateSet()
		S := ps.States[i]
		for n := 0; n < S.Size(); n++ {
			item := S.Item(n)
			if sym := item.PeekSymbol(); sym != nil && sym.IsTerminal() && sym.Matches(lexeme) {
				next.Push(item.Advance(i + 1))
			}
		}
		ps.States = append(ps.States, next)
		if next.Size() == 0 {
			tracer().Debugf("scanning died at column %d on lexeme %q", i+1, lexeme)
			return nil, p.classifyDeadChart(ps)
		}
		p.saturate(ps, i+1)
		dumpState(ps.States, i+1)
	}
	if _, ok := p.fullParseItem(ps, len(ps.States)-1); ok {
		tracer().Infof("parse of %d lexemes accepted", ps.TokenCount())
		return ps, nil
	}
	// All lexemes scanned, no early death: a short complete prefix
	// does not count as a partial parse, the grammar simply rejects
	// the full string.
	return nil, ErrBadInput
}

// saturate closes column i under completion, prediction and
// nullable-completion. The column grows while it is being traversed,
// so a single pass over it reaches the fixed point.
func (p *Parser) saturate(ps *ParseState, i int) {
	S := ps.States[i]
	for n := 0; n < S.Size(); n++ {
		item := S.Item(n)
		sym := item.PeekSymbol()
		switch {
		case sym == nil:
			// Completion: the item's head has been recognized over
			// origin…i. Advance every item at its origin column that
			// awaits this head.
			head := item.Rule().LHS()
			origin := ps.States[item.Origin]
			for k := 0; k < origin.Size(); k++ {
				cand := origin.Item(k)
				if await := cand.PeekSymbol(); await != nil && await.Equals(head) {
					S.Push(cand.Advance(i))
				}
			}
		case !sym.IsTerminal():
			// Prediction: expect every rule for the awaited
			// non-terminal to start here.
			for _, r := range p.g.Rules(sym.Name()) {
				S.Push(NewItem(r, 0, i, i))
			}
			// Nullable-completion (Aycock/Horspool): if the awaited
			// non-terminal derives the empty string, move the dot
			// over it right away.
			if p.g.IsNullable(sym.Name()) {
				S.Push(item.Advance(i))
			}
		}
	}
}

// classifyDeadChart decides between partial parse and bad input after
// scanning produced an empty column: if any earlier column ends a
// complete derivation of the input prefix up to it, the prefix parse
// is reported; otherwise the input is plainly bad.
func (p *Parser) classifyDeadChart(ps *ParseState) error {
	for j := len(ps.States) - 2; j >= 0; j-- {
		if item, ok := p.fullParseItem(ps, j); ok {
			tracer().Debugf("prefix 0…%d has a derivation: %s", j, item)
			return ErrPartialParse
		}
	}
	return ErrBadInput
}

// fullParseItem looks up a completed start-symbol item spanning
// columns 0…col.
func (p *Parser) fullParseItem(ps *ParseState, col int) (Item, bool) {
	S := ps.States[col]
	for n := 0; n < S.Size(); n++ {
		item := S.Item(n)
		if item.Completed() && item.Origin == 0 && item.Rule().LHS().Equals(p.g.Start()) {
			return item, true
		}
	}
	return Item{}, false
}
