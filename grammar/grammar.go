/*
Package grammar holds the vocabulary of context-free grammars.

Grammars are specified using a builder object. Clients register
symbols — non-terminals and predicate-carrying terminals — and then add
rules by symbol name. Grammars may contain epsilon productions.

Example:

	b := grammar.NewBuilder()
	b.Symbol(grammar.Nonterm("Sum")).
	  Symbol(grammar.Terminal("num", func(lexeme string) bool {
	      _, err := strconv.Atoi(lexeme)
	      return err == nil
	  })).
	  Symbol(grammar.Terminal("+", func(lexeme string) bool { return lexeme == "+" }))
	b.Rule("Sum", "Sum", "+", "num")
	b.Rule("Sum", "num")
	g := b.Grammar("Sum")

After the grammar is complete, nullability of every non-terminal — can
it derive the empty string? — has been determined and is available via
Grammar.IsNullable. Grammars are immutable once built and may be shared
between concurrently running parsers without locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramercy.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gramercy.grammar")
}

// Grammar is the closed set of symbols and rules for a start symbol,
// together with derived nullability information. Grammars are built by
// a Builder and immutable afterwards.
type Grammar struct {
	symbols  map[string]*Symbol
	rules    []*Rule
	byLHS    map[string][]*Rule
	start    *Symbol
	nullable map[string]bool
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Symbol returns the registered symbol with the given name, or nil.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols[name]
}

// Rule returns the rule with the given serial number, or nil.
func (g *Grammar) Rule(serial int) *Rule {
	if serial < 0 || serial >= len(g.rules) {
		return nil
	}
	return g.rules[serial]
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rules returns all rules headed by the named non-terminal, in the
// order they were added. Callers must not modify the returned slice.
func (g *Grammar) Rules(name string) []*Rule {
	return g.byLHS[name]
}

// IsNullable is true iff the named non-terminal can derive the empty
// string, directly or transitively.
func (g *Grammar) IsNullable(name string) bool {
	return g.nullable[name]
}

// EachSymbol calls f for every registered symbol, in lexicographic
// name order.
func (g *Grammar) EachSymbol(f func(*Symbol)) {
	names := treeset.NewWith(utils.StringComparator)
	for name := range g.symbols {
		names.Add(name)
	}
	it := names.Iterator()
	for it.Next() {
		f(g.symbols[it.Value().(string)])
	}
}

// Dump is a debugging helper, tracing out all rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("start symbol = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	g.EachSymbol(func(sym *Symbol) {
		if !sym.IsTerminal() {
			tracer().Debugf("nullable(%s) = %v", sym, g.nullable[sym.Name()])
		}
	})
}

// Nullability is computed once at build time via fixed-point iteration:
// a non-terminal is nullable if it has an empty-body rule, or a rule
// whose every body symbol is itself nullable.
func computeNullable(rules []*Rule) map[string]bool {
	nullable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if nullable[r.lhs.Name()] {
				continue
			}
			all := true
			for _, sym := range r.rhs {
				if sym.IsTerminal() || !nullable[sym.Name()] {
					all = false
					break
				}
			}
			if all {
				nullable[r.lhs.Name()] = true
				changed = true
			}
		}
	}
	return nullable
}
