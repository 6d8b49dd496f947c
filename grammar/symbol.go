package grammar

import "fmt"

// Predicate decides whether a terminal symbol recognizes a lexeme.
type Predicate func(lexeme string) bool

// Symbol is a vocabulary element of a grammar: either a named
// non-terminal, or a named terminal carrying a recognition predicate
// over lexeme text.
//
// Two non-terminals are equal iff their names match. Two terminals are
// equal only if they are the same instance: predicates are opaque
// function values without a canonical representation, so there is no
// meaningful structural equality for them. Two terminals built from
// textually identical predicates at different call sites compare
// unequal. This is a property of the type, not an oversight.
type Symbol struct {
	name string
	pred Predicate // nil for non-terminals
}

// Nonterm creates a non-terminal symbol.
func Nonterm(name string) *Symbol {
	return &Symbol{name: name}
}

// Terminal creates a terminal symbol recognizing lexemes by a predicate.
func Terminal(name string, pred Predicate) *Symbol {
	if pred == nil {
		panic(fmt.Sprintf("grammar: terminal %q created without a predicate", name))
	}
	return &Symbol{name: name, pred: pred}
}

// Name returns the symbol's name.
func (s *Symbol) Name() string {
	return s.name
}

// IsTerminal is true for terminal symbols.
func (s *Symbol) IsTerminal() bool {
	return s.pred != nil
}

// Matches applies a terminal's predicate to a lexeme. Non-terminals
// never match lexemes.
func (s *Symbol) Matches(lexeme string) bool {
	if s.pred == nil {
		return false
	}
	return s.pred(lexeme)
}

// Equals compares two symbols. Non-terminals compare by name,
// terminals by instance identity (see type comment).
func (s *Symbol) Equals(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.IsTerminal() || other.IsTerminal() {
		return s == other
	}
	return s.name == other.name
}

func (s *Symbol) String() string {
	if s == nil {
		return "<none>"
	}
	return s.name
}
