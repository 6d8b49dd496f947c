package grammar

import "fmt"

// Builder accumulates symbols and rules and resolves name references
// into a Grammar. Grammars are assembled once, at startup, so misuse —
// duplicate symbol registration, referencing an unregistered name, an
// unknown start symbol — is a configuration error and panics.
type Builder struct {
	symbols map[string]*Symbol
	rules   []*Rule
}

// NewBuilder creates an empty grammar builder.
func NewBuilder() *Builder {
	return &Builder{
		symbols: make(map[string]*Symbol),
	}
}

// Symbol registers a symbol under its name. Names must be unique;
// duplicate registration panics.
func (b *Builder) Symbol(sym *Symbol) *Builder {
	if sym == nil {
		panic("grammar: builder given a nil symbol")
	}
	if _, ok := b.symbols[sym.Name()]; ok {
		panic(fmt.Sprintf("grammar: symbol %q registered twice", sym.Name()))
	}
	b.symbols[sym.Name()] = sym
	return b
}

// Rule appends a production, resolving the head and every body name
// against previously registered symbols. Referencing an unregistered
// name, or a head that is not a non-terminal, panics.
func (b *Builder) Rule(lhs string, rhs ...string) *Builder {
	head, ok := b.symbols[lhs]
	if !ok {
		panic(fmt.Sprintf("grammar: rule head %q is not a registered symbol", lhs))
	}
	if head.IsTerminal() {
		panic(fmt.Sprintf("grammar: rule head %q is a terminal symbol", lhs))
	}
	body := make([]*Symbol, len(rhs))
	for i, name := range rhs {
		sym, ok := b.symbols[name]
		if !ok {
			panic(fmt.Sprintf("grammar: rule body symbol %q is not registered", name))
		}
		body[i] = sym
	}
	b.rules = append(b.rules, &Rule{
		serial: len(b.rules),
		lhs:    head,
		rhs:    body,
	})
	return b
}

// Grammar finalizes the builder into an immutable grammar for the
// named start symbol: rules are indexed by head and nullability is
// computed. An unregistered start symbol panics. The builder must not
// be used afterwards.
func (b *Builder) Grammar(start string) *Grammar {
	startSym, ok := b.symbols[start]
	if !ok {
		panic(fmt.Sprintf("grammar: start symbol %q is not registered", start))
	}
	byLHS := make(map[string][]*Rule)
	for _, r := range b.rules {
		byLHS[r.lhs.Name()] = append(byLHS[r.lhs.Name()], r)
	}
	g := &Grammar{
		symbols:  b.symbols,
		rules:    b.rules,
		byLHS:    byLHS,
		start:    startSym,
		nullable: computeNullable(b.rules),
	}
	b.symbols = nil
	b.rules = nil
	tracer().Infof("grammar built: %d rules, start = %s", len(g.rules), g.start)
	return g
}
