/*
Package gramercy is a grammar and parsing toolbox.

Gramercy focusses on parsing of general context-free grammars,
including ambiguous ones, without a code-generation step. Package
structure is as follows:

■ grammar: Package grammar holds the vocabulary of context-free
grammars — symbols, rules, a grammar builder — and derives nullability
information for non-terminals.

■ earley: Package earley implements a chart parser after Earley's
algorithm, together with reconstruction of one or all derivation
trees from a completed chart.

■ scanner: Package scanner defines the token-stream contract the
parser consumes, and provides two implementations: a small
character-class lexer and an adapter for lexmachine.

■ shunting: Package shunting is an independent operator-precedence
parser and evaluator for arithmetic expressions.

■ temporal: Package temporal generates lazy sequences of calendar
intervals.

The base package contains small data types which are used throughout
all the other packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package gramercy
