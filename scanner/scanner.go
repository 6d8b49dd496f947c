/*
Package scanner produces lexeme streams for parsers.

The parser packages of this module never inspect characters directly;
they consume lexemes through the TokenStream interface and classify
them with terminal predicates. Any tokenizer meeting that contract is
substitutable. Two implementations are provided: (1) Lexer, a small
character-class tokenizer configured with a set of one-character
operator symbols, and (2) an adapter for lexmachine's DFA-based
scanner generator.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package scanner

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramercy.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gramercy.scanner")
}

// TokenStream is a lazy, finite, non-restartable sequence of lexemes.
// Next returns the next lexeme, or ok=false when the input is
// exhausted.
type TokenStream interface {
	Next() (lexeme string, ok bool)
}

// Lexer is a character-class tokenizer over a fixed string. It splits
// its input into lexemes following three rules, checked in order for
// every character:
//
//   - whitespace is consumed and emits nothing,
//   - a character from the configured operator set emits a
//     one-character lexeme,
//   - any maximal run of remaining characters emits one lexeme.
//
// Whitespace wins over the operator set, so listing a space character
// as an operator has no effect.
type Lexer struct {
	input     []rune
	pos       int
	operators string
}

var _ TokenStream = (*Lexer)(nil)

// NewLexer creates a Lexer over text. The characters of operators form
// the one-character-token set.
func NewLexer(text string, operators string) *Lexer {
	return &Lexer{
		input:     []rune(text),
		operators: operators,
	}
}

// Next is part of the TokenStream interface.
func (l *Lexer) Next() (string, bool) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return "", false
	}
	if strings.ContainsRune(l.operators, l.input[l.pos]) {
		l.pos++
		return string(l.input[l.pos-1]), true
	}
	start := l.pos
	for l.pos < len(l.input) && !unicode.IsSpace(l.input[l.pos]) &&
		!strings.ContainsRune(l.operators, l.input[l.pos]) {
		l.pos++
	}
	lexeme := string(l.input[start:l.pos])
	tracer().Debugf("lexer emits %q", lexeme)
	return lexeme, true
}

// Collect drains a TokenStream into a slice. Intended for tests and
// debugging; it defeats the laziness of the stream.
func Collect(stream TokenStream) []string {
	var lexemes []string
	for {
		lexeme, ok := stream.Next()
		if !ok {
			return lexemes
		}
		lexemes = append(lexemes, lexeme)
	}
}
