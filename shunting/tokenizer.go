package shunting

import (
	"strconv"
	"unicode"

	"github.com/dregot/gramercy/scanner"
)

// TokenReader is a lazy, finite sequence of arithmetic tokens.
type TokenReader interface {
	Next() (tok Token, ok bool)
}

// Tokenizer splits an expression string into arithmetic tokens. It is
// a hand-written tokenizer over a backtracking rune scanner.
//
// Operators are tried before numbers, so '-' is always lexed as an
// operator, never as the sign of a numeric literal. Whether it is the
// unary or the binary minus is decided from the previously emitted
// token. An identifier becomes a function token when the opening paren
// of its call follows immediately, otherwise it is a variable.
type Tokenizer struct {
	rs       *scanner.RuneScanner
	prev     Token
	havePrev bool
}

var _ TokenReader = (*Tokenizer)(nil)

// NewTokenizer creates a Tokenizer over an expression string.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{rs: scanner.NewRuneScanner(text)}
}

// Next is part of the TokenReader interface. Characters that fit no
// token class are emitted as single-character Unknown tokens; the
// parser turns those into errors.
func (tz *Tokenizer) Next() (Token, bool) {
	tz.rs.AcceptWhile(unicode.IsSpace)
	if tz.rs.EOF() {
		return Token{}, false
	}
	tok := tz.scan()
	tz.prev, tz.havePrev = tok, true
	return tok, true
}

func (tz *Tokenizer) scan() Token {
	mark := tz.rs.Pos()
	switch {
	case tz.rs.AcceptAny("<>="):
		tz.rs.Accept('=') // <=, >=, ==
		return BinOp(tz.rs.Extract(mark))
	case tz.rs.Accept('*'):
		tz.rs.Accept('*') // ** lexes as one operator
		return BinOp(tz.rs.Extract(mark))
	case tz.rs.AcceptAny("+-/%^"):
		op := tz.rs.Extract(mark)
		if op == "-" && tz.minusIsUnary() {
			return UnOp("-")
		}
		return BinOp(op)
	case tz.rs.Accept('!'):
		return UnOp("!")
	case tz.rs.Accept('('):
		return Token{Kind: OpenParen, Lexeme: "("}
	case tz.rs.Accept(')'):
		return Token{Kind: CloseParen, Lexeme: ")"}
	case tz.rs.Accept(','):
		return Token{Kind: Comma, Lexeme: ","}
	}
	if lexeme, ok := tz.scanNumber(); ok {
		value, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Token{Kind: Unknown, Lexeme: lexeme}
		}
		return Num(value)
	}
	if name, ok := tz.scanIdentifier(); ok {
		if c, peeked := tz.rs.Peek(); peeked && c == '(' {
			return Fn(name, 0)
		}
		return Var(name)
	}
	c, _ := tz.rs.Next()
	return Token{Kind: Unknown, Lexeme: string(c)}
}

// A minus is unary at the start of the expression and behind anything
// that cannot end an operand.
func (tz *Tokenizer) minusIsUnary() bool {
	if !tz.havePrev {
		return true
	}
	switch tz.prev.Kind {
	case BinaryOp, UnaryOp, OpenParen, Comma:
		return true
	}
	return false
}

const digits = "1234567890"

// scanNumber matches [0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?, backtracking
// over a dot or exponent marker that is not followed by digits.
func (tz *Tokenizer) scanNumber() (string, bool) {
	mark := tz.rs.Pos()
	if !tz.rs.AcceptAll(digits) {
		tz.rs.SetPos(mark)
		return "", false
	}
	frac := tz.rs.Pos()
	if tz.rs.Accept('.') && !tz.rs.AcceptAll(digits) {
		tz.rs.SetPos(frac)
	}
	exp := tz.rs.Pos()
	if tz.rs.AcceptAny("eE") {
		tz.rs.AcceptAny("+-")
		if !tz.rs.AcceptAll(digits) {
			tz.rs.SetPos(exp)
		}
	}
	return tz.rs.Extract(mark), true
}

// scanIdentifier matches [a-zA-Z_][a-zA-Z0-9_]*.
func (tz *Tokenizer) scanIdentifier() (string, bool) {
	mark := tz.rs.Pos()
	c, ok := tz.rs.Peek()
	if !ok || (c != '_' && !unicode.IsLetter(c)) {
		return "", false
	}
	tz.rs.AcceptWhile(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	return tz.rs.Extract(mark), true
}
