/*
Package shunting is an operator-precedence parser and evaluator for
arithmetic expressions.

It is independent of the Earley machinery in this module: expressions
are parsed with Dijkstra's shunting-yard algorithm into reverse Polish
notation and evaluated by a small stack machine. Variables, function
calls with arbitrary arity, unary minus and postfix factorial are
supported.

Example:

	rpn, err := shunting.ParseString("3+4*2/-(1-5)^2^3")
	if err == nil {
	    value, err := shunting.NewContext().Eval(rpn)
	    ...
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package shunting

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramercy.shunting'.
func tracer() tracing.Trace {
	return tracing.Select("gramercy.shunting")
}

// Parse errors.
var (
	ErrMissingOpenParen  = errors.New("shunting: missing opening paren")
	ErrMissingCloseParen = errors.New("shunting: missing closing paren")
	ErrNoAssociativity   = errors.New("shunting: operator has no associativity")
)

// RPN is an expression in reverse Polish notation, ready for
// evaluation by a Context.
type RPN []Token

// ParseString tokenizes and parses an expression string.
func ParseString(expr string) (RPN, error) {
	return Parse(NewTokenizer(expr))
}

// Parse runs the shunting-yard algorithm over a token stream and
// returns the expression in reverse Polish notation. Function calls
// are tracked with an arity stack: every comma at the call's nesting
// level bumps the argument count of the innermost pending function.
func Parse(tokens TokenReader) (RPN, error) {
	var out RPN
	var stack []Token
	var arity []int
	for tok, ok := tokens.Next(); ok; tok, ok = tokens.Next() {
		switch tok.Kind {
		case Number, Variable:
			out = append(out, tok)
		case OpenParen:
			stack = append(stack, tok)
		case Function:
			stack = append(stack, tok)
			arity = append(arity, 1)
		case Comma, CloseParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != OpenParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, ErrMissingOpenParen
			}
			if tok.Kind == CloseParen {
				stack = stack[:len(stack)-1] // peel the matching paren
				if n := len(stack); n > 0 && stack[n-1].Kind == Function {
					f := stack[n-1]
					stack = stack[:n-1]
					f.Arity = arity[len(arity)-1]
					arity = arity[:len(arity)-1]
					out = append(out, f)
				}
			} else if len(arity) > 0 {
				arity[len(arity)-1]++
			}
		case UnaryOp, BinaryOp:
			prec, assoc := Precedence(tok)
			for len(stack) > 0 {
				top, _ := Precedence(stack[len(stack)-1])
				if top < prec {
					break
				}
				if top == prec {
					if assoc == Right {
						break
					}
					if assoc == NoAssoc {
						return nil, ErrNoAssociativity
					}
				}
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, fmt.Errorf("shunting: bad token %q", tok.Lexeme)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == OpenParen {
			return nil, ErrMissingCloseParen
		}
		out = append(out, top)
	}
	tracer().Debugf("parsed expression into %d RPN tokens", len(out))
	return out, nil
}
