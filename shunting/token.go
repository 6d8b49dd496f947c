package shunting

// TokenKind discriminates the token variants of arithmetic expressions.
type TokenKind int

// Token kinds produced by the Tokenizer.
const (
	Unknown TokenKind = iota
	Number
	Variable
	Function
	BinaryOp
	UnaryOp
	OpenParen
	CloseParen
	Comma
)

// Token is one lexical element of an arithmetic expression. Tokens are
// small value types and compare with ==.
type Token struct {
	Kind   TokenKind
	Lexeme string  // operator, variable or function name; empty for numbers
	Value  float64 // set for Number tokens
	Arity  int     // set for Function tokens after parsing
}

// Num creates a number token.
func Num(value float64) Token {
	return Token{Kind: Number, Value: value}
}

// Var creates a variable reference token.
func Var(name string) Token {
	return Token{Kind: Variable, Lexeme: name}
}

// Fn creates a function call token. The tokenizer emits functions with
// arity 0; the parser fills in the argument count.
func Fn(name string, arity int) Token {
	return Token{Kind: Function, Lexeme: name, Arity: arity}
}

// BinOp creates a binary operator token.
func BinOp(op string) Token {
	return Token{Kind: BinaryOp, Lexeme: op}
}

// UnOp creates a unary operator token.
func UnOp(op string) Token {
	return Token{Kind: UnaryOp, Lexeme: op}
}

func (kind TokenKind) String() string {
	switch kind {
	case Number:
		return "number"
	case Variable:
		return "variable"
	case Function:
		return "function"
	case BinaryOp:
		return "binary-op"
	case UnaryOp:
		return "unary-op"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Comma:
		return ","
	}
	return "unknown"
}

// Assoc is an operator's associativity.
type Assoc int

// Associativity values. NoAssoc operators cannot be chained.
const (
	Left Assoc = iota
	Right
	NoAssoc
)

// Precedence returns binding strength and associativity of a token.
// The opening paren sits at the bottom so that it shields the operator
// stack; unary minus and exponentiation share one right-associative
// level, which makes -2^3 parse as -(2^3) and 2^-3 evaluate the way
// calculators do.
func Precedence(tok Token) (int, Assoc) {
	switch tok.Kind {
	case OpenParen:
		return 1, Left
	case BinaryOp:
		switch tok.Lexeme {
		case "+", "-":
			return 2, Left
		case "*", "/", "%":
			return 3, Left
		case "^":
			return 5, Right
		}
	case UnaryOp:
		switch tok.Lexeme {
		case "-":
			return 5, Right
		case "!":
			return 6, Left
		}
	case Function:
		return 7, Left
	}
	return 99, NoAssoc
}
