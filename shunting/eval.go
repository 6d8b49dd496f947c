package shunting

import (
	"errors"
	"fmt"
	"math"
)

// ErrArgCount is returned when an operator or function finds the wrong
// number of operands on the evaluation stack.
var ErrArgCount = errors.New("shunting: wrong number of arguments")

// Context evaluates RPN expressions. It holds variable bindings; the
// constants pi and e are predefined.
type Context struct {
	vars map[string]float64
}

// NewContext creates an evaluation context with pi and e bound.
func NewContext() *Context {
	return &Context{vars: map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
	}}
}

// SetVar binds a variable name to a value, replacing any previous
// binding.
func (cx *Context) SetVar(name string, value float64) {
	cx.vars[name] = value
}

// Eval runs the stack machine over an RPN expression.
func (cx *Context) Eval(rpn RPN) (float64, error) {
	var operands []float64
	pop := func() (float64, error) {
		if len(operands) == 0 {
			return 0, ErrArgCount
		}
		v := operands[len(operands)-1]
		operands = operands[:len(operands)-1]
		return v, nil
	}
	for _, tok := range rpn {
		switch tok.Kind {
		case Number:
			operands = append(operands, tok.Value)
		case Variable:
			value, ok := cx.vars[tok.Lexeme]
			if !ok {
				return 0, fmt.Errorf("shunting: unknown variable %q", tok.Lexeme)
			}
			operands = append(operands, value)
		case BinaryOp:
			r, err := pop()
			if err != nil {
				return 0, err
			}
			l, err := pop()
			if err != nil {
				return 0, err
			}
			switch tok.Lexeme {
			case "+":
				operands = append(operands, l+r)
			case "-":
				operands = append(operands, l-r)
			case "*":
				operands = append(operands, l*r)
			case "/":
				operands = append(operands, l/r)
			case "%":
				operands = append(operands, math.Mod(l, r))
			case "^":
				operands = append(operands, math.Pow(l, r))
			default:
				return 0, fmt.Errorf("shunting: bad token %q", tok.Lexeme)
			}
		case UnaryOp:
			o, err := pop()
			if err != nil {
				return 0, err
			}
			switch tok.Lexeme {
			case "-":
				operands = append(operands, -o)
			case "!":
				operands = append(operands, math.Gamma(o+1))
			default:
				return 0, fmt.Errorf("shunting: bad token %q", tok.Lexeme)
			}
		case Function:
			if tok.Arity > len(operands) {
				return 0, ErrArgCount
			}
			cut := len(operands) - tok.Arity
			value, err := evalFn(tok.Lexeme, operands[cut:])
			if err != nil {
				return 0, err
			}
			operands = append(operands[:cut], value)
		default:
			return 0, fmt.Errorf("shunting: bad token %q", tok.Lexeme)
		}
	}
	if len(operands) == 0 {
		return 0, ErrArgCount
	}
	return operands[len(operands)-1], nil
}

func evalFn(name string, args []float64) (float64, error) {
	switch name {
	case "sin":
		if len(args) != 1 {
			return 0, ErrArgCount
		}
		return math.Sin(args[0]), nil
	case "cos":
		if len(args) != 1 {
			return 0, ErrArgCount
		}
		return math.Cos(args[0]), nil
	case "atan2":
		if len(args) != 2 {
			return 0, ErrArgCount
		}
		return math.Atan2(args[0], args[1]), nil
	case "abs":
		if len(args) != 1 {
			return 0, ErrArgCount
		}
		return math.Abs(args[0]), nil
	case "max":
		if len(args) == 0 {
			return 0, ErrArgCount
		}
		v := args[0]
		for _, arg := range args[1:] {
			v = math.Max(v, arg)
		}
		return v, nil
	case "min":
		if len(args) == 0 {
			return 0, ErrArgCount
		}
		v := args[0]
		for _, arg := range args[1:] {
			v = math.Min(v, arg)
		}
		return v, nil
	}
	return 0, fmt.Errorf("shunting: unknown function %q", name)
}
