package grammar

import (
	"bytes"
	"fmt"
)

// Rule is a production of a grammar: a non-terminal head (LHS) plus an
// ordered body of symbols (RHS). The body may be empty, making the
// rule an epsilon rule.
//
// Rules are created by a Builder and are immutable thereafter. They are
// shared read-only by every chart item referencing them and outlive
// all of those items. Equality is structural over head and body, so
// the same rule text compares equal across grammar clones.
type Rule struct {
	serial int // rule number within its grammar
	lhs    *Symbol
	rhs    []*Symbol
}

// Serial returns the rule's number within its grammar.
func (r *Rule) Serial() int {
	return r.serial
}

// LHS returns the head symbol of the rule.
func (r *Rule) LHS() *Symbol {
	return r.lhs
}

// RHS returns the rule's body. Callers must not modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon is true for rules with an empty body.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Equals compares two rules structurally: same head, same body.
func (r *Rule) Equals(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	if !r.lhs.Equals(other.lhs) || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range r.rhs {
		if !sym.Equals(other.rhs[i]) {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%d: [%s] ::= [", r.serial, r.lhs)
	for i, sym := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name())
	}
	b.WriteString("]")
	return b.String()
}
