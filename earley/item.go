package earley

import (
	"bytes"
	"fmt"

	"github.com/dregot/gramercy/grammar"
	"github.com/emirpasic/gods/lists/arraylist"
)

// Item is a dotted rule: a rule, a dot position within its body, and
// the chart column where recognition of the rule began (origin).
// A dot behind the last body symbol marks a completed recognition.
//
// Items are value types. Advancing the dot produces a new item; items
// in the chart are never mutated. The End coordinate records the chart
// column holding the item. It is informational only and does not
// participate in item identity, since a given (rule, dot, origin)
// triple can sit at only one column at a time.
type Item struct {
	rule   *grammar.Rule
	dot    int
	Origin int
	End    int
}

// NewItem creates an item for a rule with the dot at position dot.
func NewItem(rule *grammar.Rule, dot, origin, end int) Item {
	if rule == nil {
		panic("earley: item created without a rule")
	}
	if dot < 0 || dot > len(rule.RHS()) {
		panic(fmt.Sprintf("earley: dot position %d out of range for %s", dot, rule))
	}
	return Item{rule: rule, dot: dot, Origin: origin, End: end}
}

// Rule returns the production this item is an instance of.
func (item Item) Rule() *grammar.Rule {
	return item.rule
}

// Dot returns the dot position within the rule's body.
func (item Item) Dot() int {
	return item.dot
}

// Completed is true if the dot is behind the last body symbol.
func (item Item) Completed() bool {
	return item.dot >= len(item.rule.RHS())
}

// PeekSymbol returns the body symbol right behind the dot, or nil for
// completed items.
func (item Item) PeekSymbol() *grammar.Symbol {
	if item.Completed() {
		return nil
	}
	return item.rule.RHS()[item.dot]
}

// Advance moves the dot over the awaited symbol, returning a new item
// sitting at chart column at. The origin is unchanged.
func (item Item) Advance(at int) Item {
	return Item{rule: item.rule, dot: item.dot + 1, Origin: item.Origin, End: at}
}

// Equals compares two items structurally over (rule, dot, origin).
// The End coordinate is ignored (see type comment).
func (item Item) Equals(other Item) bool {
	return item.dot == other.dot && item.Origin == other.Origin &&
		item.rule.Equals(other.rule)
}

func (item Item) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s ::=", item.rule.LHS().Name())
	for i, sym := range item.rule.RHS() {
		if i == item.dot {
			b.WriteString(" ∙")
		}
		b.WriteString(" ")
		b.WriteString(sym.Name())
	}
	if item.Completed() {
		b.WriteString(" ∙")
	}
	fmt.Fprintf(&b, " (%d)", item.Origin)
	return b.String()
}

// --- State sets -------------------------------------------------------

// StateSet is the chart column for a single token position: a
// deduplicated collection of items, preserving first-insertion order.
// Insertion order matters; it makes tree reconstruction deterministic.
type StateSet struct {
	items *arraylist.List
}

// NewStateSet creates an empty chart column.
func NewStateSet() *StateSet {
	return &StateSet{items: arraylist.New()}
}

// Push inserts an item unless an equal one is already present. It
// reports whether the set grew.
func (set *StateSet) Push(item Item) bool {
	if set.Contains(item) {
		return false
	}
	set.items.Add(item)
	return true
}

// Contains checks for an item equal to item (End ignored).
func (set *StateSet) Contains(item Item) bool {
	for n := 0; n < set.items.Size(); n++ {
		if set.Item(n).Equals(item) {
			return true
		}
	}
	return false
}

// Size returns the number of items in the column.
func (set *StateSet) Size() int {
	return set.items.Size()
}

// Item returns the item at insertion position n.
func (set *StateSet) Item(n int) Item {
	v, ok := set.items.Get(n)
	if !ok {
		panic(fmt.Sprintf("earley: no item at position %d in state set", n))
	}
	return v.(Item)
}

// Each calls f for every item, in insertion order.
func (set *StateSet) Each(f func(Item)) {
	set.items.Each(func(_ int, v interface{}) {
		f(v.(Item))
	})
}

func (set *StateSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	set.Each(func(item Item) {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	})
	b.WriteString(" }")
	return b.String()
}
