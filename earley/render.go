package earley

import (
	"fmt"

	"github.com/pterm/pterm"
)

// RenderTree prints a derivation tree to the terminal, one branch per
// line. We use pterm for moderately fancy output; leaves show the
// matched lexeme next to the terminal's name.
func RenderTree(t *Tree) {
	if t == nil {
		return
	}
	ll := leveled(t, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveled(t *Tree, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := t.Symbol
	if t.IsLeaf() {
		text = fmt.Sprintf("%s %q", t.Symbol, t.Lexeme)
	} else if len(t.Children) == 0 {
		text = fmt.Sprintf("%s ε", t.Symbol)
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, ch := range t.Children {
		ll = leveled(ch, ll, level+1)
	}
	return ll
}
