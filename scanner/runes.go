package scanner

import "strings"

// RuneScanner is a cursor over the runes of a string, with cheap
// backtracking via Pos/SetPos. Hand-written tokenizers, like the one
// in package shunting, are built on top of it.
type RuneScanner struct {
	input []rune
	pos   int
}

// NewRuneScanner creates a RuneScanner over text, positioned at the
// first rune.
func NewRuneScanner(text string) *RuneScanner {
	return &RuneScanner{input: []rune(text)}
}

// Pos returns the current cursor position, suitable for SetPos.
func (rs *RuneScanner) Pos() int {
	return rs.pos
}

// SetPos rewinds (or advances) the cursor to a position previously
// obtained from Pos.
func (rs *RuneScanner) SetPos(pos int) {
	rs.pos = pos
}

// EOF is true when the cursor is past the last rune.
func (rs *RuneScanner) EOF() bool {
	return rs.pos >= len(rs.input)
}

// Peek returns the rune under the cursor without consuming it.
func (rs *RuneScanner) Peek() (rune, bool) {
	if rs.EOF() {
		return 0, false
	}
	return rs.input[rs.pos], true
}

// Next consumes and returns the rune under the cursor.
func (rs *RuneScanner) Next() (rune, bool) {
	if rs.EOF() {
		return 0, false
	}
	rs.pos++
	return rs.input[rs.pos-1], true
}

// Accept consumes the rune under the cursor iff it equals r.
func (rs *RuneScanner) Accept(r rune) bool {
	if c, ok := rs.Peek(); ok && c == r {
		rs.pos++
		return true
	}
	return false
}

// AcceptAny consumes the rune under the cursor iff it is one of the
// characters of set.
func (rs *RuneScanner) AcceptAny(set string) bool {
	if c, ok := rs.Peek(); ok && strings.ContainsRune(set, c) {
		rs.pos++
		return true
	}
	return false
}

// AcceptAll consumes the maximal run of characters from set. It
// returns true if at least one rune was consumed.
func (rs *RuneScanner) AcceptAll(set string) bool {
	any := false
	for rs.AcceptAny(set) {
		any = true
	}
	return any
}

// AcceptWhile consumes the maximal run of runes satisfying pred. It
// returns true if at least one rune was consumed.
func (rs *RuneScanner) AcceptWhile(pred func(rune) bool) bool {
	any := false
	for {
		c, ok := rs.Peek()
		if !ok || !pred(c) {
			return any
		}
		rs.pos++
		any = true
	}
}

// Extract returns the text between a previously saved position and
// the cursor.
func (rs *RuneScanner) Extract(from int) string {
	return string(rs.input[from:rs.pos])
}
