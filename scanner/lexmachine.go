package scanner

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter drives a lexmachine DFA scanner behind the TokenStream
// interface. It exists to demonstrate that the parser packages depend
// on the lexeme-stream contract only, not on the Lexer type.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. init may add
// arbitrary patterns to the lexer (numbers, identifiers, …); literals
// are one-character operator tokens and get escaped automatically.
// Whitespace is always skipped.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeLexeme)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a TokenStream for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMStream, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMStream{scanner: s, Error: logError}, nil
}

// LMStream adapts a single lexmachine scanner run to the TokenStream
// interface.
type LMStream struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ TokenStream = (*LMStream)(nil)

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Next is part of the TokenStream interface. Unrecognized input is
// reported through the stream's error handler and skipped.
func (lms *LMStream) Next() (string, bool) {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return "", false
	}
	return tok.(string), true
}

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeLexeme is a pre-defined action which passes the matched text on
// as a lexeme.
func MakeLexeme(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes), nil
}
