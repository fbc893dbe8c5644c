package paco

import "fmt"

// --- A general purpose token type ------------------------------------------

// TokType is a category label for a Token. We do not define any constants here,
// as it is up to applications to define them (e.g. "NUM", "IDENT", "WS").
type TokType string

// Tokens represent input tokens. They are produced by a tokenizer and
// reflect terminals in a language.
//
// An example would be a token for an integer literal:
//
//    Typ   = "NUM"       // category of this kind of tokens (application specific)
//    Value = "3141"      // lexeme how it appeared in the input stream
//    Span  = 1,5-1,8     // occurred in line 1, columns 5 to 8
//
// Tokens are immutable values. Two tokens are considered equal if category and
// lexeme match; positions never take part in equality (see Token.Equals).
type Token struct {
	Typ   TokType
	Value string
	Span  Span
}

// MakeToken creates a token without position information. Position-less tokens
// are mainly useful as comparison templates for grammars.
func MakeToken(typ TokType, value string) Token {
	return Token{Typ: typ, Value: value}
}

// MakeTokenAt creates a token covering a span of input positions.
func MakeTokenAt(typ TokType, value string, span Span) Token {
	return Token{Typ: typ, Value: value, Span: span}
}

// Equals compares two tokens structurally, i.e. by category and lexeme.
// Comparison of lexemes is naively case-sensitive.
func (t Token) Equals(other Token) bool {
	return t.Typ == other.Typ && t.Value == other.Value
}

func (t Token) String() string {
	if t.Span.IsNull() {
		return fmt.Sprintf("%s '%s'", t.Typ, t.Value)
	}
	return fmt.Sprintf("%s: %s '%s'", t.Span, t.Typ, t.Value)
}

// --- Positions and spans ---------------------------------------------------

// Pos is a position within a text input, counted in lines and columns.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Line, p.Col)
}

// Span is a small type for capturing a run of input positions. For every
// token a tokenizer will track which input positions the token covers.
// A span denotes a start position and an end position.
//
// Start columns are 1-based, end columns are the column count just after the
// last character of the lexeme. This asymmetry stems from how humans read
// position ranges in diagnostics and is for display only; clients must not do
// arithmetic with it.
type Span [2]Pos

// From returns the start position of a span.
func (s Span) From() Pos {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() Pos {
	return s[1]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s[0], s[1])
}
