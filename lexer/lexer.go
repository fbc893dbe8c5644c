package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/paco"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paco.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("paco.lexer")
}

// Spec pairs a token category with a regular expression (RE2 syntax).
// Flags holds optional RE2 flag letters ("i", "m", "s", "U"), applied to the
// whole pattern.
type Spec struct {
	Type    paco.TokType
	Pattern string
	Flags   string
}

// matcher is a compiled spec. Patterns are compiled anchored, so a matcher
// either matches at the cursor position or not at all.
type matcher struct {
	typ paco.TokType
	re  *regexp.Regexp
}

// Tokenizer turns text into a stream of tokens. It is built once from an
// ordered spec list and may be reused for arbitrarily many inputs.
type Tokenizer struct {
	matchers  []matcher
	labels    *treeset.Set
	signature string
}

// NewTokenizer compiles an ordered list of specs into a Tokenizer.
// Declaration order is priority order: during scanning the first spec that
// matches at the current position wins.
func NewTokenizer(specs []Spec) (*Tokenizer, error) {
	t := &Tokenizer{
		labels: treeset.NewWith(utils.StringComparator),
	}
	for _, spec := range specs {
		p := `\A(?:` + spec.Pattern + `)`
		if spec.Flags != "" {
			p = `\A(?` + spec.Flags + `:` + spec.Pattern + `)`
		}
		re, err := regexp.Compile(p)
		if err != nil {
			tracer().Errorf("cannot compile pattern for %s: %v", spec.Type, err)
			return nil, fmt.Errorf("cannot compile pattern for %s: %v", spec.Type, err)
		}
		t.matchers = append(t.matchers, matcher{typ: spec.Type, re: re})
		t.labels.Add(string(spec.Type))
	}
	if h, err := structhash.Hash(specs, 1); err == nil {
		t.signature = h
	}
	tracer().Debugf("compiled tokenizer %s with %d specs", t.signature, len(t.matchers))
	return t, nil
}

// Labels returns the sorted set of token categories this tokenizer may emit.
func (t *Tokenizer) Labels() []string {
	labels := make([]string, 0, t.labels.Size())
	for _, l := range t.labels.Values() {
		labels = append(labels, l.(string))
	}
	return labels
}

// Signature returns a fingerprint of the tokenizer's spec list. Two
// tokenizers built from identical spec lists share a signature.
func (t *Tokenizer) Signature() string {
	return t.signature
}

// Tokenize starts scanning an input text. The returned stream is lazy,
// single-pass and not restartable.
func (t *Tokenizer) Tokenize(input string) *Stream {
	return &Stream{
		tz:    t,
		input: input,
		line:  1,
	}
}

// Stream is a lazy sequence of tokens over one input text.
// Column bookkeeping is 0-based internally; emitted start columns are 1-based
// (see paco.Span for the display asymmetry).
type Stream struct {
	tz    *Tokenizer
	input string
	index int // byte index into input
	line  int // 1-based
	col   int // 0-based, counted in runes
}

// Next returns the next token. At the end of the input it returns io.EOF.
// If no spec matches at the current position, it returns a *LexError carrying
// the position and the offending source line.
func (s *Stream) Next() (paco.Token, error) {
	if s.index >= len(s.input) {
		return paco.Token{}, io.EOF
	}
	rest := s.input[s.index:]
	for _, m := range s.tz.matchers {
		loc := m.re.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		value := rest[:loc[1]]
		nls := strings.Count(value, "\n")
		endLine := s.line + nls
		var endCol int
		if nls == 0 {
			endCol = s.col + utf8.RuneCountInString(value)
		} else {
			endCol = utf8.RuneCountInString(value[strings.LastIndex(value, "\n")+1:])
		}
		token := paco.MakeTokenAt(m.typ, value, paco.Span{
			paco.Pos{Line: s.line, Col: s.col + 1},
			paco.Pos{Line: endLine, Col: endCol},
		})
		s.index += len(value)
		s.line, s.col = endLine, endCol
		tracer().Debugf("emit %s", token)
		return token, nil
	}
	err := &LexError{
		Pos:  paco.Pos{Line: s.line, Col: s.col + 1},
		Line: sourceLine(s.input, s.line),
	}
	tracer().Errorf(err.Error())
	return paco.Token{}, err
}

// All drains the stream, materializing the token sequence. Grammars need
// random access by position, so this is the usual bridge to package comb.
func (s *Stream) All() ([]paco.Token, error) {
	var tokens []paco.Token
	for {
		token, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
}

// LexError is returned when no spec matches at the current input position.
// It is unrecoverable for that scan.
type LexError struct {
	Pos  paco.Pos // position of the offending character, column 1-based
	Line string   // full text of the offending source line
}

func (e *LexError) Error() string {
	return fmt.Sprintf("cannot tokenize data: %d,%d: \"%s\"", e.Pos.Line, e.Pos.Col, e.Line)
}

// sourceLine recovers the text of a 1-based source line.
func sourceLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line-1 < len(lines) {
		return lines[line-1]
	}
	return ""
}
