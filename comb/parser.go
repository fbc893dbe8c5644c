package comb

import (
	"fmt"

	"github.com/npillmayer/paco"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paco.comb'.
func tracer() tracing.Trace {
	return tracing.Select("paco.comb")
}

// State is a parsing state, maintained basically for error reporting.
// Pos is the current position in the token sequence being parsed; Max is the
// position of the rightmost token that has been reached while parsing, across
// all attempted branches. States are passed by value and never mutated in
// place.
type State struct {
	Pos int
	Max int
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.Pos, s.Max)
}

// Failure is the outcome of an unsuccessful parsing attempt. It is expected
// control flow: Or relies on inspecting one and retrying another branch.
type Failure struct {
	Msg string
	At  State
}

// Runner is the function type a Parser wraps: it consumes a token sequence
// from a given state and yields either a value with a new state, or a
// Failure. Exactly one of value/Failure is meaningful; on failure the
// returned State is the input state.
type Runner func(toks []paco.Token, st State) (interface{}, State, *Failure)

// Parser is an opaque unit pairing a Runner with a name for diagnostics.
// Parsers are immutable after construction, except that a forward-declared
// parser is bound exactly once with Define.
type Parser struct {
	name  string
	run   Runner
	bound bool
}

// NewParser wraps a Runner into a Parser.
func NewParser(name string, run Runner) *Parser {
	return &Parser{name: name, run: run, bound: true}
}

// Named specifies the name of the parser for more readable parsing logs.
func (p *Parser) Named(name string) *Parser {
	p.name = name
	return p
}

// Name returns the diagnostic name of the parser.
func (p *Parser) Name() string {
	return p.name
}

// Run applies the parser to a token sequence at a given state.
func (p *Parser) Run(toks []paco.Token, st State) (interface{}, State, *Failure) {
	tracer().Debugf("trying %s", p.name)
	return p.run(toks, st)
}

// Parse applies the parser to a sequence of tokens, producing a parsing
// result. It hides details related to the parser state, and it makes error
// messages more readable by reporting the position of the rightmost token
// that has been reached, not merely the last branch tried. Compose with
// Finished when full consumption of the input is required.
func (p *Parser) Parse(toks []paco.Token) (interface{}, error) {
	v, _, fail := p.Run(toks, State{})
	if fail == nil {
		return v, nil
	}
	found := "<EOF>"
	if fail.At.Max < len(toks) {
		found = toks[fail.At.Max].String()
	}
	tracer().Infof("parse failed, %s: %s", fail.Msg, found)
	return nil, &ParseError{Msg: fail.Msg, Found: found, At: fail.At}
}

// ParseError is the error returned by Parse. It references the single
// furthest point reached across the entire attempt tree.
type ParseError struct {
	Msg   string // the innermost failure's message
	Found string // display of the token at the furthest position, or "<EOF>"
	At    State
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Msg, e.Found)
}

// --- Forward declarations --------------------------------------------------

// NewForwardDecl returns an unbound parser to be used as a forward
// declaration for cyclic grammar rules. Running it before Define yields an
// ordinary Failure. Define it when all the parsers it depends on are
// available.
func NewForwardDecl() *Parser {
	p := &Parser{name: "forward_decl"}
	p.run = func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		return nil, st, &Failure{Msg: "forward declaration used before Define", At: st}
	}
	return p
}

// Define binds a forward-declared parser to the behavior of q. All prior
// references to p observe the bound behavior. A parser must be bound at most
// once; Define panics when called on an already defined parser. Binding has
// to complete before the grammar is run for the first time.
func (p *Parser) Define(q *Parser) *Parser {
	if p.bound {
		panic(fmt.Sprintf("parser %s is already defined, must not be rebound", p.name))
	}
	p.run = q.Run
	p.name = q.name
	p.bound = true
	return p
}

// Lazy returns a parser that computes its target from the suspension on
// every invocation. It covers the same cyclic-grammar cases as
// NewForwardDecl, trading a mutable binding for a small repeated-construction
// cost.
func Lazy(suspension func() *Parser) *Parser {
	return NewParser("lazy", func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		return suspension().Run(toks, st)
	})
}
