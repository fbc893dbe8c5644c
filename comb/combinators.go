package comb

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/paco"
)

// Then is the sequential composition of two parsers. It runs p, and on
// success runs q from the resulting state. Values are merged by the
// flattening rule (see Sequence): values marked by Skip are dropped, a lone
// value stays unwrapped, everything else joins a flat Sequence.
func (p *Parser) Then(q *Parser) *Parser {
	name := fmt.Sprintf("(%s , %s)", p.name, q.name)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		v1, s2, fail := p.Run(toks, st)
		if fail != nil {
			return nil, st, fail
		}
		v2, s3, fail := q.Run(toks, s2)
		if fail != nil {
			return nil, st, fail
		}
		return merge(v1, v2), s3, nil
	})
}

// Or is the choice composition of two parsers. It tries p, and on failure
// retries q from the original position, passing forward the rightmost
// position p reached. Or is left-biased: if p succeeds, its result is
// returned regardless of whether q would also succeed.
func (p *Parser) Or(q *Parser) *Parser {
	name := fmt.Sprintf("(%s | %s)", p.name, q.name)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		v, s2, fail := p.Run(toks, st)
		if fail == nil {
			return v, s2, nil
		}
		return q.Run(toks, State{Pos: st.Pos, Max: fail.At.Max})
	})
}

// Map transforms a parser of some value into a parser of f applied to that
// value. It is useful for turning tokens into parts of an AST.
func (p *Parser) Map(f func(interface{}) interface{}) *Parser {
	name := fmt.Sprintf("(%s)", p.name)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		v, s2, fail := p.Run(toks, st)
		if fail != nil {
			return nil, st, fail
		}
		return f(v), s2, nil
	})
}

// Bind is the monadic bind: it runs p to get a value v, then runs the parser
// f(v) from the resulting state. Then and Map are expressible via Bind and
// Pure; Bind is the general hook for context-sensitive composition.
func (p *Parser) Bind(f func(interface{}) *Parser) *Parser {
	name := fmt.Sprintf("(%s >>=)", p.name)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		v, s2, fail := p.Run(toks, st)
		if fail != nil {
			return nil, st, fail
		}
		return f(v).Run(toks, s2)
	})
}

// Pure returns a parser that succeeds without consuming input, yielding x.
func Pure(x interface{}) *Parser {
	name := fmt.Sprintf("(pure %v)", x)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		return x, st, nil
	})
}

// Some returns a parser consuming exactly one token if pred holds on the
// current token. The token itself is the parsed value.
func Some(pred func(paco.Token) bool) *Parser {
	return NewParser("(some)", func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		if st.Pos >= len(toks) {
			return nil, st, &Failure{Msg: "no tokens left in the stream", At: st}
		}
		t := toks[st.Pos]
		if pred(t) {
			pos := st.Pos + 1
			s2 := State{Pos: pos, Max: maxOf(pos, st.Max)}
			tracer().Debugf("*matched* \"%s\", new state = %s", t, s2)
			return t, s2, nil
		}
		tracer().Debugf("failed \"%s\", state = %s", t, st)
		return nil, st, &Failure{Msg: "got unexpected token", At: st}
	})
}

// A returns a parser matching one token structurally equal to tok, i.e.
// matching on category and lexeme (positions do not take part).
func A(tok paco.Token) *Parser {
	return Some(tok.Equals).Named(fmt.Sprintf("(a \"%s\")", tok.Value))
}

// Many returns a parser applying p to the input sequence as long as p
// succeeds, yielding the list of parsed values. Many never fails; the
// position reached by the final, failing attempt is absorbed into Max so
// diagnostics reflect how far repetition probed.
//
// Many is iterative on purpose: repetition must not recurse proportionally
// to the input length. Wrapping a parser that can succeed on zero consumed
// tokens will loop; avoiding that is the caller's responsibility.
func Many(p *Parser) *Parser {
	name := fmt.Sprintf("{ %s }", p.name)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		res := arraylist.New()
		for {
			v, s2, fail := p.Run(toks, st)
			if fail != nil {
				return res.Values(), State{Pos: st.Pos, Max: fail.At.Max}, nil
			}
			res.Add(v)
			st = s2
		}
	})
}

// OnePlus returns a parser applying p one or more times, yielding the
// non-empty list of parsed values.
func OnePlus(p *Parser) *Parser {
	name := fmt.Sprintf("(%s , { %s })", p.name, p.name)
	rest := Many(p)
	return NewParser(name, func(toks []paco.Token, st State) (interface{}, State, *Failure) {
		v1, s2, fail := p.Run(toks, st)
		if fail != nil {
			return nil, st, fail
		}
		v2, s3, fail := rest.Run(toks, s2)
		if fail != nil {
			return nil, st, fail
		}
		vs := v2.([]interface{})
		out := make([]interface{}, 0, len(vs)+1)
		out = append(out, v1)
		return append(out, vs...), s3, nil
	})
}

// Maybe returns a parser that yields nil instead of failing.
func Maybe(p *Parser) *Parser {
	return p.Or(Pure(nil)).Named(fmt.Sprintf("[ %s ]", p.name))
}

// Skip returns a parser whose result is dropped by sequential composition.
// It is useful for throwing away elements of concrete syntax (",", ";", …).
func Skip(p *Parser) *Parser {
	return p.Map(func(v interface{}) interface{} {
		return ignored{v: v}
	})
}

// Finished succeeds with no value only if the cursor is at the end of the
// input sequence.
var Finished = NewParser("finished", func(toks []paco.Token, st State) (interface{}, State, *Failure) {
	if st.Pos >= len(toks) {
		return nil, st, nil
	}
	return nil, st, &Failure{Msg: "should have reached <EOF>", At: st}
})

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
