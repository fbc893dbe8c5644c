/*
Package calc implements a small arithmetic-expression interpreter on top of
lexer and comb. It is intended as a usage blueprint for the toolbox: tokenizer
specs in priority order, a forward-declared recursive rule, Skip for dropping
concrete syntax, and Map for folding parsed values.

The grammar is the classic unambiguous expression grammar:

   Expr   ➞ Term (('+'|'-') Term)*
   Term   ➞ Factor (('*'|'/') Factor)*
   Factor ➞ number  |  '(' Expr ')'

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package calc

import (
	"strconv"

	"github.com/npillmayer/paco"
	"github.com/npillmayer/paco/comb"
	"github.com/npillmayer/paco/lexer"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paco.calc'.
func tracer() tracing.Trace {
	return tracing.Select("paco.calc")
}

// Token categories of the calculator language.
const (
	Number paco.TokType = "NUMBER"
	Op     paco.TokType = "OP"
	LParen paco.TokType = "LPAREN"
	RParen paco.TokType = "RPAREN"
	Space  paco.TokType = "WS"
)

// Specs returns the tokenizer specs of the calculator language, in priority
// order.
func Specs() []lexer.Spec {
	return []lexer.Spec{
		{Type: Space, Pattern: `[ \t\r\n]+`},
		{Type: Number, Pattern: `[0-9]+(\.[0-9]+)?`},
		{Type: LParen, Pattern: `\(`},
		{Type: RParen, Pattern: `\)`},
		{Type: Op, Pattern: `[-+*/]`},
	}
}

var tz *lexer.Tokenizer
var program *comb.Parser

// The grammar is assembled once; after the forward declaration is bound it is
// read-only and Eval may be called concurrently.
func init() {
	var err error
	tz, err = lexer.NewTokenizer(Specs())
	if err != nil {
		panic(err)
	}
	program = makeGrammar().Then(comb.Skip(comb.Finished))
}

// Tokenizer returns the calculator's tokenizer, e.g. for inspecting its
// label inventory.
func Tokenizer() *lexer.Tokenizer {
	return tz
}

func makeGrammar() *comb.Parser {
	number := comb.Some(func(t paco.Token) bool { return t.Typ == Number }).
		Named("number").
		Map(func(v interface{}) interface{} {
			n, _ := strconv.ParseFloat(v.(paco.Token).Value, 64)
			return n
		})
	op := func(c string) *comb.Parser {
		return comb.A(paco.MakeToken(Op, c))
	}
	lparen := comb.Skip(comb.A(paco.MakeToken(LParen, "(")))
	rparen := comb.Skip(comb.A(paco.MakeToken(RParen, ")")))

	expr := comb.NewForwardDecl()
	factor := number.Or(lparen.Then(expr).Then(rparen)).Named("factor")
	term := chain(factor, op("*").Or(op("/"))).Named("term")
	expr.Define(chain(term, op("+").Or(op("-"))).Named("expr"))
	return expr
}

// chain parses a left-associative operator chain, item (op item)*, and folds
// it into a float64.
func chain(item *comb.Parser, op *comb.Parser) *comb.Parser {
	return item.Then(comb.Many(op.Then(item))).Map(fold)
}

// fold reduces the value of a chain parser: a Sequence of the head value and
// the (possibly empty) list of (operator, operand) pairs.
func fold(v interface{}) interface{} {
	seq := v.(comb.Sequence)
	acc := seq[0].(float64)
	for _, item := range seq[1].([]interface{}) {
		pair := item.(comb.Sequence)
		operator := pair[0].(paco.Token)
		rhs := pair[1].(float64)
		switch operator.Value {
		case "+":
			acc += rhs
		case "-":
			acc -= rhs
		case "*":
			acc *= rhs
		case "/":
			acc /= rhs
		}
	}
	return acc
}

// Eval tokenizes and evaluates an arithmetic expression.
func Eval(input string) (float64, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return 0, err
	}
	v, err := program.Parse(tokens)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("%s = %v", input, v)
	return v.(float64), nil
}

// tokenize scans the input and drops whitespace tokens.
func tokenize(input string) ([]paco.Token, error) {
	all, err := tz.Tokenize(input).All()
	if err != nil {
		return nil, err
	}
	tokens := make([]paco.Token, 0, len(all))
	for _, t := range all {
		if t.Typ == Space {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
