package lexer

import (
	"io"
	"testing"

	"github.com/npillmayer/paco"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	tz, err := NewTokenizer([]Spec{
		{Type: "NUM", Pattern: `\d+`},
		{Type: "WS", Pattern: `\s+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tz.Tokenize("12 3").All()
	if err != nil {
		t.Fatal(err)
	}
	want := []paco.Token{
		paco.MakeTokenAt("NUM", "12", paco.Span{paco.Pos{Line: 1, Col: 1}, paco.Pos{Line: 1, Col: 2}}),
		paco.MakeTokenAt("WS", " ", paco.Span{paco.Pos{Line: 1, Col: 3}, paco.Pos{Line: 1, Col: 3}}),
		paco.MakeTokenAt("NUM", "3", paco.Span{paco.Pos{Line: 1, Col: 4}, paco.Pos{Line: 1, Col: 4}}),
	}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, token := range tokens {
		if token != want[i] {
			t.Errorf("Token #%d: expected %s, got %s", i, want[i], token)
		}
	}
}

func TestPriorityOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	keywordFirst, err := NewTokenizer([]Spec{
		{Type: "KEYWORD", Pattern: `if`},
		{Type: "IDENT", Pattern: `[a-z]+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := keywordFirst.Tokenize("if").All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Typ != "KEYWORD" {
		t.Errorf("Expected KEYWORD with keyword spec first, got %v", tokens)
	}
	identFirst, err := NewTokenizer([]Spec{
		{Type: "IDENT", Pattern: `[a-z]+`},
		{Type: "KEYWORD", Pattern: `if`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err = identFirst.Tokenize("if").All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Typ != "IDENT" {
		t.Errorf("Expected IDENT with general spec first, got %v", tokens)
	}
}

func TestLineBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	tz, err := NewTokenizer([]Spec{
		{Type: "IDENT", Pattern: `[a-z]+`},
		{Type: "NL", Pattern: `\n`},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tz.Tokenize("a\nbb").All()
	if err != nil {
		t.Fatal(err)
	}
	want := []paco.Token{
		paco.MakeTokenAt("IDENT", "a", paco.Span{paco.Pos{Line: 1, Col: 1}, paco.Pos{Line: 1, Col: 1}}),
		paco.MakeTokenAt("NL", "\n", paco.Span{paco.Pos{Line: 1, Col: 2}, paco.Pos{Line: 2, Col: 0}}),
		paco.MakeTokenAt("IDENT", "bb", paco.Span{paco.Pos{Line: 2, Col: 1}, paco.Pos{Line: 2, Col: 2}}),
	}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, token := range tokens {
		if token != want[i] {
			t.Errorf("Token #%d: expected %s, got %s", i, want[i], token)
		}
	}
}

func TestPatternFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	tz, err := NewTokenizer([]Spec{
		{Type: "IDENT", Pattern: `[a-z]+`, Flags: "i"},
	})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tz.Tokenize("ABC").All()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Value != "ABC" {
		t.Errorf("Expected case-insensitive match of 'ABC', got %v", tokens)
	}
}

func TestLexErrorReportsOffendingLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	tz, err := NewTokenizer([]Spec{
		{Type: "NUM", Pattern: `\d+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	stream := tz.Tokenize("12a")
	if _, err := stream.Next(); err != nil {
		t.Fatal(err)
	}
	_, err = stream.Next()
	lexerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("Expected *LexError, got %v", err)
	}
	if lexerr.Error() != `cannot tokenize data: 1,3: "12a"` {
		t.Errorf("Unexpected error message: %s", lexerr)
	}
}

func TestStreamEndsWithEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	tz, err := NewTokenizer([]Spec{
		{Type: "NUM", Pattern: `\d+`},
	})
	if err != nil {
		t.Fatal(err)
	}
	stream := tz.Tokenize("7")
	if _, err := stream.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := stream.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF at end of input, got %v", err)
	}
}

func TestLabelsAndSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paco.lexer")
	defer teardown()
	//
	specs := []Spec{
		{Type: "WS", Pattern: `\s+`},
		{Type: "NUM", Pattern: `\d+`},
	}
	tz1, err := NewTokenizer(specs)
	if err != nil {
		t.Fatal(err)
	}
	labels := tz1.Labels()
	if len(labels) != 2 || labels[0] != "NUM" || labels[1] != "WS" {
		t.Errorf("Expected sorted labels [NUM WS], got %v", labels)
	}
	tz2, err := NewTokenizer(specs)
	if err != nil {
		t.Fatal(err)
	}
	if tz1.Signature() == "" || tz1.Signature() != tz2.Signature() {
		t.Errorf("Expected identical spec lists to share a signature")
	}
}
