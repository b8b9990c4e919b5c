// ==============================================================================================
// FILE: internal/lexer/lexer_unit_test.go
// ==============================================================================================
// PURPOSE: Validates token-by-token scanning for each punctuation/keyword
//          class, string/number literals, and line/column tracking.
// ==============================================================================================

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seedscript/seed/internal/token"
)

type expectedTok struct {
	Type    token.Type
	Literal string
}

func collect(t *testing.T, input string) []expectedTok {
	t.Helper()
	l := New(input)
	var out []expectedTok
	for {
		tok := l.NextToken()
		out = append(out, expectedTok{tok.Type, tok.Literal})
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestNextToken_Punctuation(t *testing.T) {
	input := `+ - * / == != < <= > >= ( ) , : ->`
	got := collect(t, input)
	want := []expectedTok{
		{token.PLUS, "+"}, {token.MINUS, "-"}, {token.STAR, "*"}, {token.SLASH, "/"},
		{token.EQ, "=="}, {token.NOT_EQ, "!="}, {token.LT, "<"}, {token.LTE, "<="},
		{token.GT, ">"}, {token.GTE, ">="}, {token.LPAREN, "("}, {token.RPAREN, ")"},
		{token.COMMA, ","}, {token.COLON, ":"}, {token.ARROW, "->"}, {token.EOF, ""},
	}
	assert.Equal(t, want, got)
}

func TestNextToken_KeywordsAndIdent(t *testing.T) {
	input := "set lock show say warn ask define if then otherwise loop forever repeat from try return break continue and or not count"
	got := collect(t, input)
	wantTypes := []token.Type{
		token.SET, token.LOCK, token.SHOW, token.SAY, token.WARN, token.ASK, token.DEFINE,
		token.IF, token.THEN, token.OTHERWISE, token.LOOP, token.FOREVER, token.REPEAT,
		token.FROM, token.TRY, token.RETURN, token.BREAK, token.CONTINUE, token.IDENT,
		token.IDENT, token.IDENT, token.IDENT, token.EOF,
	}
	if assert.Len(t, got, len(wantTypes)) {
		for i, want := range wantTypes {
			assert.Equal(t, want, got[i].Type, "token %d", i)
		}
	}
}

// "and", "or", and "not" are not reserved spellings (spec.md §4.1's keyword
// list excludes them); they lex as plain identifiers and only the parser
// treats them as operators, contextually.
func TestNextToken_AndOrNotLexAsIdent(t *testing.T) {
	got := collect(t, "and or not")
	for i, word := range []string{"and", "or", "not"} {
		assert.Equal(t, token.Type(token.IDENT), got[i].Type, "token %d", i)
		assert.Equal(t, word, got[i].Literal, "token %d", i)
	}
}

func TestNextToken_StringLiteral_NoEscapes(t *testing.T) {
	l := New(`"hi \n there"`)
	tok := l.NextToken()
	assert.Equal(t, token.Type(token.STRING), tok.Type)
	assert.Equal(t, `hi \n there`, tok.Literal)
}

func TestNextToken_StringLiteral_ClosesAtNewline(t *testing.T) {
	l := New("\"unterminated\nshow 1")
	str := l.NextToken()
	assert.Equal(t, token.Type(token.STRING), str.Type)
	assert.Equal(t, "unterminated", str.Literal)
	nl := l.NextToken()
	assert.Equal(t, token.Type(token.NEWLINE), nl.Type)
}

func TestNextToken_Number(t *testing.T) {
	l := New("12345")
	tok := l.NextToken()
	assert.Equal(t, token.Type(token.INT), tok.Type)
	assert.Equal(t, "12345", tok.Literal)
}

func TestNextToken_LineComment(t *testing.T) {
	got := collect(t, "show 1 // trailing comment\nshow 2")
	var types []token.Type
	for _, g := range got {
		types = append(types, g.Type)
	}
	assert.Equal(t, []token.Type{
		token.SHOW, token.INT, token.NEWLINE, token.SHOW, token.INT, token.EOF,
	}, types)
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	l := New("show 1\n  show 2")
	show1 := l.NextToken()
	assert.Equal(t, 1, show1.Line)
	assert.Equal(t, 1, show1.Column)
	_ = l.NextToken() // "1"
	_ = l.NextToken() // newline
	show2 := l.NextToken()
	assert.Equal(t, 2, show2.Line)
	assert.Equal(t, 3, show2.Column)
}

// A bare "=" (not part of "==") doesn't fit any punctuation token, so it
// falls back to a single-character identifier rather than an error token
// (spec.md §4.1 — "Unknown punctuation becomes a single-character
// identifier"). The parser is what rejects it where it doesn't belong.
func TestNextToken_UnknownPunctuationBecomesIdent(t *testing.T) {
	l := New("=")
	tok := l.NextToken()
	assert.Equal(t, token.Type(token.IDENT), tok.Type)
	assert.Equal(t, "=", tok.Literal)
}

func TestNextToken_ArrowVsMinus(t *testing.T) {
	got := collect(t, "- ->")
	assert.Equal(t, token.Type(token.MINUS), got[0].Type)
	assert.Equal(t, token.Type(token.ARROW), got[1].Type)
}
