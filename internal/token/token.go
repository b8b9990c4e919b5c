// ==============================================================================================
// FILE: internal/token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: Defines the vocabulary of the seed language. Maps raw source code
//          text to semantic meanings (Tokens) for the Lexer and Parser.
// ==============================================================================================

package token

import "github.com/josharian/intern"

// Type is a string alias for a token category. Strings keep debugging and
// lexer dumps readable without a String() method per constant.
type Type string

// Token is a single lexical unit scanned from source. It carries the
// interned lexeme text plus the 1-based line and byte column at which it
// began; Newline carries the column of the line feed itself.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	IDENT  = "IDENT"
	INT    = "INT"
	STRING = "STRING"

	// Arithmetic and comparison punctuation. Spec.md lists only `( ) , + :`
	// and `->` explicitly, but ties the evaluator's Binary operator set to
	// the symbols `- * / == != < <= > >=` directly (see §4.4); the lexer's
	// punctuation set is extended to match so the parser can surface the
	// full precedence ladder, resolving the parser/evaluator operator-set
	// mismatch spec.md leaves open (see DESIGN.md).
	PLUS     = "+"
	MINUS    = "-"
	STAR     = "*"
	SLASH    = "/"
	EQ       = "=="
	NOT_EQ   = "!="
	LT       = "<"
	LTE      = "<="
	GT       = ">"
	GTE      = ">="
	LPAREN   = "("
	RPAREN   = ")"
	COMMA    = ","
	COLON    = ":"
	ARROW    = "->"

	// Keywords
	SET      = "SET"
	LOCK     = "LOCK"
	TO       = "TO"
	SHOW     = "SHOW"
	SAY      = "SAY"
	WARN     = "WARN"
	ASK      = "ASK"
	DEFINE   = "DEFINE"
	IF       = "IF"
	THEN     = "THEN"
	OTHERWISE = "OTHERWISE"
	LOOP     = "LOOP"
	FOREVER  = "FOREVER"
	REPEAT   = "REPEAT"
	FROM     = "FROM"
	TRY      = "TRY"
	ON       = "ON"
	ERROR    = "ERROR"
	MODULE   = "MODULE"
	START    = "START"
	WITH     = "WITH"
	AS       = "AS"
	RETURN   = "RETURN"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
)

// keywords maps reserved spellings to their TokenType. This is spec.md
// §4.1's list exactly — confirmed exhaustive against
// _examples/original_source/src/seed0/lexer.c's keyword_type(), which
// recognizes the same set and nothing more. "and", "or", and "not" are
// deliberately absent: they denote operators (see the parser's
// binaryOpPrecedence and parseUnary), not reserved spellings, so a program
// is free to use them as ordinary identifiers (`set and to 5`).
var keywords = map[string]Type{
	"set":       SET,
	"lock":      LOCK,
	"to":        TO,
	"show":      SHOW,
	"say":       SAY,
	"warn":      WARN,
	"ask":       ASK,
	"define":    DEFINE,
	"if":        IF,
	"then":      THEN,
	"otherwise": OTHERWISE,
	"loop":      LOOP,
	"forever":   FOREVER,
	"repeat":    REPEAT,
	"from":      FROM,
	"try":       TRY,
	"on":        ON,
	"error":     ERROR,
	"module":    MODULE,
	"start":     START,
	"with":      WITH,
	"as":        AS,
	"return":    RETURN,
	"break":     BREAK,
	"continue":  CONTINUE,
}

// LookupIdent classifies a scanned identifier: a reserved spelling maps to
// its keyword Type, anything else is a plain IDENT. Interning the literal is
// left to the caller (see Intern).
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Intern returns a canonical, shared copy of s. Used for identifier and
// keyword lexemes so repeated spellings (loop variables, parameter names,
// "set"/"show" on every line) don't keep re-allocating the same bytes.
func Intern(s string) string {
	return intern.String(s)
}

// IsReservedWord reports whether t is a keyword token type other than the
// plain identifier/literal kinds. Reserved words may still be referenced as
// bare identifiers in expression position (spec.md §4.2 tie-break (d)) — most
// visibly "ask", which is how a seed program names the ask builtin.
func IsReservedWord(t Type) bool {
	switch t {
	case IDENT, INT, STRING, EOF, NEWLINE,
		PLUS, MINUS, STAR, SLASH, EQ, NOT_EQ, LT, LTE, GT, GTE,
		LPAREN, RPAREN, COMMA, COLON, ARROW:
		return false
	default:
		return true
	}
}
