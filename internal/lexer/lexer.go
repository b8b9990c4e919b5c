// ==============================================================================================
// FILE: internal/lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Byte stream -> token stream for the seed language. Tracks
//          line/column, recognizes keywords, emits explicit Newline tokens
//          (the parser's indentation rule depends on them), and skips
//          "//" line comments.
// ==============================================================================================

package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seedscript/seed/internal/token"
)

// Lexer scans a source buffer into tokens. It does not own the buffer — the
// buffer must outlive every Token it hands out (spec.md §3 invariant iv).
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New creates a Lexer over input, starting at line 1.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	// Moving past a line feed starts the next line; the line feed itself
	// keeps the line and column at which it occurred.
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token, skipping whitespace and comments. A line
// feed is returned as an explicit Newline token rather than being skipped;
// blocks are laid out by column, so callers need to see every line break.
func (l *Lexer) NextToken() token.Token {
	l.skipInterTokenSpace()

	if l.ch == '/' && l.peekChar() == '/' {
		l.skipLineComment()
		l.skipInterTokenSpace()
	}

	var tok token.Token
	switch l.ch {
	case '\n':
		tok = l.newToken(token.NEWLINE, "\n")
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Literal: "->", Line: line, Column: col}
		} else {
			tok = l.newToken(token.MINUS, "-")
		}
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ':':
		tok = l.newToken(token.COLON, ":")
	case '=':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "==", Line: line, Column: col}
		} else {
			tok = l.newToken(token.IDENT, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!=", Line: line, Column: col}
		} else {
			tok = l.newToken(token.IDENT, "!")
		}
	case '<':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.LTE, Literal: "<=", Line: line, Column: col}
		} else {
			tok = l.newToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.GTE, Literal: ">=", Line: line, Column: col}
		} else {
			tok = l.newToken(token.GT, ">")
		}
	case '"':
		line, col := l.line, l.column
		str := l.readString()
		tok = token.Token{Type: token.STRING, Literal: str, Line: line, Column: col}
		return tok
	case 0:
		tok = token.Token{Type: token.EOF, Literal: "", Line: l.line, Column: l.column}
		return tok
	default:
		if isIdentStart(l.ch) {
			line, col := l.line, l.column
			ident := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(ident), Literal: token.Intern(ident), Line: line, Column: col}
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		// Unknown punctuation becomes a single-character identifier rather
		// than an error token (spec.md §4.1; matches the "unknown" fallback
		// in _examples/original_source/src/seed0/lexer.c, which has no
		// illegal-token concept at all). The parser rejects it wherever an
		// identifier doesn't fit.
		tok = l.newToken(token.IDENT, string(l.ch))
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(t token.Type, literal string) token.Token {
	return token.Token{Type: t, Literal: literal, Line: l.line, Column: l.column}
}

// skipInterTokenSpace skips spaces, tabs, and carriage returns but leaves
// line feeds alone — those become Newline tokens.
func (l *Lexer) skipInterTokenSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentCont(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.INT, Literal: l.input[start:l.position], Line: line, Column: col}
}

// readString consumes the bytes between double quotes. No escape sequences
// are recognized (spec.md §4.1): content is raw. A newline or EOF closes the
// token without being consumed, so the caller sees it on the next call.
func (l *Lexer) readString() string {
	l.readChar() // skip opening quote
	var out strings.Builder
	for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
		out.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar() // skip closing quote
	}
	return out.String()
}
