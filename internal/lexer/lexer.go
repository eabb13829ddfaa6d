package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes SWAN source code into a flat stream of tokens.
// Whitespace, newlines, and line comments are discarded.
type Lexer struct {
	source  string  // the full source text
	tokens  []Token // accumulated tokens
	start   int     // byte offset of current token start
	current int     // byte offset of current position
	line    int     // current line number (1-based)
	column  int     // current column number (1-based)

	startLine   int // line where the current token started
	startColumn int // column where the current token started
}

// New creates a new Lexer for the given source code.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		tokens: make([]Token, 0, 256),
		line:   1,
		column: 1,
	}
}

// Tokenize processes the entire source and returns all tokens.
// The token stream always ends with TOKEN_EOF. The first unrecognized
// character aborts the scan with a positioned error.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.startLine = l.line
	l.startColumn = l.column
	l.emit(TOKEN_EOF, "")
	return l.tokens, nil
}

// scanToken scans and emits the next token from the current position.
func (l *Lexer) scanToken() error {
	r := l.peekRune()

	switch {
	case r == '\n':
		l.advance()
		l.line++
		l.column = 1
		return nil

	case r == '\r':
		l.advance()
		if !l.isAtEnd() && l.peekRune() == '\n' {
			l.advance()
		}
		l.line++
		l.column = 1
		return nil

	case r == ' ' || r == '\t':
		l.advance()
		return nil

	case r == '/':
		// Only // line comments exist; a lone slash is an error.
		if l.peekRuneAt(l.current+1) == '/' {
			l.skipComment()
			return nil
		}
		return l.errorf("unexpected character %q", r)

	case r == '"':
		return l.scanString()

	case isDigit(r):
		l.scanNumber()
		return nil

	case isAlpha(r) || r == '_':
		l.scanWord()
		return nil

	default:
		return l.scanOperator()
	}
}

// scanOperator scans a punctuation or operator token. Among operators
// sharing a prefix, the longest match wins (`<=` before `<`, `==`
// before `=`, `->` before a bare `-`, which is not a token at all).
func (l *Lexer) scanOperator() error {
	r := l.peekRune()
	next := l.peekRuneAt(l.current + 1)

	emit2 := func(t TokenType, text string) {
		l.advance()
		l.advance()
		l.emit(t, text)
	}
	emit1 := func(t TokenType, text string) {
		l.advance()
		l.emit(t, text)
	}

	switch r {
	case '-':
		if next == '>' {
			emit2(TOKEN_ARROW, "->")
			return nil
		}
		return l.errorf("unexpected character %q", r)
	case '{':
		emit1(TOKEN_LBRACE, "{")
	case '}':
		emit1(TOKEN_RBRACE, "}")
	case '[':
		emit1(TOKEN_LBRACKET, "[")
	case ']':
		emit1(TOKEN_RBRACKET, "]")
	case ',':
		emit1(TOKEN_COMMA, ",")
	case '.':
		emit1(TOKEN_DOT, ".")
	case '=':
		if next == '=' {
			emit2(TOKEN_EQ, "==")
		} else {
			emit1(TOKEN_ASSIGN, "=")
		}
	case '!':
		if next == '=' {
			emit2(TOKEN_NEQ, "!=")
		} else {
			emit1(TOKEN_BANG, "!")
		}
	case '<':
		if next == '=' {
			emit2(TOKEN_LTE, "<=")
		} else {
			emit1(TOKEN_LT, "<")
		}
	case '>':
		if next == '=' {
			emit2(TOKEN_GTE, ">=")
		} else {
			emit1(TOKEN_GT, ">")
		}
	case '&':
		if next == '&' {
			emit2(TOKEN_AND, "&&")
		} else {
			emit1(TOKEN_AMP, "&")
		}
	case '|':
		if next == '|' {
			emit2(TOKEN_OR, "||")
			return nil
		}
		return l.errorf("unexpected character %q", r)
	case ':':
		emit1(TOKEN_COLON, ":")
	case '?':
		emit1(TOKEN_QUESTION, "?")
	case '+':
		emit1(TOKEN_PLUS, "+")
	default:
		return l.errorf("unexpected character %q", r)
	}
	return nil
}

// scanString scans a double-quoted string literal. The contents are taken
// verbatim: there is no escape syntax, so a string cannot contain a quote.
func (l *Lexer) scanString() error {
	l.advance() // consume opening "

	for !l.isAtEnd() {
		r := l.peekRune()
		if r == '"' {
			content := l.source[l.start+1 : l.current]
			l.advance() // consume closing "
			l.emit(TOKEN_STRING_LIT, content)
			return nil
		}
		if r == '\n' || r == '\r' {
			break
		}
		l.advance()
	}

	return l.errorf("unterminated string")
}

// scanNumber scans an integer or decimal number. No sign, no exponent.
func (l *Lexer) scanNumber() {
	for !l.isAtEnd() && isDigit(l.peekRune()) {
		l.advance()
	}

	// A decimal point only counts when a digit follows, so `1.` stays
	// NUMBER(1) DOT and member access on numbers never lexes.
	if !l.isAtEnd() && l.peekRune() == '.' {
		next := l.current + 1
		if next < len(l.source) && isDigit(l.peekRuneAt(next)) {
			l.advance() // consume .
			for !l.isAtEnd() && isDigit(l.peekRune()) {
				l.advance()
			}
		}
	}

	l.emit(TOKEN_NUMBER_LIT, l.source[l.start:l.current])
}

// scanWord scans a keyword or identifier.
func (l *Lexer) scanWord() {
	for !l.isAtEnd() {
		r := l.peekRune()
		if isAlphaNumeric(r) {
			l.advance()
			continue
		}
		break
	}

	word := l.source[l.start:l.current]
	l.emit(LookupKeyword(word), word)
}

// skipComment consumes a // comment up to (but not including) the newline.
func (l *Lexer) skipComment() {
	for !l.isAtEnd() && l.peekRune() != '\n' && l.peekRune() != '\r' {
		l.advance()
	}
}

// ── Character scanning helpers ──

// isAtEnd returns true if the lexer has reached the end of the source.
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// peekRune returns the rune at the current position without advancing.
func (l *Lexer) peekRune() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

// peekRuneAt returns the rune at the given byte offset.
func (l *Lexer) peekRuneAt(offset int) rune {
	if offset >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[offset:])
	return r
}

// advance consumes the current rune and moves forward.
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

// emit adds a token to the output stream, positioned at the token start.
func (l *Lexer) emit(tokenType TokenType, literal string) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startColumn,
	})
	l.start = l.current
}

// errorf returns a formatted error positioned at the current token start.
func (l *Lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d, column %d: %s",
		l.startLine, l.startColumn, fmt.Sprintf(format, args...))
}

// ── Character classification helpers ──

func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
