package lexer

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Structural tokens
	TOKEN_EOF TokenType = iota

	// Literal tokens
	TOKEN_STRING_LIT // "hello world"
	TOKEN_NUMBER_LIT // 42, 3.14
	TOKEN_IDENTIFIER // Home, userName, results

	// ── Declaration Keywords ──

	TOKEN_APP       // app
	TOKEN_PAGE      // page
	TOKEN_COMPONENT // component
	TOKEN_ENTRY     // entry

	// ── Statement Keywords ──

	TOKEN_USE     // use
	TOKEN_HEADER  // header
	TOKEN_TEXT    // text
	TOKEN_BUTTON  // button
	TOKEN_LINK    // link
	TOKEN_FIELD   // field
	TOKEN_INPUT   // input
	TOKEN_SUBMIT  // submit
	TOKEN_CLICK   // click
	TOKEN_ON      // on
	TOKEN_IF      // if
	TOKEN_QUERY   // query
	TOKEN_TABLE   // table
	TOKEN_COLUMNS // columns
	TOKEN_ROW     // row
	TOKEN_CHART   // chart
	TOKEN_SERIES  // series
	TOKEN_POINT   // point

	// ── Type Keywords ──

	TOKEN_STRING  // string
	TOKEN_NUMBER  // number (the type keyword, not a literal)
	TOKEN_BOOLEAN // boolean

	// ── Literal Keywords ──

	TOKEN_TRUE  // true
	TOKEN_FALSE // false

	// ── Chart Type Keywords ──

	TOKEN_BAR     // bar
	TOKEN_LINE    // line
	TOKEN_PIE     // pie
	TOKEN_AREA    // area
	TOKEN_SCATTER // scatter

	// ── Operators & Punctuation ──

	TOKEN_ARROW    // ->
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_COMMA    // ,
	TOKEN_DOT      // .
	TOKEN_EQ       // ==
	TOKEN_NEQ      // !=
	TOKEN_LTE      // <=
	TOKEN_GTE      // >=
	TOKEN_LT       // <
	TOKEN_GT       // >
	TOKEN_AND      // &&
	TOKEN_OR       // ||
	TOKEN_BANG     // !
	TOKEN_ASSIGN   // =
	TOKEN_COLON    // :
	TOKEN_QUESTION // ?
	TOKEN_AMP      // &
	TOKEN_PLUS     // +
)

// tokenNames maps token types to their display names.
var tokenNames = map[TokenType]string{
	TOKEN_EOF: "EOF",

	TOKEN_STRING_LIT: "STRING",
	TOKEN_NUMBER_LIT: "NUMBER",
	TOKEN_IDENTIFIER: "IDENTIFIER",

	TOKEN_APP:       "app",
	TOKEN_PAGE:      "page",
	TOKEN_COMPONENT: "component",
	TOKEN_ENTRY:     "entry",

	TOKEN_USE:     "use",
	TOKEN_HEADER:  "header",
	TOKEN_TEXT:    "text",
	TOKEN_BUTTON:  "button",
	TOKEN_LINK:    "link",
	TOKEN_FIELD:   "field",
	TOKEN_INPUT:   "input",
	TOKEN_SUBMIT:  "submit",
	TOKEN_CLICK:   "click",
	TOKEN_ON:      "on",
	TOKEN_IF:      "if",
	TOKEN_QUERY:   "query",
	TOKEN_TABLE:   "table",
	TOKEN_COLUMNS: "columns",
	TOKEN_ROW:     "row",
	TOKEN_CHART:   "chart",
	TOKEN_SERIES:  "series",
	TOKEN_POINT:   "point",

	TOKEN_STRING:  "string",
	TOKEN_NUMBER:  "number",
	TOKEN_BOOLEAN: "boolean",

	TOKEN_TRUE:  "true",
	TOKEN_FALSE: "false",

	TOKEN_BAR:     "bar",
	TOKEN_LINE:    "line",
	TOKEN_PIE:     "pie",
	TOKEN_AREA:    "area",
	TOKEN_SCATTER: "scatter",

	TOKEN_ARROW:    "->",
	TOKEN_LBRACE:   "{",
	TOKEN_RBRACE:   "}",
	TOKEN_LBRACKET: "[",
	TOKEN_RBRACKET: "]",
	TOKEN_COMMA:    ",",
	TOKEN_DOT:      ".",
	TOKEN_EQ:       "==",
	TOKEN_NEQ:      "!=",
	TOKEN_LTE:      "<=",
	TOKEN_GTE:      ">=",
	TOKEN_LT:       "<",
	TOKEN_GT:       ">",
	TOKEN_AND:      "&&",
	TOKEN_OR:       "||",
	TOKEN_BANG:     "!",
	TOKEN_ASSIGN:   "=",
	TOKEN_COLON:    ":",
	TOKEN_QUESTION: "?",
	TOKEN_AMP:      "&",
	TOKEN_PLUS:     "+",
}

// String returns the display name of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// Token represents a single lexical token with its position in the source.
type Token struct {
	Type    TokenType
	Literal string // the actual source text of the token
	Line    int    // 1-based line number
	Column  int    // 1-based column number
}

// String returns a human-readable representation of a token.
func (t Token) String() string {
	switch t.Type {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_STRING_LIT, TOKEN_NUMBER_LIT, TOKEN_IDENTIFIER:
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	default:
		return t.Type.String()
	}
}

// keywords maps reserved words to their token types. Matching is
// case-sensitive: a word that is not exactly a reserved word is an
// identifier, even when it differs only in case.
var keywords = map[string]TokenType{
	"app":       TOKEN_APP,
	"page":      TOKEN_PAGE,
	"component": TOKEN_COMPONENT,
	"entry":     TOKEN_ENTRY,

	"use":     TOKEN_USE,
	"header":  TOKEN_HEADER,
	"text":    TOKEN_TEXT,
	"button":  TOKEN_BUTTON,
	"link":    TOKEN_LINK,
	"field":   TOKEN_FIELD,
	"input":   TOKEN_INPUT,
	"submit":  TOKEN_SUBMIT,
	"click":   TOKEN_CLICK,
	"on":      TOKEN_ON,
	"if":      TOKEN_IF,
	"query":   TOKEN_QUERY,
	"table":   TOKEN_TABLE,
	"columns": TOKEN_COLUMNS,
	"row":     TOKEN_ROW,
	"chart":   TOKEN_CHART,
	"series":  TOKEN_SERIES,
	"point":   TOKEN_POINT,

	"string":  TOKEN_STRING,
	"number":  TOKEN_NUMBER,
	"boolean": TOKEN_BOOLEAN,

	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,

	"bar":     TOKEN_BAR,
	"line":    TOKEN_LINE,
	"pie":     TOKEN_PIE,
	"area":    TOKEN_AREA,
	"scatter": TOKEN_SCATTER,
}

// LookupKeyword returns the keyword token type for the given word,
// or TOKEN_IDENTIFIER if the word is not a reserved word.
func LookupKeyword(word string) TokenType {
	if tok, ok := keywords[word]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
