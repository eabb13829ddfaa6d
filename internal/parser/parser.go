package parser

import (
	"fmt"

	"github.com/swan-lang/swan/internal/lexer"
)

// Parse lexes and parses a .swan source string into an AST.
// The first grammar violation aborts with a positioned error; there is
// no recovery and no partial AST on failure.
func Parse(source string) (*Program, error) {
	lex := lexer.New(source)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a pre-built token stream into an AST.
func ParseTokens(tokens []lexer.Token) (*Program, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// parser holds the state for a single parse run.
type parser struct {
	tokens []lexer.Token
	pos    int
}

// identKeywords lists the reserved words the grammar also accepts in
// identifier positions (names after table/chart, handler actions and
// outcome labels, query names and argument keys, member-access parts).
/// Keywords double as vocabulary words: a page field may be named "table",
// a handler outcome "submit", a query parameter "page". Statement and
// declaration dispatch always happens before an identifier is consumed,
// so even "page" is unambiguous here. This is a closed set; app,
// component, if, true, and false stay keywords everywhere.
var identKeywords = map[lexer.TokenType]bool{
	lexer.TOKEN_PAGE:    true,
	lexer.TOKEN_ENTRY:   true,
	lexer.TOKEN_USE:     true,
	lexer.TOKEN_HEADER:  true,
	lexer.TOKEN_TEXT:    true,
	lexer.TOKEN_BUTTON:  true,
	lexer.TOKEN_LINK:    true,
	lexer.TOKEN_FIELD:   true,
	lexer.TOKEN_INPUT:   true,
	lexer.TOKEN_SUBMIT:  true,
	lexer.TOKEN_CLICK:   true,
	lexer.TOKEN_ON:      true,
	lexer.TOKEN_QUERY:   true,
	lexer.TOKEN_TABLE:   true,
	lexer.TOKEN_COLUMNS: true,
	lexer.TOKEN_ROW:     true,
	lexer.TOKEN_CHART:   true,
	lexer.TOKEN_SERIES:  true,
	lexer.TOKEN_POINT:   true,
	lexer.TOKEN_STRING:  true,
	lexer.TOKEN_NUMBER:  true,
	lexer.TOKEN_BOOLEAN: true,
	lexer.TOKEN_BAR:     true,
	lexer.TOKEN_LINE:    true,
	lexer.TOKEN_PIE:     true,
	lexer.TOKEN_AREA:    true,
	lexer.TOKEN_SCATTER: true,
}

// ── Program & declarations ──

// parseProgram parses: AppDecl (PageDecl | CompDecl)*
func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}

	app, err := p.parseAppDecl()
	if err != nil {
		return nil, err
	}
	prog.App = app

	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TOKEN_PAGE:
			decl, err := p.parsePageDecl()
			if err != nil {
				return nil, err
			}
			prog.Pages = append(prog.Pages, decl)
		case lexer.TOKEN_COMPONENT:
			decl, err := p.parseComponentDecl()
			if err != nil {
				return nil, err
			}
			prog.Components = append(prog.Components, decl)
		default:
			return nil, p.errUnexpected("page or component declaration")
		}
	}

	return prog, nil
}

// parseAppDecl parses: app IDENT { entry IDENT }
func (p *parser) parseAppDecl() (*AppDecl, error) {
	start, err := p.expect(lexer.TOKEN_APP, "app declaration")
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TOKEN_IDENTIFIER, "app name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_ENTRY, "'entry'"); err != nil {
		return nil, err
	}
	entry, err := p.expect(lexer.TOKEN_IDENTIFIER, "entry page name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &AppDecl{Name: name.Literal, Entry: entry.Literal, Pos: tokenPos(start)}, nil
}

// parsePageDecl parses: page IDENT Block
func (p *parser) parsePageDecl() (*PageDecl, error) {
	start := p.advance() // consume PAGE
	name, err := p.expect(lexer.TOKEN_IDENTIFIER, "page name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &PageDecl{Name: name.Literal, Body: body, Pos: tokenPos(start)}, nil
}

// parseComponentDecl parses: component IDENT Block
func (p *parser) parseComponentDecl() (*ComponentDecl, error) {
	start := p.advance() // consume COMPONENT
	name, err := p.expect(lexer.TOKEN_IDENTIFIER, "component name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ComponentDecl{Name: name.Literal, Body: body, Pos: tokenPos(start)}, nil
}

// ── Statements ──

// parseBlock parses: { Statement* }
func (p *parser) parseBlock() ([]Stmt, error) {
	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var stmts []Stmt
	for !p.check(lexer.TOKEN_RBRACE) {
		if p.isAtEnd() {
			return nil, p.errUnexpected("'}'")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	p.advance() // consume }
	return stmts, nil
}

// parseStatement dispatches on the leading keyword.
func (p *parser) parseStatement() (Stmt, error) {
	switch p.peek().Type {
	case lexer.TOKEN_HEADER:
		return p.parseLabeled(func(label string, pos Position) Stmt {
			return &HeaderStmt{Text: label, Pos: pos}
		})
	case lexer.TOKEN_TEXT:
		return p.parseLabeled(func(label string, pos Position) Stmt {
			return &TextStmt{Text: label, Pos: pos}
		})
	case lexer.TOKEN_FIELD:
		return p.parseLabeled(func(label string, pos Position) Stmt {
			return &FieldStmt{Label: label, Pos: pos}
		})
	case lexer.TOKEN_INPUT:
		return p.parseLabeled(func(label string, pos Position) Stmt {
			return &InputStmt{Label: label, Pos: pos}
		})
	case lexer.TOKEN_BUTTON:
		return p.parseButton()
	case lexer.TOKEN_LINK:
		return p.parseLink()
	case lexer.TOKEN_USE:
		return p.parseUse()
	case lexer.TOKEN_SUBMIT, lexer.TOKEN_CLICK:
		return p.parseAction()
	case lexer.TOKEN_ON:
		return p.parseHandler()
	case lexer.TOKEN_IF:
		return p.parseConditional()
	case lexer.TOKEN_QUERY:
		return p.parseQuery()
	case lexer.TOKEN_TABLE:
		return p.parseTable()
	case lexer.TOKEN_CHART:
		return p.parseChart()
	default:
		return nil, p.errUnexpected("statement")
	}
}

// parseLabeled parses the keyword STRING shape shared by header, text,
// field, and input.
func (p *parser) parseLabeled(build func(label string, pos Position) Stmt) (Stmt, error) {
	start := p.advance()
	label, err := p.expect(lexer.TOKEN_STRING_LIT, "string label")
	if err != nil {
		return nil, err
	}
	return build(label.Literal, tokenPos(start)), nil
}

// parseButton parses: button STRING NavTarget?
// A button without an arrow is a valid non-navigating action button.
func (p *parser) parseButton() (Stmt, error) {
	start := p.advance() // consume BUTTON
	label, err := p.expect(lexer.TOKEN_STRING_LIT, "button label")
	if err != nil {
		return nil, err
	}

	stmt := &ButtonStmt{Label: label.Literal, Pos: tokenPos(start)}
	if p.check(lexer.TOKEN_ARROW) {
		target, err := p.parseNavTarget()
		if err != nil {
			return nil, err
		}
		stmt.Target = target
	}
	return stmt, nil
}

// parseLink parses: link STRING NavTarget
func (p *parser) parseLink() (Stmt, error) {
	start := p.advance() // consume LINK
	label, err := p.expect(lexer.TOKEN_STRING_LIT, "link label")
	if err != nil {
		return nil, err
	}
	target, err := p.parseNavTarget()
	if err != nil {
		return nil, err
	}
	return &LinkStmt{Label: label.Literal, Target: target, Pos: tokenPos(start)}, nil
}

// parseNavTarget parses: -> IDENT (? QueryArg (& QueryArg)*)?
func (p *parser) parseNavTarget() (*NavTarget, error) {
	arrow, err := p.expect(lexer.TOKEN_ARROW, "'->'")
	if err != nil {
		return nil, err
	}
	target, err := p.expect(lexer.TOKEN_IDENTIFIER, "target page name")
	if err != nil {
		return nil, err
	}

	nav := &NavTarget{Target: target.Literal, Pos: tokenPos(arrow)}
	if p.match(lexer.TOKEN_QUESTION) {
		for {
			arg, err := p.parseQueryArg()
			if err != nil {
				return nil, err
			}
			nav.Args = append(nav.Args, arg)
			if !p.match(lexer.TOKEN_AMP) {
				break
			}
		}
	}
	return nav, nil
}

// parseQueryArg parses: key = Expr
func (p *parser) parseQueryArg() (*QueryArg, error) {
	key, err := p.expectIdentLike("query argument key")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &QueryArg{Key: key.Literal, Value: value, Pos: tokenPos(key)}, nil
}

// parseUse parses: use IDENT
func (p *parser) parseUse() (Stmt, error) {
	start := p.advance() // consume USE
	name, err := p.expect(lexer.TOKEN_IDENTIFIER, "component name")
	if err != nil {
		return nil, err
	}
	return &UseStmt{Component: name.Literal, Pos: tokenPos(start)}, nil
}

// parseAction parses: submit STRING IDENT | click STRING IDENT
func (p *parser) parseAction() (Stmt, error) {
	start := p.advance() // consume SUBMIT or CLICK
	kind := ActionSubmit
	if start.Type == lexer.TOKEN_CLICK {
		kind = ActionClick
	}

	label, err := p.expect(lexer.TOKEN_STRING_LIT, "action label")
	if err != nil {
		return nil, err
	}
	action, err := p.expectIdentLike("action identifier")
	if err != nil {
		return nil, err
	}
	return &ActionStmt{Kind: kind, Label: label.Literal, Action: action.Literal, Pos: tokenPos(start)}, nil
}

// parseHandler parses: on IDENT { (IDENT -> IDENT)* }
// Outcome labels accept reserved words; an optional comma may separate
// outcome pairs.
func (p *parser) parseHandler() (Stmt, error) {
	start := p.advance() // consume ON
	action, err := p.expectIdentLike("action identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}

	stmt := &HandlerStmt{Action: action.Literal, Pos: tokenPos(start)}
	for !p.check(lexer.TOKEN_RBRACE) {
		if p.isAtEnd() {
			return nil, p.errUnexpected("'}'")
		}
		outcome, err := p.expectIdentLike("outcome label")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TOKEN_ARROW, "'->'"); err != nil {
			return nil, err
		}
		target, err := p.expect(lexer.TOKEN_IDENTIFIER, "target page name")
		if err != nil {
			return nil, err
		}
		stmt.Outcomes = append(stmt.Outcomes, &HandlerOutcome{
			Outcome: outcome.Literal,
			Target:  target.Literal,
			Pos:     tokenPos(outcome),
		})
		p.match(lexer.TOKEN_COMMA)
	}

	p.advance() // consume }
	return stmt, nil
}

// parseConditional parses: if Expr Block
func (p *parser) parseConditional() (Stmt, error) {
	start := p.advance() // consume IF
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ConditionalStmt{Cond: cond, Body: body, Pos: tokenPos(start)}, nil
}

// parseQuery parses: query IDENT (: type)? (= Literal)?
func (p *parser) parseQuery() (Stmt, error) {
	start := p.advance() // consume QUERY
	name, err := p.expectIdentLike("query parameter name")
	if err != nil {
		return nil, err
	}

	stmt := &QueryStmt{Name: name.Literal, Pos: tokenPos(start)}

	if p.match(lexer.TOKEN_COLON) {
		switch p.peek().Type {
		case lexer.TOKEN_STRING, lexer.TOKEN_NUMBER, lexer.TOKEN_BOOLEAN:
			stmt.Type = p.advance().Literal
		default:
			return nil, p.errUnexpected("type (string, number, or boolean)")
		}
	}

	if p.match(lexer.TOKEN_ASSIGN) {
		def, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Default = def
	}

	return stmt, nil
}

// parseTable parses:
//
//	table IDENT { columns [ STRING (, STRING)* ] Row* }
func (p *parser) parseTable() (Stmt, error) {
	start := p.advance() // consume TABLE
	name, err := p.expectIdentLike("table name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_COLUMNS, "'columns'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_LBRACKET, "'['"); err != nil {
		return nil, err
	}

	stmt := &TableStmt{Name: name.Literal, Pos: tokenPos(start)}
	for {
		col, err := p.expect(lexer.TOKEN_STRING_LIT, "column label")
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col.Literal)
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.TOKEN_RBRACKET, "']'"); err != nil {
		return nil, err
	}

	for p.check(lexer.TOKEN_ROW) {
		row, err := p.parseTableRow()
		if err != nil {
			return nil, err
		}
		stmt.Rows = append(stmt.Rows, row)
	}

	if _, err := p.expect(lexer.TOKEN_RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseTableRow parses: row [ Expr (, Expr)* ] Block?
// The optional trailing block holds per-row actions and is a full
// statement block, so it may nest buttons, submits, and conditionals.
func (p *parser) parseTableRow() (*TableRow, error) {
	start := p.advance() // consume ROW
	if _, err := p.expect(lexer.TOKEN_LBRACKET, "'['"); err != nil {
		return nil, err
	}

	row := &TableRow{Pos: tokenPos(start)}
	for {
		cell, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		row.Cells = append(row.Cells, cell)
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.TOKEN_RBRACKET, "']'"); err != nil {
		return nil, err
	}

	if p.check(lexer.TOKEN_LBRACE) {
		actions, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		row.Actions = actions
	}
	return row, nil
}

// parseChart parses: chart IDENT ChartType { Series+ }
func (p *parser) parseChart() (Stmt, error) {
	start := p.advance() // consume CHART
	name, err := p.expectIdentLike("chart name")
	if err != nil {
		return nil, err
	}

	var kind string
	switch p.peek().Type {
	case lexer.TOKEN_BAR, lexer.TOKEN_LINE, lexer.TOKEN_PIE, lexer.TOKEN_AREA, lexer.TOKEN_SCATTER:
		kind = p.advance().Literal
	default:
		return nil, p.errUnexpected("chart type (bar, line, pie, area, or scatter)")
	}

	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}

	stmt := &ChartStmt{Name: name.Literal, Kind: kind, Pos: tokenPos(start)}
	for !p.check(lexer.TOKEN_RBRACE) {
		if p.isAtEnd() {
			return nil, p.errUnexpected("'}'")
		}
		series, err := p.parseSeries()
		if err != nil {
			return nil, err
		}
		stmt.Series = append(stmt.Series, series)
	}

	p.advance() // consume }
	return stmt, nil
}

// parseSeries parses: series STRING { Point+ }
func (p *parser) parseSeries() (*ChartSeries, error) {
	start, err := p.expect(lexer.TOKEN_SERIES, "'series'")
	if err != nil {
		return nil, err
	}
	label, err := p.expect(lexer.TOKEN_STRING_LIT, "series label")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_LBRACE, "'{'"); err != nil {
		return nil, err
	}

	series := &ChartSeries{Label: label.Literal, Pos: tokenPos(start)}
	for !p.check(lexer.TOKEN_RBRACE) {
		if p.isAtEnd() {
			return nil, p.errUnexpected("'}'")
		}
		point, err := p.parsePoint()
		if err != nil {
			return nil, err
		}
		series.Points = append(series.Points, point)
	}

	p.advance() // consume }
	return series, nil
}

// parsePoint parses: point Expr , Expr
func (p *parser) parsePoint() (*ChartPoint, error) {
	start, err := p.expect(lexer.TOKEN_POINT, "'point'")
	if err != nil {
		return nil, err
	}
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TOKEN_COMMA, "','"); err != nil {
		return nil, err
	}
	y, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ChartPoint{X: x, Y: y, Pos: tokenPos(start)}, nil
}

// ── Expressions ──
//
// Precedence, low to high: || → && → comparison → + → ! → primary.
// Comparisons are non-associative: a single comparison binds only its
// immediate operands and does not chain.

func (p *parser) parseExpression() (Expr, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_OR) {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: "||", Left: left, Right: right, Pos: tokenPos(op)}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_AND) {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: "&&", Left: left, Right: right, Pos: tokenPos(op)}
	}
	return left, nil
}

func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	switch p.peek().Type {
	case lexer.TOKEN_EQ, lexer.TOKEN_NEQ, lexer.TOKEN_LT,
		lexer.TOKEN_GT, lexer.TOKEN_LTE, lexer.TOKEN_GTE:
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		// No loop: `a < b < c` leaves the second `<` for the caller,
		// which rejects it.
		return &BinaryExpr{Op: op.Literal, Left: left, Right: right, Pos: tokenPos(op)}, nil
	}
	return left, nil
}

func (p *parser) parseAdditive() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TOKEN_PLUS) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: "+", Left: left, Right: right, Pos: tokenPos(op)}
	}
	return left, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if p.check(lexer.TOKEN_BANG) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: "!", Operand: operand, Pos: tokenPos(op)}, nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, an identifier, or identifier.member.
// Identifier positions accept the keyword allow-list so expressions like
// query.page lex-and-parse even though `query` is reserved.
func (p *parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch {
	case tok.Type == lexer.TOKEN_STRING_LIT:
		p.advance()
		return &StringLit{Value: tok.Literal, Pos: tokenPos(tok)}, nil
	case tok.Type == lexer.TOKEN_NUMBER_LIT:
		p.advance()
		return &NumberLit{Raw: tok.Literal, Pos: tokenPos(tok)}, nil
	case tok.Type == lexer.TOKEN_TRUE:
		p.advance()
		return &BoolLit{Value: true, Pos: tokenPos(tok)}, nil
	case tok.Type == lexer.TOKEN_FALSE:
		p.advance()
		return &BoolLit{Value: false, Pos: tokenPos(tok)}, nil
	case p.checkIdentLike():
		name := p.advance()
		if p.match(lexer.TOKEN_DOT) {
			member, err := p.expectIdentLike("member name")
			if err != nil {
				return nil, err
			}
			return &MemberExpr{Object: name.Literal, Member: member.Literal, Pos: tokenPos(name)}, nil
		}
		return &Ident{Name: name.Literal, Pos: tokenPos(name)}, nil
	default:
		return nil, p.errUnexpected("expression")
	}
}

// parseLiteral parses a string, number, or boolean literal (query defaults).
func (p *parser) parseLiteral() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_STRING_LIT:
		p.advance()
		return &StringLit{Value: tok.Literal, Pos: tokenPos(tok)}, nil
	case lexer.TOKEN_NUMBER_LIT:
		p.advance()
		return &NumberLit{Raw: tok.Literal, Pos: tokenPos(tok)}, nil
	case lexer.TOKEN_TRUE:
		p.advance()
		return &BoolLit{Value: true, Pos: tokenPos(tok)}, nil
	case lexer.TOKEN_FALSE:
		p.advance()
		return &BoolLit{Value: false, Pos: tokenPos(tok)}, nil
	default:
		return nil, p.errUnexpected("literal")
	}
}

// ── Token movement ──

func (p *parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Type != lexer.TOKEN_EOF {
		p.pos++
	}
	return tok
}

func (p *parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

func (p *parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.peek().Type == lexer.TOKEN_EOF
}

// expect consumes a token of the given type or fails with a positioned
// error describing what was required.
func (p *parser) expect(t lexer.TokenType, what string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errUnexpected(what)
}

// checkIdentLike reports whether the current token may serve as an
// identifier: a plain IDENT or a keyword on the allow-list.
func (p *parser) checkIdentLike() bool {
	t := p.peek().Type
	return t == lexer.TOKEN_IDENTIFIER || identKeywords[t]
}

// expectIdentLike consumes an identifier-like token or fails.
func (p *parser) expectIdentLike(what string) (lexer.Token, error) {
	if p.checkIdentLike() {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errUnexpected(what)
}

// ── Error reporting ──

func (p *parser) errUnexpected(expected string) error {
	tok := p.peek()
	if tok.Type == lexer.TOKEN_EOF {
		return fmt.Errorf("line %d, column %d: unexpected end of input, expected %s",
			tok.Line, tok.Column, expected)
	}
	return fmt.Errorf("line %d, column %d: unexpected %s, expected %s",
		tok.Line, tok.Column, tok, expected)
}

func tokenPos(tok lexer.Token) Position {
	return Position{Line: tok.Line, Column: tok.Column}
}
