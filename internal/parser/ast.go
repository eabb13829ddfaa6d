package parser

// Position locates a node in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// Program is the root AST node representing a complete .swan file.
// It owns every node beneath it; cross references between declarations
// (navigation targets, use targets, handler outcomes) are stored by name,
// never as pointers, so the tree stays acyclic even though pages and
// components may reference each other in cycles at the name level.
type Program struct {
	App        *AppDecl
	Pages      []*PageDecl
	Components []*ComponentDecl
}

// AppDecl represents: app <Name> { entry <Page> }
type AppDecl struct {
	Name  string
	Entry string // page name; resolution is checked, not grammar-enforced
	Pos   Position
}

// PageDecl represents a routable page: page <Name> { <statements> }
// Pages are the only valid navigation targets and the only place query
// parameters may be declared.
type PageDecl struct {
	Name string
	Body []Stmt
	Pos  Position
}

// ComponentDecl represents a reusable, non-routable interaction unit:
// component <Name> { <statements> }
type ComponentDecl struct {
	Name string
	Body []Stmt
	Pos  Position
}

// ── Statements ──

// Stmt is the closed set of statement variants. The marker method keeps
// the set sealed so checker type switches stay exhaustive.
type Stmt interface {
	stmtNode()
	Position() Position
}

// HeaderStmt represents: header "Title"
type HeaderStmt struct {
	Text string
	Pos  Position
}

// TextStmt represents: text "Some copy"
type TextStmt struct {
	Text string
	Pos  Position
}

// ButtonStmt represents: button "Label" [-> Target?args]
// The navigation target is optional: a button with no target is a valid
// non-navigating action button.
type ButtonStmt struct {
	Label  string
	Target *NavTarget // nil for non-navigating buttons
	Pos    Position
}

// LinkStmt represents: link "Label" -> Target?args
// Unlike buttons, links always navigate.
type LinkStmt struct {
	Label  string
	Target *NavTarget
	Pos    Position
}

// FieldStmt represents: field "Label"
type FieldStmt struct {
	Label string
	Pos   Position
}

// InputStmt represents: input "Label"
type InputStmt struct {
	Label string
	Pos   Position
}

// UseStmt represents: use <Component>
type UseStmt struct {
	Component string
	Pos       Position
}

// ActionKind distinguishes the two action-raising statements.
type ActionKind string

const (
	ActionSubmit ActionKind = "submit"
	ActionClick  ActionKind = "click"
)

// ActionStmt represents: submit "Label" <action> | click "Label" <action>
// The action identifier is resolved against `on` handlers by name.
type ActionStmt struct {
	Kind   ActionKind
	Label  string
	Action string
	Pos    Position
}

// HandlerStmt represents: on <action> { outcome -> Page, ... }
type HandlerStmt struct {
	Action   string
	Outcomes []*HandlerOutcome
	Pos      Position
}

// HandlerOutcome is a single outcome -> target pair within a handler.
// Outcome labels may be reserved words (success, error, table, ...).
type HandlerOutcome struct {
	Outcome string
	Target  string // page name
	Pos     Position
}

// ConditionalStmt represents: if <expr> { <statements> }
// Bodies nest arbitrarily; every checker pass recurses into them.
type ConditionalStmt struct {
	Cond Expr
	Body []Stmt
	Pos  Position
}

// QueryStmt represents: query <name> [: type] [= literal]
// Valid only inside page bodies.
type QueryStmt struct {
	Name    string
	Type    string // "string", "number", "boolean", or "" when untyped
	Default Expr   // literal expression, nil when absent
	Pos     Position
}

// TableStmt represents a data table:
//
//	table <Name> {
//	  columns ["A", "B"]
//	  row [expr, expr] { <row actions> }
//	}
type TableStmt struct {
	Name    string
	Columns []string
	Rows    []*TableRow
	Pos     Position
}

// TableRow holds one row's cell expressions and an optional nested
// statement block of per-row actions. The block is a full statement
// block and may itself contain buttons, submits, and conditionals.
type TableRow struct {
	Cells   []Expr
	Actions []Stmt // nil when the row has no action block
	Pos     Position
}

// ChartStmt represents: chart <Name> <type> { <series> }
type ChartStmt struct {
	Name   string
	Kind   string // bar, line, pie, area, scatter
	Series []*ChartSeries
	Pos    Position
}

// ChartSeries represents: series "Label" { <points> }
type ChartSeries struct {
	Label  string
	Points []*ChartPoint
	Pos    Position
}

// ChartPoint represents: point <x-expr>, <y-expr>
type ChartPoint struct {
	X   Expr
	Y   Expr
	Pos Position
}

func (s *HeaderStmt) stmtNode()      {}
func (s *TextStmt) stmtNode()        {}
func (s *ButtonStmt) stmtNode()      {}
func (s *LinkStmt) stmtNode()        {}
func (s *FieldStmt) stmtNode()       {}
func (s *InputStmt) stmtNode()       {}
func (s *UseStmt) stmtNode()         {}
func (s *ActionStmt) stmtNode()      {}
func (s *HandlerStmt) stmtNode()     {}
func (s *ConditionalStmt) stmtNode() {}
func (s *QueryStmt) stmtNode()       {}
func (s *TableStmt) stmtNode()       {}
func (s *ChartStmt) stmtNode()       {}

func (s *HeaderStmt) Position() Position      { return s.Pos }
func (s *TextStmt) Position() Position        { return s.Pos }
func (s *ButtonStmt) Position() Position      { return s.Pos }
func (s *LinkStmt) Position() Position        { return s.Pos }
func (s *FieldStmt) Position() Position       { return s.Pos }
func (s *InputStmt) Position() Position       { return s.Pos }
func (s *UseStmt) Position() Position         { return s.Pos }
func (s *ActionStmt) Position() Position      { return s.Pos }
func (s *HandlerStmt) Position() Position     { return s.Pos }
func (s *ConditionalStmt) Position() Position { return s.Pos }
func (s *QueryStmt) Position() Position       { return s.Pos }
func (s *TableStmt) Position() Position       { return s.Pos }
func (s *ChartStmt) Position() Position       { return s.Pos }

// ── Navigation ──

// NavTarget is a navigation edge: -> <Page>[?key=expr&key=expr]
type NavTarget struct {
	Target string // destination page name
	Args   []*QueryArg
	Pos    Position
}

// QueryArg binds one query parameter on a navigation edge. Keys may be
// reserved words (`page`, `line`, ...) since they name parameters, not
// grammar positions.
type QueryArg struct {
	Key   string
	Value Expr
	Pos   Position
}

// ── Expressions ──

// Expr is the closed set of expression variants. Expressions are carried
// as data for downstream consumers and never evaluated by the front end.
type Expr interface {
	exprNode()
	Position() Position
}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Pos  Position
}

// MemberExpr is a two-part object.member access such as query.page.
type MemberExpr struct {
	Object string
	Member string
	Pos    Position
}

// StringLit is a double-quoted string literal, contents unescaped.
type StringLit struct {
	Value string
	Pos   Position
}

// NumberLit is an integer or decimal literal. Raw preserves the exact
// source text so decimals round-trip without precision loss.
type NumberLit struct {
	Raw string
	Pos Position
}

// BoolLit is true or false.
type BoolLit struct {
	Value bool
	Pos   Position
}

// BinaryExpr applies == != < > <= >= && || or + to two operands.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Pos   Position
}

// UnaryExpr applies ! to an operand.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Pos     Position
}

func (e *Ident) exprNode()      {}
func (e *MemberExpr) exprNode() {}
func (e *StringLit) exprNode()  {}
func (e *NumberLit) exprNode()  {}
func (e *BoolLit) exprNode()    {}
func (e *BinaryExpr) exprNode() {}
func (e *UnaryExpr) exprNode()  {}

func (e *Ident) Position() Position      { return e.Pos }
func (e *MemberExpr) Position() Position { return e.Pos }
func (e *StringLit) Position() Position  { return e.Pos }
func (e *NumberLit) Position() Position  { return e.Pos }
func (e *BoolLit) Position() Position    { return e.Pos }
func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) Position() Position  { return e.Pos }
