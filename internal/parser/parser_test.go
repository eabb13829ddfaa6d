package parser

import (
	"strings"
	"testing"
)

// helper to parse source and assert no error
func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	prog, err := Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

// helper wrapping a page body in the minimal program scaffolding
func parsePage(t *testing.T, body string) *PageDecl {
	t.Helper()
	prog := mustParse(t, "app T { entry P }\npage P {\n"+body+"\n}")
	if len(prog.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(prog.Pages))
	}
	return prog.Pages[0]
}

func expectParseError(t *testing.T, source, fragment string) {
	t.Helper()
	_, err := Parse(source)
	if err == nil {
		t.Fatalf("expected parse error for %q, got none", source)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Errorf("error %q does not mention %q", err.Error(), fragment)
	}
}

// ── App declaration ──

func TestParseAppDeclaration(t *testing.T) {
	prog := mustParse(t, "app Shop { entry Home }")
	if prog.App == nil {
		t.Fatal("expected App declaration")
	}
	if prog.App.Name != "Shop" {
		t.Errorf("expected app name 'Shop', got %q", prog.App.Name)
	}
	if prog.App.Entry != "Home" {
		t.Errorf("expected entry 'Home', got %q", prog.App.Entry)
	}
}

func TestProgramMustStartWithApp(t *testing.T) {
	expectParseError(t, "page Home { }", "app declaration")
}

func TestOnlyOneAppAllowed(t *testing.T) {
	expectParseError(t, "app A { entry X }\napp B { entry Y }", "page or component")
}

// ── Pages & components ──

func TestParseEmptyPage(t *testing.T) {
	prog := mustParse(t, "app T { entry Home }\npage Home { }")
	if len(prog.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(prog.Pages))
	}
	if prog.Pages[0].Name != "Home" {
		t.Errorf("expected page 'Home', got %q", prog.Pages[0].Name)
	}
	if len(prog.Pages[0].Body) != 0 {
		t.Errorf("expected empty body, got %d statements", len(prog.Pages[0].Body))
	}
}

func TestParseComponent(t *testing.T) {
	prog := mustParse(t, "app T { entry P }\ncomponent NavBar {\n  text \"hi\"\n}")
	if len(prog.Components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(prog.Components))
	}
	if prog.Components[0].Name != "NavBar" {
		t.Errorf("expected component 'NavBar', got %q", prog.Components[0].Name)
	}
}

func TestDeclarationsKeepOrder(t *testing.T) {
	prog := mustParse(t, "app T { entry A }\npage A { }\ncomponent C { }\npage B { }")
	if len(prog.Pages) != 2 || prog.Pages[0].Name != "A" || prog.Pages[1].Name != "B" {
		t.Errorf("unexpected page order: %+v", prog.Pages)
	}
	if len(prog.Components) != 1 {
		t.Errorf("expected 1 component, got %d", len(prog.Components))
	}
}

func TestUnclosedBlock(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  text \"x\"", "unexpected end of input")
}

// ── Simple statements ──

func TestParseLabeledStatements(t *testing.T) {
	page := parsePage(t, "header \"Title\"\ntext \"Body\"\nfield \"Name\"\ninput \"Email\"")
	if len(page.Body) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(page.Body))
	}
	if h, ok := page.Body[0].(*HeaderStmt); !ok || h.Text != "Title" {
		t.Errorf("statement 0: expected header 'Title', got %#v", page.Body[0])
	}
	if x, ok := page.Body[1].(*TextStmt); !ok || x.Text != "Body" {
		t.Errorf("statement 1: expected text 'Body', got %#v", page.Body[1])
	}
	if f, ok := page.Body[2].(*FieldStmt); !ok || f.Label != "Name" {
		t.Errorf("statement 2: expected field 'Name', got %#v", page.Body[2])
	}
	if in, ok := page.Body[3].(*InputStmt); !ok || in.Label != "Email" {
		t.Errorf("statement 3: expected input 'Email', got %#v", page.Body[3])
	}
}

func TestParseUse(t *testing.T) {
	page := parsePage(t, "use NavBar")
	use, ok := page.Body[0].(*UseStmt)
	if !ok {
		t.Fatalf("expected UseStmt, got %#v", page.Body[0])
	}
	if use.Component != "NavBar" {
		t.Errorf("expected component 'NavBar', got %q", use.Component)
	}
}

// ── Buttons, links, navigation ──

func TestParseButtonWithoutTarget(t *testing.T) {
	page := parsePage(t, "button \"Cancel\"")
	btn, ok := page.Body[0].(*ButtonStmt)
	if !ok {
		t.Fatalf("expected ButtonStmt, got %#v", page.Body[0])
	}
	if btn.Target != nil {
		t.Errorf("expected nil target, got %+v", btn.Target)
	}
}

func TestParseButtonWithTarget(t *testing.T) {
	page := parsePage(t, "button \"Go\" -> Detail")
	btn := page.Body[0].(*ButtonStmt)
	if btn.Target == nil || btn.Target.Target != "Detail" {
		t.Fatalf("expected target 'Detail', got %+v", btn.Target)
	}
}

func TestLinkRequiresTarget(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  link \"x\"\n}", "'->'")
}

func TestParseNavTargetWithArgs(t *testing.T) {
	page := parsePage(t, "link \"next\" -> List?page=2&filter=\"open\"")
	link := page.Body[0].(*LinkStmt)
	if link.Target.Target != "List" {
		t.Errorf("expected target 'List', got %q", link.Target.Target)
	}
	if len(link.Target.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(link.Target.Args))
	}
	if link.Target.Args[0].Key != "page" {
		t.Errorf("arg 0: expected key 'page', got %q", link.Target.Args[0].Key)
	}
	if n, ok := link.Target.Args[0].Value.(*NumberLit); !ok || n.Raw != "2" {
		t.Errorf("arg 0: expected number 2, got %#v", link.Target.Args[0].Value)
	}
	if s, ok := link.Target.Args[1].Value.(*StringLit); !ok || s.Value != "open" {
		t.Errorf("arg 1: expected string 'open', got %#v", link.Target.Args[1].Value)
	}
}

func TestQueryArgKeyMayBeKeyword(t *testing.T) {
	page := parsePage(t, "link \"next\" -> List?page=query.page + 1")
	link := page.Body[0].(*LinkStmt)
	arg := link.Target.Args[0]
	if arg.Key != "page" {
		t.Errorf("expected key 'page', got %q", arg.Key)
	}
	bin, ok := arg.Value.(*BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected + expression, got %#v", arg.Value)
	}
	if m, ok := bin.Left.(*MemberExpr); !ok || m.Object != "query" || m.Member != "page" {
		t.Errorf("expected query.page, got %#v", bin.Left)
	}
}

// ── Actions and handlers ──

func TestParseSubmitAndClick(t *testing.T) {
	page := parsePage(t, "submit \"Save\" save\nclick \"Del\" remove")
	s := page.Body[0].(*ActionStmt)
	if s.Kind != ActionSubmit || s.Action != "save" {
		t.Errorf("expected submit/save, got %+v", s)
	}
	c := page.Body[1].(*ActionStmt)
	if c.Kind != ActionClick || c.Action != "remove" {
		t.Errorf("expected click/remove, got %+v", c)
	}
}

func TestParseHandler(t *testing.T) {
	page := parsePage(t, "on save {\n  success -> Home,\n  error -> Form\n}")
	h, ok := page.Body[0].(*HandlerStmt)
	if !ok {
		t.Fatalf("expected HandlerStmt, got %#v", page.Body[0])
	}
	if h.Action != "save" {
		t.Errorf("expected action 'save', got %q", h.Action)
	}
	if len(h.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(h.Outcomes))
	}
	if h.Outcomes[0].Outcome != "success" || h.Outcomes[0].Target != "Home" {
		t.Errorf("outcome 0: got %+v", h.Outcomes[0])
	}
	if h.Outcomes[1].Outcome != "error" || h.Outcomes[1].Target != "Form" {
		t.Errorf("outcome 1: got %+v", h.Outcomes[1])
	}
}

func TestHandlerCommaIsOptional(t *testing.T) {
	page := parsePage(t, "on save {\n  success -> Home\n  error -> Form\n}")
	h := page.Body[0].(*HandlerStmt)
	if len(h.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(h.Outcomes))
	}
}

func TestHandlerOutcomeMayBeKeyword(t *testing.T) {
	page := parsePage(t, "on export {\n  table -> Data\n}")
	h := page.Body[0].(*HandlerStmt)
	if h.Outcomes[0].Outcome != "table" {
		t.Errorf("expected outcome 'table', got %q", h.Outcomes[0].Outcome)
	}
}

// ── Queries ──

func TestParseQueryFull(t *testing.T) {
	page := parsePage(t, "query page : number = 1")
	q := page.Body[0].(*QueryStmt)
	if q.Name != "page" || q.Type != "number" {
		t.Errorf("expected page:number, got %+v", q)
	}
	if n, ok := q.Default.(*NumberLit); !ok || n.Raw != "1" {
		t.Errorf("expected default 1, got %#v", q.Default)
	}
}

func TestParseQueryBare(t *testing.T) {
	page := parsePage(t, "query id")
	q := page.Body[0].(*QueryStmt)
	if q.Name != "id" || q.Type != "" || q.Default != nil {
		t.Errorf("expected bare query, got %+v", q)
	}
}

func TestQueryDefaultMustBeLiteral(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  query n = other\n}", "literal")
}

func TestPageKeywordServesAsName(t *testing.T) {
	// "page" is the canonical pagination vocabulary word: it names query
	// parameters, argument keys, and member accesses, all while staying
	// the declaration keyword at dispatch positions.
	prog := mustParse(t, `app T { entry Home }
page Home {
  query page : number = 1
  link "next" -> Home?page=query.page + 1
}`)
	body := prog.Pages[0].Body
	q := body[0].(*QueryStmt)
	if q.Name != "page" {
		t.Errorf("expected query named 'page', got %q", q.Name)
	}
	link := body[1].(*LinkStmt)
	if link.Target.Args[0].Key != "page" {
		t.Errorf("expected arg key 'page', got %q", link.Target.Args[0].Key)
	}
	bin := link.Target.Args[0].Value.(*BinaryExpr)
	if m, ok := bin.Left.(*MemberExpr); !ok || m.Member != "page" {
		t.Errorf("expected member access on 'page', got %#v", bin.Left)
	}
}

// ── Conditionals ──

func TestParseConditional(t *testing.T) {
	page := parsePage(t, "if query.done == true {\n  text \"done\"\n}")
	cond, ok := page.Body[0].(*ConditionalStmt)
	if !ok {
		t.Fatalf("expected ConditionalStmt, got %#v", page.Body[0])
	}
	bin := cond.Cond.(*BinaryExpr)
	if bin.Op != "==" {
		t.Errorf("expected ==, got %q", bin.Op)
	}
	if len(cond.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(cond.Body))
	}
}

func TestConditionalsNest(t *testing.T) {
	page := parsePage(t, "if a {\n  if b {\n    text \"deep\"\n  }\n}")
	outer := page.Body[0].(*ConditionalStmt)
	inner, ok := outer.Body[0].(*ConditionalStmt)
	if !ok {
		t.Fatalf("expected nested conditional, got %#v", outer.Body[0])
	}
	if _, ok := inner.Body[0].(*TextStmt); !ok {
		t.Errorf("expected text inside inner conditional, got %#v", inner.Body[0])
	}
}

// ── Tables ──

func TestParseTable(t *testing.T) {
	page := parsePage(t, `table Products {
  columns ["Name", "Price"]
  row ["Apple", 1.25]
  row ["Pear", 2] {
    button "Buy" -> Cart
  }
}`)
	tbl, ok := page.Body[0].(*TableStmt)
	if !ok {
		t.Fatalf("expected TableStmt, got %#v", page.Body[0])
	}
	if tbl.Name != "Products" {
		t.Errorf("expected table 'Products', got %q", tbl.Name)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[0] != "Name" {
		t.Errorf("unexpected columns: %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if len(tbl.Rows[0].Cells) != 2 || tbl.Rows[0].Actions != nil {
		t.Errorf("row 0: got %+v", tbl.Rows[0])
	}
	if len(tbl.Rows[1].Actions) != 1 {
		t.Errorf("row 1: expected 1 action, got %d", len(tbl.Rows[1].Actions))
	}
	if n, ok := tbl.Rows[0].Cells[1].(*NumberLit); !ok || n.Raw != "1.25" {
		t.Errorf("row 0 cell 1: expected 1.25, got %#v", tbl.Rows[0].Cells[1])
	}
}

func TestTableNameMayBeKeyword(t *testing.T) {
	page := parsePage(t, "table table {\n  columns [\"A\"]\n  row [1]\n}")
	tbl := page.Body[0].(*TableStmt)
	if tbl.Name != "table" {
		t.Errorf("expected table name 'table', got %q", tbl.Name)
	}
}

func TestTableRequiresColumns(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  table X {\n    row [1]\n  }\n}", "'columns'")
}

// ── Charts ──

func TestParseChart(t *testing.T) {
	page := parsePage(t, `chart Sales bar {
  series "2026" {
    point "Q1", 10
    point "Q2", 20.5
  }
}`)
	ch, ok := page.Body[0].(*ChartStmt)
	if !ok {
		t.Fatalf("expected ChartStmt, got %#v", page.Body[0])
	}
	if ch.Name != "Sales" || ch.Kind != "bar" {
		t.Errorf("expected Sales/bar, got %+v", ch)
	}
	if len(ch.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(ch.Series))
	}
	s := ch.Series[0]
	if s.Label != "2026" || len(s.Points) != 2 {
		t.Errorf("unexpected series: %+v", s)
	}
	if y, ok := s.Points[1].Y.(*NumberLit); !ok || y.Raw != "20.5" {
		t.Errorf("point 1 y: expected 20.5, got %#v", s.Points[1].Y)
	}
}

func TestChartRequiresKnownType(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  chart X donut { }\n}", "chart type")
}

// ── Expressions ──

func TestExpressionPrecedence(t *testing.T) {
	page := parsePage(t, "if a == 1 || b == 2 && !c {\n  text \"x\"\n}")
	cond := page.Body[0].(*ConditionalStmt)
	// || is the root; && binds tighter on the right.
	or := cond.Cond.(*BinaryExpr)
	if or.Op != "||" {
		t.Fatalf("expected || at root, got %q", or.Op)
	}
	and, ok := or.Right.(*BinaryExpr)
	if !ok || and.Op != "&&" {
		t.Fatalf("expected && on right, got %#v", or.Right)
	}
	if u, ok := and.Right.(*UnaryExpr); !ok || u.Op != "!" {
		t.Errorf("expected ! under &&, got %#v", and.Right)
	}
}

func TestPlusBindsTighterThanComparison(t *testing.T) {
	page := parsePage(t, "if a + 1 < b {\n  text \"x\"\n}")
	cmp := page.Body[0].(*ConditionalStmt).Cond.(*BinaryExpr)
	if cmp.Op != "<" {
		t.Fatalf("expected < at root, got %q", cmp.Op)
	}
	if plus, ok := cmp.Left.(*BinaryExpr); !ok || plus.Op != "+" {
		t.Errorf("expected + on left, got %#v", cmp.Left)
	}
}

func TestComparisonDoesNotChain(t *testing.T) {
	expectParseError(t, "app T { entry P }\npage P {\n  if a < b < c { }\n}", "unexpected")
}

func TestMemberAccess(t *testing.T) {
	page := parsePage(t, "if user.name == \"ana\" {\n  text \"hi\"\n}")
	cmp := page.Body[0].(*ConditionalStmt).Cond.(*BinaryExpr)
	m, ok := cmp.Left.(*MemberExpr)
	if !ok || m.Object != "user" || m.Member != "name" {
		t.Errorf("expected user.name, got %#v", cmp.Left)
	}
}

func TestNumberLiteralKeepsRawText(t *testing.T) {
	page := parsePage(t, "query rate : number = 0.10")
	q := page.Body[0].(*QueryStmt)
	if n := q.Default.(*NumberLit); n.Raw != "0.10" {
		t.Errorf("expected raw '0.10', got %q", n.Raw)
	}
}

// ── Positions ──

func TestStatementPositions(t *testing.T) {
	prog := mustParse(t, "app T { entry P }\npage P {\n  header \"x\"\n}")
	h := prog.Pages[0].Body[0].(*HeaderStmt)
	if h.Pos.Line != 3 || h.Pos.Column != 3 {
		t.Errorf("expected header at 3:3, got %d:%d", h.Pos.Line, h.Pos.Column)
	}
}

func TestErrorsCarryPosition(t *testing.T) {
	_, err := Parse("app T { entry P }\npage P {\n  link \"x\"\n}")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "line 4") && !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected positioned error, got %q", err.Error())
	}
}
