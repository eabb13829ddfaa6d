package analyzer

import "github.com/swan-lang/swan/internal/parser"

// walkStmts calls fn for every statement in body, recursing through
// conditional bodies and table-row action blocks. Every rule that gathers
// facts from a declaration body goes through this one traversal rather
// than duplicating the recursion per rule.
func walkStmts(body []parser.Stmt, fn func(parser.Stmt)) {
	for _, stmt := range body {
		fn(stmt)
		switch s := stmt.(type) {
		case *parser.ConditionalStmt:
			walkStmts(s.Body, fn)
		case *parser.TableStmt:
			for _, row := range s.Rows {
				walkStmts(row.Actions, fn)
			}
		}
	}
}

// collectActions gathers every submit/click statement in a body.
func collectActions(body []parser.Stmt) []*parser.ActionStmt {
	var out []*parser.ActionStmt
	walkStmts(body, func(stmt parser.Stmt) {
		if s, ok := stmt.(*parser.ActionStmt); ok {
			out = append(out, s)
		}
	})
	return out
}

// collectQueries gathers every query declaration in a body.
func collectQueries(body []parser.Stmt) []*parser.QueryStmt {
	var out []*parser.QueryStmt
	walkStmts(body, func(stmt parser.Stmt) {
		if s, ok := stmt.(*parser.QueryStmt); ok {
			out = append(out, s)
		}
	})
	return out
}

// collectUses gathers every use statement in a body.
func collectUses(body []parser.Stmt) []*parser.UseStmt {
	var out []*parser.UseStmt
	walkStmts(body, func(stmt parser.Stmt) {
		if s, ok := stmt.(*parser.UseStmt); ok {
			out = append(out, s)
		}
	})
	return out
}

// navRef is one outgoing navigation edge: a button/link target or a
// handler outcome target. Args is nil for handler outcomes, which carry
// no query bindings.
type navRef struct {
	target string
	args   []*parser.QueryArg
	pos    parser.Position
}

// collectNavRefs gathers every navigation edge in a body.
func collectNavRefs(body []parser.Stmt) []navRef {
	var out []navRef
	walkStmts(body, func(stmt parser.Stmt) {
		switch s := stmt.(type) {
		case *parser.ButtonStmt:
			if s.Target != nil {
				out = append(out, navRef{target: s.Target.Target, args: s.Target.Args, pos: s.Target.Pos})
			}
		case *parser.LinkStmt:
			out = append(out, navRef{target: s.Target.Target, args: s.Target.Args, pos: s.Target.Pos})
		case *parser.HandlerStmt:
			for _, o := range s.Outcomes {
				out = append(out, navRef{target: o.Target, pos: o.Pos})
			}
		}
	})
	return out
}

// collectTables gathers every table statement in a body.
func collectTables(body []parser.Stmt) []*parser.TableStmt {
	var out []*parser.TableStmt
	walkStmts(body, func(stmt parser.Stmt) {
		if s, ok := stmt.(*parser.TableStmt); ok {
			out = append(out, s)
		}
	})
	return out
}

// collectCharts gathers every chart statement in a body.
func collectCharts(body []parser.Stmt) []*parser.ChartStmt {
	var out []*parser.ChartStmt
	walkStmts(body, func(stmt parser.Stmt) {
		if s, ok := stmt.(*parser.ChartStmt); ok {
			out = append(out, s)
		}
	})
	return out
}
