package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToJSON serializes a Program to formatted JSON. Statement and expression
// variants serialize as maps with a "kind" discriminator so consumers in
// any language can dispatch without knowing the Go type system.
func ToJSON(prog *Program) ([]byte, error) {
	return json.MarshalIndent(programDoc(prog), "", "  ")
}

// ToYAML serializes a Program to YAML using the same document shape
// as ToJSON.
func ToYAML(prog *Program) ([]byte, error) {
	return yaml.Marshal(programDoc(prog))
}

func programDoc(prog *Program) map[string]interface{} {
	doc := map[string]interface{}{
		"app": map[string]interface{}{
			"name":  prog.App.Name,
			"entry": prog.App.Entry,
		},
	}

	var pages []interface{}
	for _, page := range prog.Pages {
		pages = append(pages, map[string]interface{}{
			"name": page.Name,
			"body": stmtListDoc(page.Body),
		})
	}
	if pages != nil {
		doc["pages"] = pages
	}

	var components []interface{}
	for _, comp := range prog.Components {
		components = append(components, map[string]interface{}{
			"name": comp.Name,
			"body": stmtListDoc(comp.Body),
		})
	}
	if components != nil {
		doc["components"] = components
	}

	return doc
}

func stmtListDoc(stmts []Stmt) []interface{} {
	var out []interface{}
	for _, s := range stmts {
		out = append(out, stmtDoc(s))
	}
	return out
}

func stmtDoc(stmt Stmt) map[string]interface{} {
	switch s := stmt.(type) {
	case *HeaderStmt:
		return map[string]interface{}{"kind": "header", "text": s.Text}
	case *TextStmt:
		return map[string]interface{}{"kind": "text", "text": s.Text}
	case *ButtonStmt:
		doc := map[string]interface{}{"kind": "button", "label": s.Label}
		if s.Target != nil {
			doc["target"] = navDoc(s.Target)
		}
		return doc
	case *LinkStmt:
		return map[string]interface{}{"kind": "link", "label": s.Label, "target": navDoc(s.Target)}
	case *FieldStmt:
		return map[string]interface{}{"kind": "field", "label": s.Label}
	case *InputStmt:
		return map[string]interface{}{"kind": "input", "label": s.Label}
	case *UseStmt:
		return map[string]interface{}{"kind": "use", "component": s.Component}
	case *ActionStmt:
		return map[string]interface{}{"kind": string(s.Kind), "label": s.Label, "action": s.Action}
	case *HandlerStmt:
		var outcomes []interface{}
		for _, o := range s.Outcomes {
			outcomes = append(outcomes, map[string]interface{}{
				"outcome": o.Outcome,
				"target":  o.Target,
			})
		}
		return map[string]interface{}{"kind": "on", "action": s.Action, "outcomes": outcomes}
	case *ConditionalStmt:
		return map[string]interface{}{
			"kind":      "if",
			"condition": exprDoc(s.Cond),
			"body":      stmtListDoc(s.Body),
		}
	case *QueryStmt:
		doc := map[string]interface{}{"kind": "query", "name": s.Name}
		if s.Type != "" {
			doc["type"] = s.Type
		}
		if s.Default != nil {
			doc["default"] = exprDoc(s.Default)
		}
		return doc
	case *TableStmt:
		var rows []interface{}
		for _, row := range s.Rows {
			var cells []interface{}
			for _, cell := range row.Cells {
				cells = append(cells, exprDoc(cell))
			}
			rowDoc := map[string]interface{}{"cells": cells}
			if row.Actions != nil {
				rowDoc["actions"] = stmtListDoc(row.Actions)
			}
			rows = append(rows, rowDoc)
		}
		return map[string]interface{}{
			"kind":    "table",
			"name":    s.Name,
			"columns": s.Columns,
			"rows":    rows,
		}
	case *ChartStmt:
		var series []interface{}
		for _, sr := range s.Series {
			var points []interface{}
			for _, pt := range sr.Points {
				points = append(points, map[string]interface{}{
					"x": exprDoc(pt.X),
					"y": exprDoc(pt.Y),
				})
			}
			series = append(series, map[string]interface{}{
				"label":  sr.Label,
				"points": points,
			})
		}
		return map[string]interface{}{
			"kind":   "chart",
			"name":   s.Name,
			"type":   s.Kind,
			"series": series,
		}
	default:
		panic(fmt.Sprintf("parser: unhandled statement type %T", stmt))
	}
}

func navDoc(nav *NavTarget) map[string]interface{} {
	doc := map[string]interface{}{"page": nav.Target}
	var args []interface{}
	for _, arg := range nav.Args {
		args = append(args, map[string]interface{}{
			"key":   arg.Key,
			"value": exprDoc(arg.Value),
		})
	}
	if args != nil {
		doc["args"] = args
	}
	return doc
}

func exprDoc(expr Expr) map[string]interface{} {
	switch e := expr.(type) {
	case *Ident:
		return map[string]interface{}{"kind": "ident", "name": e.Name}
	case *MemberExpr:
		return map[string]interface{}{"kind": "member", "object": e.Object, "member": e.Member}
	case *StringLit:
		return map[string]interface{}{"kind": "string", "value": e.Value}
	case *NumberLit:
		// Raw text, not a parsed float: decimals must round-trip exactly.
		return map[string]interface{}{"kind": "number", "value": e.Raw}
	case *BoolLit:
		return map[string]interface{}{"kind": "boolean", "value": e.Value}
	case *BinaryExpr:
		return map[string]interface{}{
			"kind":  "binary",
			"op":    e.Op,
			"left":  exprDoc(e.Left),
			"right": exprDoc(e.Right),
		}
	case *UnaryExpr:
		return map[string]interface{}{
			"kind":    "unary",
			"op":      e.Op,
			"operand": exprDoc(e.Operand),
		}
	default:
		panic(fmt.Sprintf("parser: unhandled expression type %T", expr))
	}
}
