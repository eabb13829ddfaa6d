package analyzer

import (
	"fmt"

	cerr "github.com/swan-lang/swan/internal/errors"
	"github.com/swan-lang/swan/internal/parser"
)

const suggestionThreshold = 0.6

// Options controls optional analysis behavior.
type Options struct {
	// Strict enables the page-reachability rule (SR-13).
	Strict bool

	// Entry, when non-empty, is checked in place of the program's own
	// declared entry page. The tree itself is never rewritten.
	Entry string
}

// Analyze performs static semantic analysis on a parsed Program,
// running the fourteen SR rules and returning every diagnostic found.
// The tree is only read, never rewritten.
func Analyze(prog *parser.Program, file string, opts Options) *cerr.CheckErrors {
	errs := cerr.New(file)

	// Symbol tables: pages and components are separate namespaces.
	pages, pageList := collectNames(prog.Pages, func(p *parser.PageDecl) string { return p.Name })
	components, _ := collectNames(prog.Components, func(c *parser.ComponentDecl) string { return c.Name })

	// SR-1: exactly one app with a non-empty entry. The grammar already
	// forces one app per file; a missing app only arises on
	// hand-constructed trees.
	if prog.App == nil {
		errs.AddError("SR-1", "program has no app declaration")
		return errs
	}
	entry := prog.App.Entry
	if opts.Entry != "" {
		entry = opts.Entry
	}
	if entry == "" {
		errs.AddErrorAt("SR-1", fmt.Sprintf("app %q declares no entry page", prog.App.Name),
			prog.App.Pos.Line, prog.App.Pos.Column)
	}

	// SR-2: entry must resolve to a declared page.
	checkEntry(errs, prog, entry, pages, components, pageList)

	// SR-6: page and component names unique within their namespaces.
	checkDuplicates(errs, prog.Pages, func(p *parser.PageDecl) string { return p.Name },
		func(p *parser.PageDecl) parser.Position { return p.Pos }, "page")
	checkDuplicates(errs, prog.Components, func(c *parser.ComponentDecl) string { return c.Name },
		func(c *parser.ComponentDecl) parser.Position { return c.Pos }, "component")

	// SR-6 (actions), SR-3, SR-7: per-scope rules over recursively
	// collected facts.
	for _, page := range prog.Pages {
		checkActionUniqueness(errs, "page", page.Name, page.Body)
		checkQueryUniqueness(errs, page.Name, page.Body)
	}
	for _, comp := range prog.Components {
		checkActionUniqueness(errs, "component", comp.Name, comp.Body)
		checkQueryPlacement(errs, comp)
	}

	// SR-9 needs every page's declared query names indexed before any
	// navigation edge is validated.
	queryIndex := buildQueryIndex(prog.Pages)

	// SR-8, SR-9: navigation targets and argument keys.
	for _, page := range prog.Pages {
		checkNavigation(errs, fmt.Sprintf("page %q", page.Name), page.Body, pages, components, pageList, queryIndex)
	}
	for _, comp := range prog.Components {
		checkNavigation(errs, fmt.Sprintf("component %q", comp.Name), comp.Body, pages, components, pageList, queryIndex)
	}

	// SR-4, SR-5: use resolution and composition acyclicity.
	checkUses(errs, prog, components)
	checkComponentCycles(errs, prog.Components)

	// SR-10 … SR-12, SR-14: table and chart shape.
	for _, page := range prog.Pages {
		checkShapes(errs, page.Body)
	}
	for _, comp := range prog.Components {
		checkShapes(errs, comp.Body)
	}

	// SR-13: strict-mode reachability.
	if opts.Strict {
		checkReachability(errs, prog, entry)
	}

	return errs
}

// ── Symbol table helpers ──

// collectNames builds a lookup set and an ordered list from a slice of
// declarations. Matching is exact: SWAN identifiers are case-sensitive.
func collectNames[T any](items []T, nameFunc func(T) string) (map[string]bool, []string) {
	m := make(map[string]bool)
	var list []string
	for _, item := range items {
		name := nameFunc(item)
		m[name] = true
		list = append(list, name)
	}
	return m, list
}

// ── SR-2: entry resolution ──

func checkEntry(errs *cerr.CheckErrors, prog *parser.Program, entry string, pages, components map[string]bool, pageList []string) {
	if entry == "" || pages[entry] {
		return
	}
	pos := prog.App.Pos

	if components[entry] {
		errs.AddErrorAt("SR-2",
			fmt.Sprintf("entry %q names a component; only pages are routable", entry),
			pos.Line, pos.Column)
		return
	}

	msg := fmt.Sprintf("entry %q does not name a declared page", entry)
	if suggestion := cerr.FindClosest(entry, pageList, suggestionThreshold); suggestion != "" {
		errs.AddErrorWithSuggestion("SR-2", msg, fmt.Sprintf("Did you mean %q?", suggestion), pos.Line, pos.Column)
	} else {
		errs.AddErrorAt("SR-2", msg, pos.Line, pos.Column)
	}
}

// ── SR-6: duplicate declarations ──

func checkDuplicates[T any](errs *cerr.CheckErrors, items []T, nameFunc func(T) string, posFunc func(T) parser.Position, kind string) {
	seen := make(map[string]bool)
	for _, item := range items {
		name := nameFunc(item)
		if seen[name] {
			pos := posFunc(item)
			errs.AddErrorAt("SR-6", fmt.Sprintf("duplicate %s name %q", kind, name), pos.Line, pos.Column)
		}
		seen[name] = true
	}
}

// checkActionUniqueness enforces SR-6 for action identifiers within one
// page or component scope. Occurrences inside conditionals and row
// action blocks count toward the same scope, so a name used once inside
// a conditional and once outside is still a duplicate.
func checkActionUniqueness(errs *cerr.CheckErrors, kind, scope string, body []parser.Stmt) {
	seen := make(map[string]bool)
	for _, action := range collectActions(body) {
		if seen[action.Action] {
			errs.AddErrorAt("SR-6",
				fmt.Sprintf("%s %q declares action %q more than once", kind, scope, action.Action),
				action.Pos.Line, action.Pos.Column)
		}
		seen[action.Action] = true
	}
}

// ── SR-3, SR-7: query declarations ──

// checkQueryPlacement enforces SR-3: components may not declare query
// parameters, however deeply nested.
func checkQueryPlacement(errs *cerr.CheckErrors, comp *parser.ComponentDecl) {
	for _, q := range collectQueries(comp.Body) {
		errs.AddErrorAt("SR-3",
			fmt.Sprintf("component %q declares query parameter %q; queries are valid only in pages", comp.Name, q.Name),
			q.Pos.Line, q.Pos.Column)
	}
}

// checkQueryUniqueness enforces SR-7 within one page.
func checkQueryUniqueness(errs *cerr.CheckErrors, page string, body []parser.Stmt) {
	seen := make(map[string]bool)
	for _, q := range collectQueries(body) {
		if seen[q.Name] {
			errs.AddErrorAt("SR-7",
				fmt.Sprintf("page %q declares query parameter %q more than once", page, q.Name),
				q.Pos.Line, q.Pos.Column)
		}
		seen[q.Name] = true
	}
}

// buildQueryIndex maps each page name to the set of query-parameter
// names it declares (recursively collected).
func buildQueryIndex(pages []*parser.PageDecl) map[string]map[string]bool {
	index := make(map[string]map[string]bool, len(pages))
	for _, page := range pages {
		names := make(map[string]bool)
		for _, q := range collectQueries(page.Body) {
			names[q.Name] = true
		}
		index[page.Name] = names
	}
	return index
}

// ── SR-8, SR-9: navigation targets ──

func checkNavigation(errs *cerr.CheckErrors, scope string, body []parser.Stmt,
	pages, components map[string]bool, pageList []string, queryIndex map[string]map[string]bool) {

	for _, ref := range collectNavRefs(body) {
		if !pages[ref.target] {
			var msg string
			if components[ref.target] {
				msg = fmt.Sprintf("%s navigates to %q, which is a component; only pages are routable", scope, ref.target)
			} else {
				msg = fmt.Sprintf("%s navigates to %q, which is not a declared page", scope, ref.target)
			}
			if suggestion := cerr.FindClosest(ref.target, pageList, suggestionThreshold); suggestion != "" {
				errs.AddErrorWithSuggestion("SR-8", msg, fmt.Sprintf("Did you mean %q?", suggestion), ref.pos.Line, ref.pos.Column)
			} else {
				errs.AddErrorAt("SR-8", msg, ref.pos.Line, ref.pos.Column)
			}
			continue
		}

		// SR-9: every argument key must match a query declared on the
		// target page.
		declared := queryIndex[ref.target]
		for _, arg := range ref.args {
			if declared[arg.Key] {
				continue
			}
			msg := fmt.Sprintf("%s passes query argument %q, but page %q declares no such parameter", scope, arg.Key, ref.target)
			var declaredList []string
			for name := range declared {
				declaredList = append(declaredList, name)
			}
			if suggestion := cerr.FindClosest(arg.Key, declaredList, suggestionThreshold); suggestion != "" {
				errs.AddErrorWithSuggestion("SR-9", msg, fmt.Sprintf("Did you mean %q?", suggestion), arg.Pos.Line, arg.Pos.Column)
			} else {
				errs.AddErrorAt("SR-9", msg, arg.Pos.Line, arg.Pos.Column)
			}
		}
	}
}

// ── SR-4: use resolution ──

func checkUses(errs *cerr.CheckErrors, prog *parser.Program, components map[string]bool) {
	var compList []string
	for _, c := range prog.Components {
		compList = append(compList, c.Name)
	}

	check := func(scope string, body []parser.Stmt) {
		for _, use := range collectUses(body) {
			if components[use.Component] {
				continue
			}
			msg := fmt.Sprintf("%s uses %q, which is not a declared component", scope, use.Component)
			if suggestion := cerr.FindClosest(use.Component, compList, suggestionThreshold); suggestion != "" {
				errs.AddErrorWithSuggestion("SR-4", msg, fmt.Sprintf("Did you mean %q?", suggestion), use.Pos.Line, use.Pos.Column)
			} else {
				errs.AddErrorAt("SR-4", msg, use.Pos.Line, use.Pos.Column)
			}
		}
	}

	for _, page := range prog.Pages {
		check(fmt.Sprintf("page %q", page.Name), page.Body)
	}
	for _, comp := range prog.Components {
		check(fmt.Sprintf("component %q", comp.Name), comp.Body)
	}
}

// ── SR-5: component composition acyclicity ──

// checkComponentCycles depth-first traverses the component composition
// graph (an edge A → B means component A uses B). A node revisited while
// still on the current path is a true cycle; finished nodes are memoized
// so shared subtrees are not re-walked and never trigger the error on
// their own. Pages cannot be used by anything, so they never participate.
func checkComponentCycles(errs *cerr.CheckErrors, components []*parser.ComponentDecl) {
	type edge struct {
		to  string
		pos parser.Position
	}
	graph := make(map[string][]edge, len(components))
	declared := make(map[string]bool, len(components))
	for _, comp := range components {
		declared[comp.Name] = true
	}
	for _, comp := range components {
		for _, use := range collectUses(comp.Body) {
			if declared[use.Component] {
				graph[comp.Name] = append(graph[comp.Name], edge{to: use.Component, pos: use.Pos})
			}
		}
	}

	onPath := make(map[string]bool)
	finished := make(map[string]bool)

	var visit func(name string)
	visit = func(name string) {
		onPath[name] = true
		for _, e := range graph[name] {
			if onPath[e.to] {
				errs.AddErrorAt("SR-5",
					fmt.Sprintf("component %q uses %q, forming a composition cycle", name, e.to),
					e.pos.Line, e.pos.Column)
				continue
			}
			if !finished[e.to] {
				visit(e.to)
			}
		}
		onPath[name] = false
		finished[name] = true
	}

	for _, comp := range components {
		if !finished[comp.Name] {
			visit(comp.Name)
		}
	}
}

// ── SR-10 … SR-12, SR-14: table and chart shape ──

func checkShapes(errs *cerr.CheckErrors, body []parser.Stmt) {
	for _, table := range collectTables(body) {
		if len(table.Columns) == 0 {
			errs.AddErrorAt("SR-11", fmt.Sprintf("table %q declares no columns", table.Name),
				table.Pos.Line, table.Pos.Column)
		}
		if len(table.Rows) == 0 {
			errs.AddErrorAt("SR-11", fmt.Sprintf("table %q declares no rows", table.Name),
				table.Pos.Line, table.Pos.Column)
		}
		for i, row := range table.Rows {
			if len(row.Cells) != len(table.Columns) {
				errs.AddErrorAt("SR-10",
					fmt.Sprintf("table %q row %d has %d cells but %d columns are declared",
						table.Name, i+1, len(row.Cells), len(table.Columns)),
					row.Pos.Line, row.Pos.Column)
			}
		}
	}

	for _, chart := range collectCharts(body) {
		if len(chart.Series) == 0 {
			errs.AddErrorAt("SR-12", fmt.Sprintf("chart %q declares no series", chart.Name),
				chart.Pos.Line, chart.Pos.Column)
		}
		for _, series := range chart.Series {
			if len(series.Points) == 0 {
				errs.AddErrorAt("SR-12",
					fmt.Sprintf("chart %q series %q has no points", chart.Name, series.Label),
					series.Pos.Line, series.Pos.Column)
			}
		}
		// A pie represents parts of a single whole; more than one series
		// is undefined.
		if chart.Kind == "pie" && len(chart.Series) > 1 {
			errs.AddErrorAt("SR-14",
				fmt.Sprintf("pie chart %q has %d series; pie charts take exactly one", chart.Name, len(chart.Series)),
				chart.Pos.Line, chart.Pos.Column)
		}
	}
}

// ── SR-13: page reachability (strict mode) ──

// checkReachability breadth-first traverses the page navigation graph
// from the entry page. A page's outgoing edges are its own navigation
// references plus those of every component it uses: one level of
// indirection, attributing a component's edges to the using page.
func checkReachability(errs *cerr.CheckErrors, prog *parser.Program, entry string) {
	compBodies := make(map[string][]parser.Stmt, len(prog.Components))
	for _, comp := range prog.Components {
		compBodies[comp.Name] = comp.Body
	}

	// Outgoing edges per page.
	edges := make(map[string][]string, len(prog.Pages))
	pageSet := make(map[string]bool, len(prog.Pages))
	for _, page := range prog.Pages {
		pageSet[page.Name] = true
		var targets []string
		for _, ref := range collectNavRefs(page.Body) {
			targets = append(targets, ref.target)
		}
		for _, use := range collectUses(page.Body) {
			for _, ref := range collectNavRefs(compBodies[use.Component]) {
				targets = append(targets, ref.target)
			}
		}
		edges[page.Name] = targets
	}

	reached := make(map[string]bool)
	if pageSet[entry] {
		queue := []string{entry}
		reached[entry] = true
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, target := range edges[current] {
				if pageSet[target] && !reached[target] {
					reached[target] = true
					queue = append(queue, target)
				}
			}
		}
	}

	for _, page := range prog.Pages {
		if !reached[page.Name] {
			errs.AddErrorAt("SR-13",
				fmt.Sprintf("page %q is not reachable from entry %q", page.Name, entry),
				page.Pos.Line, page.Pos.Column)
		}
	}
}
