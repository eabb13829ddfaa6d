package repl

import (
	"bytes"
	"strings"
	"testing"
)

// ── Continuation detection ──

func TestBraceDelta(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"", 0},
		{"app T {", 1},
		{"}", -1},
		{"page P { }", 0},
		{"if a { if b {", 2},
		{`text "{ not a brace }"`, 0},
		{"header \"x\" // trailing { comment", 0},
		{"// { all comment", 0},
	}
	for _, c := range cases {
		if got := braceDelta(c.line); got != c.want {
			t.Errorf("braceDelta(%q) = %d, want %d", c.line, got, c.want)
		}
	}
}

// ── Commands ──

func TestCommandQuit(t *testing.T) {
	s := New(&bytes.Buffer{}, false)
	if !s.command(":quit") {
		t.Error(":quit should end the session")
	}
	if !s.command(":q") {
		t.Error(":q should end the session")
	}
}

func TestCommandStrictToggles(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.command(":strict")
	if !s.strict {
		t.Error("expected strict on after toggle")
	}
	s.command(":strict")
	if s.strict {
		t.Error("expected strict off after second toggle")
	}
}

func TestCommandHelp(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.command(":help")
	if !strings.Contains(out.String(), ":quit") {
		t.Errorf("help should list commands, got %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.command(":bogus")
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("expected unknown-command message, got %q", out.String())
	}
}

// ── Evaluation ──

func TestEvalValidProgram(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T { entry Home }\npage Home { header \"hi\" }", "<repl>")
	if s.last == nil {
		t.Fatal("expected the program to be retained")
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("expected success summary, got %q", out.String())
	}
}

func TestEvalSemanticFailureKeepsProgram(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T { entry Missing }\npage Home { }", "<repl>")
	if s.last == nil {
		t.Error("the parsed tree should survive a check failure for :ast")
	}
	if !strings.Contains(out.String(), "SR-2") {
		t.Errorf("expected SR-2 diagnostic, got %q", out.String())
	}
}

func TestEvalDiagnosticsEndWithNewline(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T { entry Missing }\npage Home { }", "<repl>")
	if !strings.HasSuffix(out.String(), "\n") {
		t.Errorf("diagnostics should end with a newline before the next prompt, got %q", out.String())
	}
}

func TestEvalSyntaxFailure(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T {", "<repl>")
	if s.last != nil {
		t.Error("no tree should be retained on a syntax error")
	}
	if !strings.Contains(out.String(), "unexpected") {
		t.Errorf("expected syntax error output, got %q", out.String())
	}
}

func TestAstCommandAfterEval(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T { entry Home }\npage Home { }", "<repl>")
	out.Reset()
	s.command(":ast")
	if !strings.Contains(out.String(), `"app"`) {
		t.Errorf("expected JSON AST, got %q", out.String())
	}
	out.Reset()
	s.command(":ast yaml")
	if !strings.Contains(out.String(), "app:") {
		t.Errorf("expected YAML AST, got %q", out.String())
	}
}

func TestResetForgetsProgram(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, false)
	s.eval("app T { entry Home }\npage Home { }", "<repl>")
	s.command(":reset")
	if s.last != nil || s.lastSrc != "" {
		t.Error("reset should clear the session")
	}
}
