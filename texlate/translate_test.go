package texlate

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treetex"
	"github.com/npillmayer/treetex/runtime"
)

func TestTranslateKnownSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	out, err := tr.Translate(treetex.Id("pi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\pi` {
		t.Errorf("expected \\pi, got %q", out.Text())
	}
	if !out.IsEncoded() {
		t.Error("translation result not marked as safe")
	}
}

func TestTranslateUnknownIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	out, err := tr.Translate(treetex.Id("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != "x" {
		t.Errorf("expected identity fallback \"x\", got %q", out.Text())
	}
}

func TestTranslateKnownFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	out, err := tr.Translate(treetex.Apply("sqrt", treetex.Id("x")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\sqrt{x}` {
		t.Errorf("expected \\sqrt{x}, got %q", out.Text())
	}
}

func TestTranslateOpaqueCallFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	tree := treetex.Apply("+", treetex.Id("pi"), treetex.Apply("foo", treetex.Id("a")))
	out, err := tr.Translate(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\pi + \mathrm{foo}(a)` {
		t.Errorf("expected \\pi + \\mathrm{foo}(a), got %q", out.Text())
	}
}

func TestTranslateArityMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	_, err := tr.Translate(treetex.Apply("sqrt", treetex.Id("x"), treetex.Id("y")))
	if err == nil {
		t.Fatal("expected arity-mismatch error, got none")
	}
	msg := err.Error()
	if !strings.Contains(msg, "sqrt") || !strings.Contains(msg, "1") || !strings.Contains(msg, "2") {
		t.Errorf("arity error should name sqrt and both counts, got %q", msg)
	}
}

func TestFallbackTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	// Nothing in this tree is known to any table.
	tree := treetex.Apply("wibble",
		treetex.Apply("wobble", treetex.Id("q")),
		treetex.Id("r"),
		treetex.Lit(3))
	out, err := tr.Translate(tree)
	if err != nil {
		t.Fatalf("translation of all-unknown tree failed: %v", err)
	}
	if out.Text() != `\mathrm{wibble}(\mathrm{wobble}(q), r, 3)` {
		t.Errorf("unexpected opaque rendering: %q", out.Text())
	}
}

func TestKnownSymbolPrecedesIdentityFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	// "pi" is a free identifier of the tree and a known symbol; the known
	// text must win over the identity fallback.
	tree := treetex.Apply("+", treetex.Id("pi"), treetex.Id("pi"))
	out, err := tr.Translate(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\pi + \pi` {
		t.Errorf("known symbol lost against identity fallback: %q", out.Text())
	}
}

func TestBindingKindEnforcement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	// "x" is symbol-bound (identity fallback, via the identifier argument);
	// using it as a call head must fail, not fall through to the opaque
	// renderer.
	tree := treetex.Apply("x", treetex.Id("x"))
	_, err := tr.Translate(tree)
	if err == nil {
		t.Fatal("expected binding-kind mismatch error, got none")
	}
	if !strings.Contains(err.Error(), "x") || !strings.Contains(err.Error(), "cannot be called") {
		t.Errorf("error should name 'x' and the required kind, got %q", err.Error())
	}
}

func TestCallingKnownSymbolFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	_, err := tr.Translate(treetex.Apply("pi", treetex.Lit(1)))
	if err == nil {
		t.Fatal("expected binding-kind mismatch error for call of 'pi', got none")
	}
}

func TestTranslateEscapesLiteralText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	out, err := tr.Translate(treetex.Lit("50% of #1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `50\% of \#1` {
		t.Errorf("literal user data not escaped: %q", out.Text())
	}
}

func TestTranslateFractionTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	tree := treetex.Apply("frac", treetex.Id("alpha"), treetex.Apply("+", treetex.Id("n"), treetex.Lit(1)))
	out, err := tr.Translate(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\frac{\alpha}{n + 1}` {
		t.Errorf("expected \\frac{\\alpha}{n + 1}, got %q", out.Text())
	}
}

func TestTranslateRejectsAlienNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	if _, err := tr.Translate(nil); err == nil {
		t.Error("expected classification error for nil tree, got none")
	}
}

func TestCustomTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	symbols := runtime.NewScopeTable("my-symbols", nil)
	symbols.Def(runtime.NewBinding("answer").WithText("42"))
	tr := NewCustomTranslator(symbols, nil)
	out, err := tr.Translate(treetex.Apply("shout", treetex.Id("answer")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text() != `\mathrm{shout}(42)` {
		t.Errorf("custom table not consulted: %q", out.Text())
	}
}

func TestTablesStayFrozen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	before := TableSignature()
	if before == "" {
		t.Fatal("no table signature")
	}
	tr := NewTranslator()
	trees := []treetex.Expr{
		treetex.Id("pi"),
		treetex.Apply("unknown", treetex.Id("alpha"), treetex.Id("beta")),
		treetex.Apply("frac", treetex.Lit(1), treetex.Lit(2)),
	}
	for _, tree := range trees {
		if _, err := tr.Translate(tree); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if after := TableSignature(); after != before {
		t.Errorf("known tables changed across translations: %s vs %s", before, after)
	}
}

func TestTranslateConcurrently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treetex.texlate")
	defer teardown()
	//
	tr := NewTranslator()
	tree := treetex.Apply("+", treetex.Id("pi"), treetex.Apply("sqrt", treetex.Id("x")))
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			out, err := tr.Translate(tree)
			if err != nil {
				done <- err.Error()
				return
			}
			done <- out.Text()
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != `\pi + \sqrt{x}` {
			t.Errorf("concurrent translation produced %q", got)
		}
	}
}
