package texlate

import (
	"sync"

	"github.com/cnf/structhash"
	"github.com/npillmayer/treetex/runtime"
	"github.com/npillmayer/treetex/safetext"
)

// The process-wide known tables for TeX math notation. Both are initialized
// once, before first use, and never mutated afterwards; translations of
// different goroutines share them without locking.

// TeXEscaper rewrites the characters reserved by TeX. Rule order matters:
// the backslash introduces all escape sequences, so it comes first and its
// replacement uses letters only; braces come next, so that later rules may
// use braces in their replacements.
var TeXEscaper = safetext.NewEscaper("tex",
	safetext.Rule{From: `\`, To: `\backslash `},
	safetext.Rule{From: `{`, To: `\{`},
	safetext.Rule{From: `}`, To: `\}`},
	safetext.Rule{From: `#`, To: `\#`},
	safetext.Rule{From: `$`, To: `\$`},
	safetext.Rule{From: `%`, To: `\%`},
	safetext.Rule{From: `&`, To: `\&`},
	safetext.Rule{From: `_`, To: `\_`},
	safetext.Rule{From: `~`, To: `\sim{}`},
	safetext.Rule{From: `^`, To: `\hat{}`},
)

// symbolDefs lists the known special names and their markup form, mostly
// Greek letters. The slice keeps table construction deterministic.
var symbolDefs = []struct {
	Name string
	Text string
}{
	{"alpha", `\alpha`}, {"beta", `\beta`}, {"gamma", `\gamma`},
	{"delta", `\delta`}, {"epsilon", `\epsilon`}, {"zeta", `\zeta`},
	{"eta", `\eta`}, {"theta", `\theta`}, {"iota", `\iota`},
	{"kappa", `\kappa`}, {"lambda", `\lambda`}, {"mu", `\mu`},
	{"nu", `\nu`}, {"xi", `\xi`}, {"pi", `\pi`}, {"rho", `\rho`},
	{"sigma", `\sigma`}, {"tau", `\tau`}, {"upsilon", `\upsilon`},
	{"phi", `\phi`}, {"chi", `\chi`}, {"psi", `\psi`}, {"omega", `\omega`},
	{"Gamma", `\Gamma`}, {"Delta", `\Delta`}, {"Theta", `\Theta`},
	{"Lambda", `\Lambda`}, {"Xi", `\Xi`}, {"Pi", `\Pi`},
	{"Sigma", `\Sigma`}, {"Upsilon", `\Upsilon`}, {"Phi", `\Phi`},
	{"Psi", `\Psi`}, {"Omega", `\Omega`},
	{"infinity", `\infty`}, {"partial", `\partial`}, {"nabla", `\nabla`},
	{"ell", `\ell`}, {"emptyset", `\emptyset`}, {"aleph", `\aleph`},
	{"hbar", `\hbar`}, {"dots", `\dots`},
}

var initTablesOnce sync.Once
var knownSymbols *runtime.ScopeTable
var knownFunctions *runtime.ScopeTable

// InitKnownTables sets up the process-wide known-symbol and known-function
// tables. It is safe to call more than once; only the first call builds the
// tables. NewTranslator calls it implicitly.
func InitKnownTables() {
	initTablesOnce.Do(func() {
		knownSymbols = knownSymbolTable()
		knownFunctions = knownFunctionTable()
		tracer().Infof("known tables initialized: %d symbols, %d functions",
			knownSymbols.Bindings().Size(), knownFunctions.Bindings().Size())
	})
}

func knownSymbolTable() *runtime.ScopeTable {
	t := runtime.NewScopeTable("known-symbols", nil)
	for _, def := range symbolDefs {
		t.Def(runtime.NewBinding(def.Name).WithText(def.Text))
	}
	return t
}

func knownFunctionTable() *runtime.ScopeTable {
	t := runtime.NewScopeTable("known-functions", nil)
	for _, u := range []struct{ name, prefix, suffix string }{
		{"sqrt", `\sqrt{`, `}`},
		{"abs", `\left|`, `\right|`},
		{"norm", `\left\|`, `\right\|`},
		{"neg", `-`, ``},
		{"overline", `\overline{`, `}`},
		{"vec", `\vec{`, `}`},
		{"sin", `\sin(`, `)`},
		{"cos", `\cos(`, `)`},
		{"tan", `\tan(`, `)`},
		{"log", `\log(`, `)`},
		{"ln", `\ln(`, `)`},
		{"exp", `\exp(`, `)`},
	} {
		t.Def(unaryWrap(u.name, u.prefix, u.suffix))
	}
	for _, b := range []struct{ name, separator string }{
		{"+", ` + `},
		{"-", ` - `},
		{"=", ` = `},
		{"<", ` < `},
		{">", ` > `},
		{"leq", ` \leq `},
		{"geq", ` \geq `},
		{"neq", ` \neq `},
		{"approx", ` \approx `},
		{"times", ` \times `},
		{"cdot", ` \cdot `},
		{"div", ` \div `},
		{"pm", ` \pm `},
		{"in", ` \in `},
		{"to", ` \to `},
	} {
		t.Def(binaryInfix(b.name, b.separator))
	}
	t.Def(slots("frac", `\frac{`, `}{`, `}`))
	t.Def(slots("pow", `{`, `}^{`, `}`))
	t.Def(slots("sub", `{`, `}_{`, `}`))
	t.Def(slots("binom", `\binom{`, `}{`, `}`))
	return t
}

// TableSignature returns a fingerprint of the known-symbol definitions.
// Tests use it to assert the initialize-then-freeze discipline: the
// signature must not change across translations.
func TableSignature() string {
	hash, err := structhash.Hash(symbolDefs, 1)
	if err != nil {
		tracer().Errorf("cannot hash symbol table: %v", err)
		return ""
	}
	return hash
}
