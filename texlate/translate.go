package texlate

import (
	"fmt"

	"github.com/npillmayer/treetex"
	"github.com/npillmayer/treetex/runtime"
	"github.com/npillmayer/treetex/safetext"
)

// Translator converts expression trees into TeX math markup. The zero value
// is not usable; create translators with NewTranslator or
// NewCustomTranslator.
//
// A translator is stateless apart from its (frozen) tables. Translate may
// be called concurrently from multiple goroutines.
type Translator struct {
	symbols   *runtime.ScopeTable
	functions *runtime.ScopeTable
	escaper   *safetext.Escaper
}

// NewTranslator creates a translator backed by the standard known-symbol
// and known-function tables for TeX math notation.
func NewTranslator() *Translator {
	InitKnownTables()
	return &Translator{
		symbols:   knownSymbols,
		functions: knownFunctions,
		escaper:   TeXEscaper,
	}
}

// NewCustomTranslator creates a translator with client-supplied rendering
// tables. The tables must not be mutated after this call. Either table may
// be nil, standing in for an empty one.
func NewCustomTranslator(symbols, functions *runtime.ScopeTable) *Translator {
	if symbols == nil {
		symbols = runtime.NewScopeTable("custom-symbols", nil)
	}
	if functions == nil {
		functions = runtime.NewScopeTable("custom-functions", nil)
	}
	return &Translator{
		symbols:   symbols,
		functions: functions,
		escaper:   TeXEscaper,
	}
}

// Translate converts a tree into TeX math markup. The tree is only
// traversed, never mutated, and the translator holds no reference to it
// after returning.
//
// A tree either translates fully or Translate returns an error; there is no
// partial output. All error conditions are deterministic: an unclassifiable
// node shape, a name used against the kind it is bound with, or a wrong
// argument count for a fixed-arity notation template.
func (tr *Translator) Translate(tree treetex.Expr) (safetext.SafeString, error) {
	chain, err := tr.buildChain(tree)
	if err != nil {
		return safetext.SafeString{}, err
	}
	text, err := tr.eval(tree, chain)
	if err != nil {
		tracer().Errorf("translation failed: %v", err)
		return safetext.SafeString{}, err
	}
	tracer().Debugf("translated tree to %q", text)
	// Renderer output is intentional markup, not user data: wrap, don't
	// re-escape.
	return safetext.AsSafe(text), nil
}

// buildChain constructs the four-layer lookup chain for one translation:
// the shared known tables plus two fallback tables synthesized from the
// names occurring in the tree. The chain guarantees that every identifier
// and every call head of the tree resolves to something.
func (tr *Translator) buildChain(tree treetex.Expr) (runtime.ScopeChain, error) {
	heads, err := treetex.CallHeads(tree)
	if err != nil {
		return nil, err
	}
	idents, err := treetex.FreeIdentifiers(tree)
	if err != nil {
		return nil, err
	}
	callFallback := runtime.NewScopeTable("call-fallback", nil)
	for _, v := range heads.Values() {
		name := v.(string)
		if tr.functions.Bindings().Resolve(name) == nil {
			callFallback.Def(opaqueCall(name))
		}
	}
	symbolFallback := runtime.NewScopeTable("symbol-fallback", nil)
	for _, v := range idents.Values() {
		name := v.(string)
		if tr.symbols.Bindings().Resolve(name) == nil {
			symbolFallback.Def(runtime.NewBinding(name).WithText(name))
		}
	}
	tracer().Debugf("chain built: %d fallback symbols, %d fallback calls",
		symbolFallback.Bindings().Size(), callFallback.Bindings().Size())
	return runtime.Chain(tr.symbols, symbolFallback, tr.functions, callFallback), nil
}

func (tr *Translator) eval(node treetex.Expr, chain runtime.ScopeChain) (string, error) {
	kind, err := treetex.Classify(node)
	if err != nil {
		return "", err
	}
	switch kind {
	case treetex.LiteralType:
		// Literal values are user data and may contain reserved characters.
		return tr.escaper.Escape(node.(treetex.Literal).Text()).Text(), nil
	case treetex.IdentifierType:
		name := node.(treetex.Identifier).Name
		b, _ := chain.Resolve(name)
		if b == nil {
			return "", fmt.Errorf("internal invariant violated: no binding for identifier '%s'", name)
		}
		if !b.IsSymbol() {
			return "", fmt.Errorf("'%s' is bound as a function, cannot be used as a value", name)
		}
		return b.Text(), nil
	case treetex.CallType:
		call := node.(treetex.Call)
		args := make([]string, len(call.Args))
		for i, arg := range call.Args {
			if args[i], err = tr.eval(arg, chain); err != nil {
				return "", err
			}
		}
		b, _ := chain.Resolve(call.Head)
		if b == nil {
			return "", fmt.Errorf("internal invariant violated: no binding for call head '%s'", call.Head)
		}
		if !b.IsRenderer() {
			return "", fmt.Errorf("'%s' is bound as a symbol, cannot be called", call.Head)
		}
		return b.Render(args)
	}
	return "", fmt.Errorf("cannot classify expression node of shape %T", node)
}
