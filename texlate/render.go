package texlate

import (
	"fmt"
	"strings"

	"github.com/npillmayer/treetex/runtime"
)

// Renderer builders. The known-function table is assembled from a static
// template list (see tables.go); each builder produces a binding whose
// render function enforces its fixed arity.

// unaryWrap renders a single argument between a prefix and a suffix, as in
// \sqrt{x}.
func unaryWrap(name, prefix, suffix string) *runtime.Binding {
	return runtime.NewBinding(name).WithRenderer(func(args []string) (string, error) {
		if len(args) != 1 {
			return "", arityError(name, 1, len(args))
		}
		return prefix + args[0] + suffix, nil
	})
}

// binaryInfix renders two arguments around a separator, as in a + b.
func binaryInfix(name, separator string) *runtime.Binding {
	return runtime.NewBinding(name).WithRenderer(func(args []string) (string, error) {
		if len(args) != 2 {
			return "", arityError(name, 2, len(args))
		}
		return args[0] + separator + args[1], nil
	})
}

// slots renders n arguments into an n-slot template. The template is given
// as n+1 text parts surrounding the slots, as in
//
//    slots("frac", `\frac{`, `}{`, `}`)   // \frac{a}{b}
//
func slots(name string, parts ...string) *runtime.Binding {
	arity := len(parts) - 1
	return runtime.NewBinding(name).WithRenderer(func(args []string) (string, error) {
		if len(args) != arity {
			return "", arityError(name, arity, len(args))
		}
		var b strings.Builder
		b.WriteString(parts[0])
		for i, arg := range args {
			b.WriteString(arg)
			b.WriteString(parts[i+1])
		}
		return b.String(), nil
	})
}

// opaqueCall is the fallback rendering for an unknown call head: name the
// function explicitly and list its rendered arguments.
func opaqueCall(name string) *runtime.Binding {
	return runtime.NewBinding(name).WithRenderer(func(args []string) (string, error) {
		return `\mathrm{` + name + `}(` + strings.Join(args, ", ") + `)`, nil
	})
}

func arityError(name string, expected, got int) error {
	if expected == 1 {
		return fmt.Errorf("%s: expected 1 argument, got %d", name, got)
	}
	return fmt.Errorf("%s: expected %d arguments, got %d", name, expected, got)
}
