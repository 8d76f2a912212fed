package treetex

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Name collection: two independent walks over the same tree shape. The
// translator uses them to find out which fallback bindings it has to
// synthesize before a tree is evaluated.
//
// Both walks deduplicate and keep first-encountered order, so results are
// reproducible within a run.

// FreeIdentifiers collects the names of all identifier nodes of a tree.
// Call heads do not count: they name functions, not values.
func FreeIdentifiers(node Expr) (*linkedhashset.Set, error) {
	names := linkedhashset.New()
	if err := collectFree(node, names); err != nil {
		return nil, err
	}
	return names, nil
}

func collectFree(node Expr, names *linkedhashset.Set) error {
	kind, err := Classify(node)
	if err != nil {
		return err
	}
	switch kind {
	case LiteralType:
		// no names in a literal
	case IdentifierType:
		names.Add(node.(Identifier).Name)
	case CallType:
		for _, arg := range node.(Call).Args {
			if err := collectFree(arg, names); err != nil {
				return err
			}
		}
	}
	return nil
}

// CallHeads collects the head names of all call nodes of a tree, including
// nested calls within argument positions.
func CallHeads(node Expr) (*linkedhashset.Set, error) {
	names := linkedhashset.New()
	if err := collectHeads(node, names); err != nil {
		return nil, err
	}
	return names, nil
}

func collectHeads(node Expr, names *linkedhashset.Set) error {
	kind, err := Classify(node)
	if err != nil {
		return err
	}
	if kind != CallType {
		return nil
	}
	call := node.(Call)
	names.Add(call.Head)
	for _, arg := range call.Args {
		if err := collectHeads(arg, names); err != nil {
			return err
		}
	}
	return nil
}
