/*
Package syntax parses a small infix notation into expression trees.

The translation core (package texlate) never parses source text; it expects
clients to supply trees. This package is such a client-side collaborator,
mainly used by the REPL and by tests. It understands numbers, identifiers,
function application f(a, b, …) and the operators

   + - * / ^ = < >

with the usual precedence, parentheses for grouping and unary minus.
Operators are plain call heads in the resulting tree: "a + b" parses to
Apply("+", a, b), "a / b" to Apply("frac", a, b), "a ^ b" to
Apply("pow", a, b).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treetex.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("treetex.syntax")
}
