/*
Package texlate translates expression trees into TeX math markup.

The translator resolves every name of a tree against a chain of four
scope tables, built fresh for each translation call:

  known symbols  ≻  identity fallback  ≻  known functions  ≻  opaque-call fallback

The two known tables are process-wide constants (think of a fixed dictionary
of Greek-letter names and math operators); the two fallback tables are
synthesized from the tree at hand, so that translation never fails merely
because a name is unknown. Adding a special name, operator or notation
template means adding one entry to one of the known tables — no other
component changes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package texlate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treetex.texlate'.
func tracer() tracing.Trace {
	return tracing.Select("treetex.texlate")
}
