/*
Package treetex translates expression trees into TeX-flavoured math markup.

TreeTeX is a small translation engine: clients hand it an already-parsed
expression tree and receive a rendered piece of math notation. Rendering is
driven by layered lookup tables with synthesized fallbacks, so every tree
translates to something, even if none of its names are known. Package
structure is as follows:

■ safetext: Package safetext implements the escape-safety string discipline
(a tainted-vs-safe string type plus ordered escaping rules).

■ runtime: Package runtime provides bindings, scope tables and per-call
scope chains for name resolution.

■ texlate: Package texlate holds the known-symbol and known-function tables
for TeX math notation and the translator proper.

■ syntax: Package syntax is a convenience collaborator which parses a small
infix notation into expression trees. The translation core itself never
parses source text.

The base package contains the expression-tree data types which are used
throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treetex
