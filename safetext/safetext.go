/*
Package safetext implements an escape-safety discipline for generated markup.

Strings wander through a translation engine in two states: raw client text,
which may contain characters reserved by the target notation, and text which
has already been encoded (or produced by a trusted renderer). Mixing the two
up leads to either broken markup or double-escaped output. SafeString makes
the distinction a type: an Escaper turns raw text into a SafeString, and
escaping a SafeString again is a no-op. This is the single mechanism
preventing double-encoding; no other component may bypass it.

Escapers are notation-agnostic. A client package (e.g. texlate for TeX math
markup) authors the substitution rules; an HTML-style backend would bring
its own rule table and reuse everything else unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package safetext

import (
	"fmt"
	"strings"
)

// SafeString is a string carrying an "already encoded" marker. Values are
// created by Escaper.Escape or by AsSafe; there is no other way to obtain
// one, and none to mutate one.
type SafeString struct {
	text    string
	encoded bool
}

// AsSafe marks a string as pre-approved, without inspection. It is the
// explicit opt-out for callers which assert their content is already valid
// target notation.
func AsSafe(raw string) SafeString {
	return SafeString{text: raw, encoded: true}
}

// Text returns the wrapped text.
func (s SafeString) Text() string {
	return s.text
}

// IsEncoded tells whether the text has passed an Escaper (or AsSafe).
func (s SafeString) IsEncoded() bool {
	return s.encoded
}

// String is a debug Stringer. The fixed prefix makes translated output
// recognizable in traces, which helps spotting missing-escape bugs.
func (s SafeString) String() string {
	return "⟨safe⟩" + s.text
}

// --- Escaping --------------------------------------------------------------

// Rule is a single substitution: every occurrence of a reserved character
// is rewritten to its literal escape sequence.
type Rule struct {
	From string // the reserved character
	To   string // its escape sequence
}

// Escaper rewrites reserved characters of a target notation, rule by rule,
// in a fixed order. Order is part of the contract: the rule for the
// escape-prefix character must come first, and the replacement of a rule may
// only contain raw reserved characters of earlier rules. Then characters
// introduced by one substitution are never reinterpreted by a later one.
type Escaper struct {
	name  string
	rules []Rule
}

// NewEscaper creates an escaper for a notation. The rule order given here
// is the order of application.
func NewEscaper(name string, rules ...Rule) *Escaper {
	return &Escaper{name: name, rules: rules}
}

// Name returns the notation name of the escaper.
func (esc *Escaper) Name() string {
	return esc.name
}

// Rules returns the substitution rules, in application order.
func (esc *Escaper) Rules() []Rule {
	r := make([]Rule, len(esc.rules))
	copy(r, esc.rules)
	return r
}

// Escape encodes a value into a SafeString. A SafeString argument is
// returned unchanged (escaping is idempotent). A plain string is rewritten
// rule by rule; other values are escaped via their textual form.
func (esc *Escaper) Escape(v interface{}) SafeString {
	switch t := v.(type) {
	case SafeString:
		return t
	case string:
		return SafeString{text: esc.substitute(t), encoded: true}
	case fmt.Stringer:
		return SafeString{text: esc.substitute(t.String()), encoded: true}
	}
	return SafeString{text: esc.substitute(fmt.Sprintf("%v", v)), encoded: true}
}

func (esc *Escaper) substitute(s string) string {
	for _, rule := range esc.rules {
		s = strings.ReplaceAll(s, rule.From, rule.To)
	}
	return s
}
