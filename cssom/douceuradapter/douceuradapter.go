/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It uses github.com/aymerick/douceur to split stylesheet text into rules.
Douceur does not report source positions. As positions only serve as a
tie-break between declarations of equal weight ("last rule wins"), we
synthesize them from source order: the line is the ordinal number of the
rule, the column is the ordinal number of the declaration within the rule.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tcss/cssom"
)

// tracer traces with key 'tcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("tcss.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []cssom.Rule
}

// Parse parses stylesheet text and wraps the result.
// Syntax errors of the outer CSS grammar are reported as errors of kind
// cssom.StylesheetParseError.
func Parse(source string) (*CSSStyles, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, &cssom.Error{Kind: cssom.StylesheetParseError, Text: excerpt(source), Err: err}
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// At-rules are not supported by the engine and are skipped.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	styles := &CSSStyles{}
	if sheet == nil {
		return styles
	}
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule @%s", r.Name)
			continue
		}
		styles.rules = append(styles.rules, convert(r, len(styles.rules)+1))
	}
	return styles
}

func convert(r *css.Rule, line int) cssom.Rule {
	rule := cssom.Rule{}
	selectors := r.Selectors
	if len(selectors) == 0 {
		selectors = strings.Split(r.Prelude, ",")
	}
	for _, sel := range selectors {
		if sel = strings.TrimSpace(sel); sel != "" {
			rule.Selectors = append(rule.Selectors, sel)
		}
	}
	for i, d := range r.Declarations {
		rule.Declarations = append(rule.Declarations, cssom.Declaration{
			Property:  strings.TrimSpace(d.Property),
			Value:     d.Value,
			Important: d.Important,
			Position:  cssom.Position{Line: line, Column: i + 1},
		})
	}
	return rule
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet. Synthesized positions
// of the appended rules are shifted behind the rules of sheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	offset := len(sheet.rules)
	for _, r := range other.Rules() {
		decls := make([]cssom.Declaration, len(r.Declarations))
		copy(decls, r.Declarations)
		for i := range decls {
			decls[i].Position.Line += offset
		}
		r.Declarations = decls
		sheet.rules = append(sheet.rules, r)
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return sheet.rules
}

var _ cssom.StyleSheet = &CSSStyles{}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}
