package cascade

import (
	"strings"

	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/style/selector"
)

// Rule is a parsed stylesheet rule.
type Rule struct {
	selectors   []*selector.Selector
	properties  []*style.Property // sorted, unique, without defaults
	diagnostics []error
}

// NewRule parses the selectors and declarations of a rule.
//
// Selector errors are fatal and returned as error. Property errors are not:
// the offending declaration is dropped and the error is recorded as a
// diagnostic (see Diagnostics).
func NewRule(r cssom.Rule, reg *style.Registry) (*Rule, error) {
	rule := &Rule{}
	for _, text := range r.Selectors {
		if strings.TrimSpace(text) == "" {
			continue
		}
		sel, err := selector.Parse(text)
		if err != nil {
			if e, ok := err.(*cssom.Error); ok && len(r.Declarations) > 0 && e.Position.IsZero() {
				e.At(r.Declarations[0].Position)
			}
			return nil, err
		}
		rule.selectors = append(rule.selectors, sel)
	}
	if len(rule.selectors) == 0 {
		return nil, cssom.Errorf(cssom.SelectorSyntaxError, strings.Join(r.Selectors, ","),
			"rule without selector")
	}
	var parsed []*style.Property
	for _, decl := range r.Declarations {
		props, errs := reg.Parse(decl)
		for _, err := range errs {
			tracer().Infof("dropping declaration: %v", err)
		}
		rule.diagnostics = append(rule.diagnostics, errs...)
		parsed = append(parsed, props...)
	}
	rule.properties = style.FlatSortUniq([][]*style.Property{parsed}, nil)
	return rule, nil
}

// Selectors returns the selectors of a rule, in source order.
func (rule *Rule) Selectors() []*selector.Selector {
	return rule.selectors
}

// Declared returns the properties of a rule, heaviest first, without
// selector weight.
func (rule *Rule) Declared() []*style.Property {
	return rule.properties
}

// Diagnostics returns errors for the declarations dropped from a rule.
func (rule *Rule) Diagnostics() []error {
	return rule.diagnostics
}

// Match returns the heaviest selector of rule matching n. If more than one
// selector has the maximum weight, the first one wins.
func (rule *Rule) Match(n selector.Node) (*selector.Selector, bool) {
	var best *selector.Selector
	for _, sel := range rule.selectors {
		if !sel.Match(n) {
			continue
		}
		if best == nil || best.Weight().Less(sel.Weight()) {
			best = sel
		}
	}
	return best, best != nil
}

// Properties returns the properties of rule for node n, with the weight of
// the matching selector added. If no selector matches n, nil is returned.
func (rule *Rule) Properties(n selector.Node) []*style.Property {
	sel, ok := rule.Match(n)
	if !ok {
		return nil
	}
	props := make([]*style.Property, len(rule.properties))
	for i, p := range rule.properties {
		props[i] = style.Extract(p, sel.Weight())
	}
	return props
}

func (rule *Rule) String() string {
	var sb strings.Builder
	for i, sel := range rule.selectors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sel.String())
	}
	sb.WriteString(" {")
	for _, p := range rule.properties {
		sb.WriteString(" " + p.Name + ": " + p.Value.String() + ";")
	}
	sb.WriteString(" }")
	return sb.String()
}
