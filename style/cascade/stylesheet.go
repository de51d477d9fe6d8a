package cascade

import (
	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/style/selector"
)

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	rules    []*Rule
	registry *style.Registry
}

// New creates a stylesheet from the rules of a CSSOM stylesheet. The first
// fatal rule error aborts and is returned; no stylesheet is created in this
// case.
func New(sheet cssom.StyleSheet, reg *style.Registry) (*Stylesheet, error) {
	ss := &Stylesheet{registry: reg}
	if sheet == nil || sheet.Empty() {
		return ss, nil
	}
	for _, r := range sheet.Rules() {
		rule, err := NewRule(r, reg)
		if err != nil {
			tracer().Errorf("rejecting stylesheet: %v", err)
			return nil, err
		}
		ss.rules = append(ss.rules, rule)
	}
	tracer().Debugf("stylesheet with %d rules", len(ss.rules))
	return ss, nil
}

// Rules returns the rules of a stylesheet in source order.
func (ss *Stylesheet) Rules() []*Rule {
	return ss.rules
}

// Registry returns the property registry the stylesheet was parsed with.
func (ss *Stylesheet) Registry() *style.Registry {
	return ss.registry
}

// Properties resolves the style of node n: all properties of matching rules,
// plus the registry defaults if withDefaults is set, sorted by descending
// weight and with one entry per property name.
func (ss *Stylesheet) Properties(n selector.Node, withDefaults bool) []*style.Property {
	groups := make([][]*style.Property, 0, len(ss.rules))
	for _, rule := range ss.rules {
		if props := rule.Properties(n); len(props) > 0 {
			groups = append(groups, props)
		}
	}
	var defaults []*style.Property
	if withDefaults && ss.registry != nil {
		defaults = ss.registry.Defaults()
	}
	return style.FlatSortUniq(groups, defaults)
}

// Diagnostics collects the diagnostics of all rules.
func (ss *Stylesheet) Diagnostics() []error {
	var diags []error
	for _, rule := range ss.rules {
		diags = append(diags, rule.Diagnostics()...)
	}
	return diags
}
