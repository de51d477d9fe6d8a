package cssom

import "fmt"

// Position is a source position within a stylesheet. Lines and columns start
// at 1; the zero position is used for values without a source, e.g. defaults.
type Position struct {
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// IsZero is true for positions without a source location.
func (pos Position) IsZero() bool {
	return pos.Line == 0 && pos.Column == 0
}

// Before is a predicate to check whether pos is located before other.
func (pos Position) Before(other Position) bool {
	if pos.Line != other.Line {
		return pos.Line < other.Line
	}
	return pos.Column < other.Column
}

// Declaration is a single `property: value` pair of a rule.
type Declaration struct {
	Property  string   // property name, e.g. "padding"
	Value     string   // raw value text, e.g. "1 2 !important"
	Important bool     // set if the outer parser already split off "!important"
	Position  Position // source position of the declaration
}

// Rule is the type stylesheets consists of: a comma-separated selector list
// and a declaration block.
type Rule struct {
	Selectors    []string // the selectors of the rule, already split at commas
	Declarations []Declaration
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// styling engine, we introduce an interface for CSS stylesheets.
// Clients for the styling engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter),
// or use type RuleList.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// RuleList is a plain StyleSheet implementation.
type RuleList []Rule

// AppendRules appends rules from another stylesheet.
func (rl *RuleList) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	tracer().Debugf("appending %d rules to stylesheet", len(other.Rules()))
	*rl = append(*rl, other.Rules()...)
}

// Empty checks if this stylesheet contains any rules.
func (rl *RuleList) Empty() bool {
	return rl == nil || len(*rl) == 0
}

// Rules returns all the rules of a stylesheet.
func (rl *RuleList) Rules() []Rule {
	if rl == nil {
		return nil
	}
	return *rl
}

var _ StyleSheet = &RuleList{}
