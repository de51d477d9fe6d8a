package selector

import (
	"strings"

	"github.com/npillmayer/tcss/style"
)

// Basic is a basic selector: a type, id, class or pseudo-class.
type Basic struct {
	Kind  Kind
	Value string
	Arg   string  // argument of a pseudo-class, if any
	Test  ArgTest // argument test of a positional pseudo-class
}

func (b Basic) String() string {
	switch b.Kind {
	case IDKind:
		return "#" + b.Value
	case ClassKind:
		return "." + b.Value
	case PseudoKind:
		if b.Arg != "" {
			return ":" + b.Value + "(" + b.Arg + ")"
		}
		return ":" + b.Value
	}
	return b.Value
}

// Simple is a simple selector, i.e. an AND-set of basic selectors.
type Simple []Basic

func (s Simple) String() string {
	var sb strings.Builder
	for _, b := range s {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// matches checks every basic selector against the facts of a node.
func (s Simple) matches(n Node) bool {
	facts := n.SelectorFacts()
	for _, b := range s {
		if b.Kind == TypeKind && b.Value == "*" {
			continue
		}
		args, ok := facts.Lookup(b.Kind, b.Value)
		if !ok {
			return false
		}
		if b.Test != nil && (len(args) == 0 || !b.Test(args[0])) {
			return false
		}
	}
	return true
}

// Combinator is an operator between two simple selectors.
type Combinator uint8

// Combinators
const (
	NoCombinator    Combinator = iota
	Descendant                 // "a b"
	Child                      // "a > b"
	AdjacentSibling            // "a + b"
	GeneralSibling             // "a ~ b"
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case AdjacentSibling:
		return " + "
	case GeneralSibling:
		return " ~ "
	}
	return ""
}

// Component is either a simple selector or a combinator
// (if Combinator ≠ NoCombinator).
type Component struct {
	Simple     Simple
	Combinator Combinator
}

// IsCombinator is true for combinator components.
func (c Component) IsCombinator() bool {
	return c.Combinator != NoCombinator
}

// step is a step of a reversed matching plan. Steps with a combinator
// navigate from the current node before checking conditions.
type step struct {
	conds Simple
	comb  Combinator
}

// Selector is a parsed selector. Selectors are immutable.
type Selector struct {
	text       string
	components []Component
	weight     style.Weight
	plan       []step
}

func newSelector(text string, components []Component) *Selector {
	sel := &Selector{text: text, components: components}
	var ids, classes, types int
	for _, c := range components {
		for _, b := range c.Simple {
			switch {
			case b.Kind == IDKind:
				ids++
			case b.Kind == ClassKind || b.Kind == PseudoKind:
				classes++
			case b.Kind == TypeKind && b.Value != "*":
				types++
			}
		}
	}
	sel.weight = style.SelectorWeight(ids, classes, types)
	for _, c := range components {
		if c.IsCombinator() {
			sel.plan[len(sel.plan)-1].comb = c.Combinator
		} else {
			sel.plan = append(sel.plan, step{conds: c.Simple})
		}
	}
	for i, j := 0, len(sel.plan)-1; i < j; i, j = i+1, j-1 {
		sel.plan[i], sel.plan[j] = sel.plan[j], sel.plan[i]
	}
	return sel
}

// Weight returns the specificity of a selector.
func (sel *Selector) Weight() style.Weight {
	return sel.weight
}

// Components returns the alternating sequence of simple selectors and
// combinators. Clients must not modify the result.
func (sel *Selector) Components() []Component {
	return sel.components
}

func (sel *Selector) String() string {
	return sel.text
}

// Match checks if a node is matched by sel.
func (sel *Selector) Match(n Node) bool {
	current := n
	for _, st := range sel.plan {
		if st.comb == NoCombinator {
			if !st.conds.matches(current) {
				return false
			}
			continue
		}
		next, ok := findReverse(current, st)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// findReverse navigates from n as dictated by the combinator of st, until a
// node satisfying the conditions of st is found. Child and adjacent-sibling
// combinators allow just one step, descendant and general-sibling combinators
// retry until the root resp. the first sibling is passed.
func findReverse(n Node, st step) (Node, bool) {
	var up, repeat bool
	switch st.comb {
	case Child:
		up, repeat = true, false
	case Descendant:
		up, repeat = true, true
	case AdjacentSibling:
		up, repeat = false, false
	case GeneralSibling:
		up, repeat = false, true
	}
	current := n
	for {
		var ok bool
		if up {
			current, ok = current.ParentNode()
		} else {
			current, ok = current.PrevSibling()
		}
		if !ok {
			return nil, false
		}
		if st.conds.matches(current) {
			return current, true
		}
		if !repeat {
			return nil, false
		}
	}
}
