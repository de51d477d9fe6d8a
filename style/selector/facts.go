package selector

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the kind of a basic selector.
type Kind uint8

// Kinds of basic selectors.
const (
	TypeKind Kind = iota
	IDKind
	ClassKind
	PseudoKind
)

func (k Kind) String() string {
	switch k {
	case IDKind:
		return "id"
	case ClassKind:
		return "class"
	case PseudoKind:
		return "pseudo"
	}
	return "type"
}

// Facts is what selector matching knows about a node: a map
// kind → value → numeric arguments. For example, the second of three
// children with classes "a b" has facts
//
//	class  → { a: [], b: [] }
//	pseudo → { nth-child: [2], nth-last-child: [2], … }
type Facts map[Kind]map[string][]int

// Add adds a fact. Adding an existing fact replaces its arguments.
func (f Facts) Add(kind Kind, value string, args ...int) {
	if value == "" {
		return
	}
	m := f[kind]
	if m == nil {
		m = make(map[string][]int)
		f[kind] = m
	}
	m[value] = args
}

// Lookup returns the arguments of a fact, and wether the fact is present.
func (f Facts) Lookup(kind Kind, value string) ([]int, bool) {
	args, ok := f[kind][value]
	return args, ok
}

func (f Facts) String() string {
	var parts []string
	for kind, m := range f {
		for value, args := range m {
			if len(args) > 0 {
				parts = append(parts, fmt.Sprintf("%s:%s%v", kind, value, args))
			} else {
				parts = append(parts, fmt.Sprintf("%s:%s", kind, value))
			}
		}
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, " ") + "}"
}

// Node is a node as seen by selector matching.
type Node interface {
	SelectorFacts() Facts
	ParentNode() (Node, bool)  // parent, false for the root
	PrevSibling() (Node, bool) // immediately preceding sibling, false for the first child
}
