package engine

import (
	"strings"

	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style/selector"
)

// Attrs are the static attributes of a node. Values are lower-case.
type Attrs struct {
	Type    string
	ID      string
	Classes string // space-separated
}

// Input is the input state of a node.
type Input struct {
	Hover bool
	Focus bool
}

// TreeFacts describe the position of a node within its parent. Indices are
// 0-based; they are -1 for the root, and the list fields are -1 for nodes
// which are not an item of an enclosing list.
type TreeFacts struct {
	NodeIndex    int
	NodeTotal    int
	TypeIndex    int
	TypeTotal    int
	ListIndex    int
	ListTotal    int
	ListSelected int
}

// ChildFacts describe the children of a node.
type ChildFacts struct {
	Total int
}

// NodeFacts is everything the engine knows about a node.
type NodeFacts struct {
	Attrs    Attrs
	Input    Input
	Tree     TreeFacts
	Children ChildFacts
}

// IsRoot is true for nodes without a parent.
func (f NodeFacts) IsRoot() bool {
	return f.Tree.NodeIndex < 0
}

// group identifies a group of facts.
type group uint8

const (
	attrsGroup group = iota
	inputGroup
	treeGroup
	childrenGroup
)

func (g group) String() string {
	switch g {
	case attrsGroup:
		return "attrs"
	case inputGroup:
		return "input"
	case treeGroup:
		return "tree"
	}
	return "children"
}

// patch is an update for one group of facts. Input patches may leave
// fields untouched (nil).
type patch struct {
	group    group
	attrs    Attrs
	hover    *bool
	focus    *bool
	tree     TreeFacts
	children ChildFacts
}

func hoverPatch(hover bool) patch {
	return patch{group: inputGroup, hover: &hover}
}

func focusPatch(focus bool) patch {
	return patch{group: inputGroup, focus: &focus}
}

// --- Deriving facts from the host ------------------------------------------

func attrsOf(n dom.Node) Attrs {
	return Attrs{
		Type:    strings.ToLower(n.Type()),
		ID:      strings.ToLower(n.ID()),
		Classes: strings.ToLower(strings.Join(strings.Fields(n.Class()), " ")),
	}
}

func attrsPatch(n dom.Node) patch {
	return patch{group: attrsGroup, attrs: attrsOf(n)}
}

func treePatch(n dom.Node) patch {
	t := TreeFacts{NodeIndex: -1, TypeIndex: -1, ListIndex: -1, ListTotal: -1, ListSelected: -1}
	parent := n.Parent()
	if parent == nil {
		return patch{group: treeGroup, tree: t}
	}
	typ := strings.ToLower(n.Type())
	for _, ch := range parent.Children() {
		if ch == n {
			t.NodeIndex = t.NodeTotal
			t.TypeIndex = t.TypeTotal
		}
		t.NodeTotal++
		if strings.ToLower(ch.Type()) == typ {
			t.TypeTotal++
		}
	}
	if list, ok := parent.(dom.List); ok {
		if inx := list.ItemIndex(n); inx >= 0 {
			t.ListIndex = inx
			t.ListTotal = len(list.Items())
			t.ListSelected = list.Selected()
		}
	}
	return patch{group: treeGroup, tree: t}
}

func childrenPatch(n dom.Node) patch {
	return patch{group: childrenGroup, children: ChildFacts{Total: len(n.Children())}}
}

// --- Selector facts --------------------------------------------------------

// selectorFacts derives the facts for selector matching from the facts of
// a node.
func selectorFacts(f NodeFacts) selector.Facts {
	facts := selector.Facts{}
	facts.Add(selector.TypeKind, f.Attrs.Type)
	facts.Add(selector.IDKind, f.Attrs.ID)
	for _, c := range strings.Fields(f.Attrs.Classes) {
		facts.Add(selector.ClassKind, c)
	}
	if f.Input.Hover {
		facts.Add(selector.PseudoKind, "hover")
	}
	if f.Input.Focus {
		facts.Add(selector.PseudoKind, "focus")
	}
	if f.Children.Total == 0 {
		facts.Add(selector.PseudoKind, "empty")
	}
	t := f.Tree
	if f.IsRoot() {
		facts.Add(selector.PseudoKind, "root")
		return facts
	}
	positional(facts, "child", t.NodeIndex, t.NodeTotal)
	positional(facts, "of-type", t.TypeIndex, t.TypeTotal)
	if t.ListIndex >= 0 {
		positional(facts, "in-list", t.ListIndex, t.ListTotal)
		if t.ListSelected == t.ListIndex {
			facts.Add(selector.PseudoKind, "selected")
		}
	}
	return facts
}

// positional adds first-x, last-x, only-x, nth-x and nth-last-x facts.
// nth arguments are 1-based.
func positional(facts selector.Facts, suffix string, index, total int) {
	if index < 0 || total <= 0 {
		return
	}
	facts.Add(selector.PseudoKind, "nth-"+suffix, index+1)
	facts.Add(selector.PseudoKind, "nth-last-"+suffix, total-index)
	if index == 0 {
		facts.Add(selector.PseudoKind, "first-"+suffix)
	}
	if index == total-1 {
		facts.Add(selector.PseudoKind, "last-"+suffix)
	}
	if total == 1 {
		facts.Add(selector.PseudoKind, "only-"+suffix)
	}
}
