package tree

import (
	"testing"
)

func newNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func TestInsertAndIsolate(t *testing.T) {
	root := newNode("root")
	a, b, c := newNode("a"), newNode("b"), newNode("c")
	root.AddChild(a).AddChild(c).InsertChildAt(1, b)
	if root.ChildCount() != 3 {
		t.Fatalf("expected 3 children, have %d", root.ChildCount())
	}
	if root.IndexOfChild(b) != 1 || b.Parent() != root {
		t.Errorf("expected b at position 1")
	}
	b.Isolate()
	if root.ChildCount() != 2 || root.IndexOfChild(c) != 1 {
		t.Errorf("expected c to move up after removing b")
	}
	if b.Parent() != nil {
		t.Errorf("expected isolated node to have no parent")
	}
}

func TestAddChildMovesNode(t *testing.T) {
	r1, r2 := newNode(1), newNode(2)
	ch := newNode(3)
	r1.AddChild(ch)
	r2.AddChild(ch)
	if r1.ChildCount() != 0 || r2.ChildCount() != 1 || ch.Parent() != r2 {
		t.Errorf("expected child to move from r1 to r2")
	}
	if ch.Root() != r2 {
		t.Errorf("expected root of child to be r2")
	}
}

func TestPrevSibling(t *testing.T) {
	root := newNode("root")
	a, b := newNode("a"), newNode("b")
	root.AddChild(a).AddChild(b)
	if p, ok := b.PrevSibling(); !ok || p != a {
		t.Errorf("expected a to precede b")
	}
	if _, ok := a.PrevSibling(); ok {
		t.Errorf("expected a to have no preceding sibling")
	}
	if _, ok := root.PrevSibling(); ok {
		t.Errorf("expected root to have no siblings")
	}
}

func TestWalkPreOrder(t *testing.T) {
	root := newNode("r")
	a := newNode("a")
	root.AddChild(a.AddChild(newNode("a1"))).AddChild(newNode("b"))
	var seen []string
	root.Walk(func(n *Node[string]) bool {
		seen = append(seen, n.Payload)
		return n.Payload != "a"
	})
	if len(seen) != 3 || seen[0] != "r" || seen[1] != "a" || seen[2] != "b" {
		t.Errorf("unexpected walk order %v", seen)
	}
}
