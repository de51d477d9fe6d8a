package engine

import (
	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/style/selector"
)

// NodeID is a stable id the engine assigns to a host node on first
// observation. IDs of released nodes may be re-used.
type NodeID uint32

// nodeState is the per-node state of the engine.
type nodeState struct {
	id      NodeID
	node    dom.Node
	facts   NodeFacts
	version uint64 // incremented on every effective change

	selFacts        selector.Facts // memoized selector facts
	selFactsVersion uint64

	applied map[string]style.Value // last value handed to an accessor
}

func newNodeState(id NodeID, n dom.Node) *nodeState {
	return &nodeState{id: id, node: n, applied: make(map[string]style.Value)}
}

// merge merges a patch into the state and reports whether anything changed.
func (st *nodeState) merge(p patch) bool {
	f := st.facts
	switch p.group {
	case attrsGroup:
		f.Attrs = p.attrs
	case inputGroup:
		if p.hover != nil {
			f.Input.Hover = *p.hover
		}
		if p.focus != nil {
			f.Input.Focus = *p.focus
		}
	case treeGroup:
		f.Tree = p.tree
	case childrenGroup:
		f.Children = p.children
	}
	if f == st.facts {
		return false
	}
	st.facts = f
	st.version++
	return true
}

// selectorFacts returns the selector facts of a node, re-deriving them if
// the node has changed since the last call.
func (st *nodeState) selectorFacts() selector.Facts {
	if st.selFacts == nil || st.selFactsVersion != st.version {
		st.selFacts = selectorFacts(st.facts)
		st.selFactsVersion = st.version
	}
	return st.selFacts
}

// --- Arena -----------------------------------------------------------------

// arena holds the states of all nodes known to an engine.
type arena struct {
	ids    map[dom.Node]NodeID
	states []*nodeState // indexed by NodeID
	free   []NodeID
}

func newArena() *arena {
	return &arena{ids: make(map[dom.Node]NodeID)}
}

// lookup finds the state of a known node.
func (a *arena) lookup(n dom.Node) (*nodeState, bool) {
	id, ok := a.ids[n]
	if !ok {
		return nil, false
	}
	return a.states[id], true
}

// acquire returns the state of n, creating one if n is unknown. created
// is true for new states.
func (a *arena) acquire(n dom.Node) (st *nodeState, created bool) {
	if st, ok := a.lookup(n); ok {
		return st, false
	}
	var id NodeID
	if k := len(a.free); k > 0 {
		id = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		id = NodeID(len(a.states))
		a.states = append(a.states, nil)
	}
	st = newNodeState(id, n)
	a.states[id] = st
	a.ids[n] = id
	return st, true
}

// release drops the state of n.
func (a *arena) release(n dom.Node) bool {
	id, ok := a.ids[n]
	if !ok {
		return false
	}
	delete(a.ids, n)
	a.states[id] = nil
	a.free = append(a.free, id)
	return true
}

// size returns the number of nodes with state.
func (a *arena) size() int {
	return len(a.ids)
}
