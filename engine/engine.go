package engine

import (
	"errors"

	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/cssom/douceuradapter"
	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/style/cascade"
	"github.com/npillmayer/tcss/style/selector"
)

// ErrAlreadyAttached is returned when attaching an engine which is
// already attached to a root.
var ErrAlreadyAttached = errors.New("engine already attached")

// ErrNotAttached is returned when detaching (or querying) an engine which is
// not attached to the given root.
var ErrNotAttached = errors.New("engine not attached")

// ErrForeignNode is returned when querying a node which is not part of the
// tree the engine is attached to.
var ErrForeignNode = errors.New("node not part of the attached tree")

// Engine styles a host tree. An engine is attached to at most one root at
// a time.
type Engine struct {
	conf      config
	root      dom.Root
	sched     Scheduler // scheduler in effect while attached
	sheet     *cascade.Stylesheet
	arena     *arena
	subs      []dom.Subscription
	cancel    func() // cancels a pending repaint, nil if none is pending
	rendering bool   // re-entrancy guard
	stats     Stats
}

// Stats are counters of an engine, reset on every attach.
type Stats struct {
	Commits   int // effective commits
	Scheduled int // scheduled repaints
	Renders   int // render passes
	Applied   int // values handed to accessors
}

// New creates an engine.
func New(opts ...Option) *Engine {
	eng := &Engine{conf: defaultConfig()}
	for _, opt := range opts {
		opt(&eng.conf)
	}
	if eng.conf.registry == nil {
		eng.conf.registry, _ = style.NewRegistry(nil)
	}
	return eng
}

// Attach parses a stylesheet, subscribes to the events of a root, and
// styles the tree once, synchronously.
//
// Errors in the stylesheet's outer syntax, in selectors or in selector
// arguments abort attaching; the engine will not subscribe to any event in
// this case. Errors in declarations do not abort (see Diagnostics).
func (eng *Engine) Attach(root dom.Root, css string) error {
	if err := eng.checkAttachable(root); err != nil {
		return err
	}
	sheet, err := douceuradapter.Parse(css)
	if err != nil {
		return err
	}
	return eng.AttachRules(root, sheet)
}

// AttachRules is like Attach, but for a stylesheet already split into rules.
func (eng *Engine) AttachRules(root dom.Root, sheet cssom.StyleSheet) error {
	if err := eng.checkAttachable(root); err != nil {
		return err
	}
	ss, err := cascade.New(sheet, eng.conf.registry)
	if err != nil {
		return err
	}
	eng.root, eng.sheet = root, ss
	eng.sched = eng.scheduler(root)
	eng.arena = newArena()
	eng.stats = Stats{}
	for _, et := range handledEvents {
		eng.subs = append(eng.subs, root.Subscribe(et, eng.handle))
	}
	tracer().Debugf("attached to %s with %d rules", root.Type(), len(ss.Rules()))
	if err := eng.render(); err != nil {
		eng.conf.onError(err)
	}
	return nil
}

// scheduler returns the scheduler for repaints of root. Timer-based
// scheduling posts tasks to the event loop of root, unless a client has
// configured a Post function.
func (eng *Engine) scheduler(root dom.Root) Scheduler {
	switch s := eng.conf.scheduler.(type) {
	case nil:
		return TimerScheduler{Post: root.Post}
	case TimerScheduler:
		if s.Post == nil {
			s.Post = root.Post
		}
		return s
	}
	return eng.conf.scheduler
}

func (eng *Engine) checkAttachable(root dom.Root) error {
	if root == nil {
		return &cssom.Error{Kind: cssom.AttachError, Text: "<nil>", Err: errors.New("root is nil")}
	}
	if eng.root != nil {
		return &cssom.Error{Kind: cssom.AttachError, Text: root.Type(), Err: ErrAlreadyAttached}
	}
	return nil
}

// Detach unsubscribes from all events of root, cancels a pending repaint
// and drops all cached state.
func (eng *Engine) Detach(root dom.Root) error {
	if eng.root == nil || root == nil || eng.root != root {
		return &cssom.Error{Kind: cssom.AttachError, Text: nodeName(root), Err: ErrNotAttached}
	}
	for _, sub := range eng.subs {
		root.Unsubscribe(sub)
	}
	eng.subs = nil
	if eng.cancel != nil {
		eng.cancel()
		eng.cancel = nil
	}
	eng.root, eng.sheet, eng.arena, eng.sched = nil, nil, nil, nil
	tracer().Debugf("detached from %s", root.Type())
	return nil
}

// Attached returns the root the engine is attached to, if any.
func (eng *Engine) Attached() (dom.Root, bool) {
	return eng.root, eng.root != nil
}

// Resolve returns the resolved properties of a node, heaviest first.
// Resolving is a query: it neither propagates changes nor schedules a
// repaint. Nodes outside the attached tree are rejected.
func (eng *Engine) Resolve(n dom.Node) ([]*style.Property, error) {
	if eng.root == nil {
		return nil, &cssom.Error{Kind: cssom.AttachError, Text: nodeName(n), Err: ErrNotAttached}
	}
	if !eng.contains(n) {
		return nil, &cssom.Error{Kind: cssom.AttachError, Text: nodeName(n), Err: ErrForeignNode}
	}
	rendering := eng.rendering
	eng.rendering = true // observe quietly, as during render passes
	defer func() {
		eng.rendering = rendering
	}()
	return eng.sheet.Properties(eng.styled(n), eng.conf.defaults), nil
}

// contains is true if n is part of the tree of the attached root.
func (eng *Engine) contains(n dom.Node) bool {
	if n == nil {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		n = p
	}
	return n == dom.Node(eng.root)
}

// Facts returns the facts the engine holds for a node.
func (eng *Engine) Facts(n dom.Node) (NodeFacts, bool) {
	if eng.arena == nil {
		return NodeFacts{}, false
	}
	st, ok := eng.arena.lookup(n)
	if !ok {
		return NodeFacts{}, false
	}
	return st.facts, true
}

// Diagnostics returns errors for all declarations dropped from the
// stylesheet.
func (eng *Engine) Diagnostics() []error {
	if eng.sheet == nil {
		return nil
	}
	return eng.sheet.Diagnostics()
}

// Pending is true if a repaint is scheduled.
func (eng *Engine) Pending() bool {
	return eng.cancel != nil
}

// CacheSize returns the number of nodes the engine holds state for.
func (eng *Engine) CacheSize() int {
	if eng.arena == nil {
		return 0
	}
	return eng.arena.size()
}

// Stats returns the counters of an engine.
func (eng *Engine) Stats() Stats {
	return eng.stats
}

// --- State -----------------------------------------------------------------

// commit merges a patch into the state of n. The attrs group is refreshed
// from the host first. Effective commits outside of render passes are
// propagated to the children of n and schedule a repaint.
func (eng *Engine) commit(n dom.Node, p patch) bool {
	st, created := eng.arena.acquire(n)
	effective := created
	if created {
		st.merge(treePatch(n))
		st.merge(childrenPatch(n))
	}
	if st.merge(attrsPatch(n)) {
		effective = true
	}
	if p.group != attrsGroup && st.merge(p) {
		effective = true
	}
	if !effective {
		return false
	}
	eng.stats.Commits++
	tracer().Debugf("commit %s on %s", p.group, nodeName(n))
	if !eng.rendering {
		eng.propagate(n)
		eng.scheduleRepaint()
	}
	return true
}

// propagate commits a tree patch to every child of n.
func (eng *Engine) propagate(n dom.Node) {
	for _, ch := range n.Children() {
		eng.commit(ch, treePatch(ch))
	}
}

// observe refreshes all groups of facts of n from the host.
func (eng *Engine) observe(n dom.Node) *nodeState {
	eng.commit(n, treePatch(n))
	eng.commit(n, childrenPatch(n))
	st, _ := eng.arena.lookup(n)
	return st
}

// evict releases the state of n and all of its descendants.
func (eng *Engine) evict(n dom.Node) {
	if eng.arena.release(n) {
		tracer().Debugf("evicting %s", nodeName(n))
	}
	for _, ch := range n.Children() {
		eng.evict(ch)
	}
}

// styled wraps a host node for selector matching.
func (eng *Engine) styled(n dom.Node) selector.Node {
	return styledNode{eng: eng, node: n}
}

// styledNode is the view of a host node for selector matching.
type styledNode struct {
	eng  *Engine
	node dom.Node
}

func (sn styledNode) SelectorFacts() selector.Facts {
	st, ok := sn.eng.arena.lookup(sn.node)
	if !ok {
		st = sn.eng.observe(sn.node)
	}
	return st.selectorFacts()
}

func (sn styledNode) ParentNode() (selector.Node, bool) {
	p := sn.node.Parent()
	if p == nil {
		return nil, false
	}
	return styledNode{eng: sn.eng, node: p}, true
}

func (sn styledNode) PrevSibling() (selector.Node, bool) {
	prev, ok := sn.node.PrevSibling()
	if !ok || prev == nil {
		return nil, false
	}
	return styledNode{eng: sn.eng, node: prev}, true
}

func nodeName(n dom.Node) string {
	if n == nil {
		return "<nil>"
	}
	s := n.Type()
	if id := n.ID(); id != "" {
		s += "#" + id
	}
	return s
}
