package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/dom"
)

// scheduleRepaint asks the scheduler for a repaint, unless one is pending.
func (eng *Engine) scheduleRepaint() {
	if eng.cancel != nil || eng.root == nil {
		return
	}
	root := eng.root
	eng.stats.Scheduled++
	eng.cancel = eng.sched.Schedule(eng.conf.interval, func() {
		if eng.root != root { // detached in the meantime
			return
		}
		eng.cancel = nil
		if err := root.Repaint(); err != nil {
			eng.conf.onError(&cssom.Error{Kind: cssom.RenderError, Text: nodeName(root), Err: err})
		}
	})
}

// render resolves the style of every node of the tree and applies values
// which changed since the last render pass. Accessor errors do not stop the
// render pass; they are collected and returned as a RenderError.
func (eng *Engine) render() error {
	eng.rendering = true
	defer func() {
		eng.rendering = false
	}()
	eng.stats.Renders++
	var errs []error
	eng.renderNode(eng.root, true, &errs)
	if len(errs) == 0 {
		return nil
	}
	return &cssom.Error{Kind: cssom.RenderError, Text: nodeName(eng.root), Err: errors.Join(errs...)}
}

func (eng *Engine) renderNode(n dom.Node, isRoot bool, errs *[]error) {
	st := eng.observe(n)
	for _, ch := range n.Children() {
		eng.renderNode(ch, false, errs)
	}
	if isRoot {
		return
	}
	for _, p := range eng.sheet.Properties(eng.styled(n), eng.conf.defaults) {
		if v, ok := st.applied[p.Name]; ok && v == p.Value {
			continue
		}
		if err := p.Apply(n); err != nil {
			*errs = append(*errs, fmt.Errorf("%s: cannot apply %s: %w", nodeName(n), p.Name, err))
			continue
		}
		st.applied[p.Name] = p.Value
		eng.stats.Applied++
	}
}
