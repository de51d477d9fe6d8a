package engine

import (
	"github.com/npillmayer/tcss/dom"
)

// handledEvents are the host events an engine subscribes to.
var handledEvents = []dom.EventType{
	dom.EventAdopt,
	dom.EventRemove,
	dom.EventReparent,
	dom.EventMouseOver,
	dom.EventMouseOut,
	dom.EventFocus,
	dom.EventBlur,
	dom.EventSelectItem,
	dom.EventPreRender,
}

// handle translates a host event into patches.
func (eng *Engine) handle(ev dom.Event) {
	if eng.root == nil || ev.Target == nil {
		return
	}
	tracer().Debugf("event %s on %s", ev.Type, nodeName(ev.Target))
	switch ev.Type {
	case dom.EventAdopt:
		eng.commit(ev.Target, childrenPatch(ev.Target))
		if ev.Related != nil {
			eng.commit(ev.Related, treePatch(ev.Related))
		}
	case dom.EventRemove:
		if ev.Related != nil {
			eng.evict(ev.Related)
		}
		eng.commit(ev.Target, childrenPatch(ev.Target))
	case dom.EventReparent:
		if ev.Related == nil {
			eng.evict(ev.Target)
			return
		}
		eng.commit(ev.Target, treePatch(ev.Target))
	case dom.EventMouseOver:
		eng.commit(ev.Target, hoverPatch(true))
	case dom.EventMouseOut:
		eng.commit(ev.Target, hoverPatch(false))
	case dom.EventFocus:
		eng.commit(ev.Target, focusPatch(true))
	case dom.EventBlur:
		eng.commit(ev.Target, focusPatch(false))
	case dom.EventSelectItem:
		eng.commit(ev.Target, treePatch(ev.Target))
		if !eng.rendering {
			eng.propagate(ev.Target)
		}
	case dom.EventPreRender:
		if eng.rendering {
			return
		}
		if err := eng.render(); err != nil {
			eng.conf.onError(err)
		}
	}
}
