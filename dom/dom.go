package dom

// Node represents a host tree node.
type Node interface {
	Parent() Node              // get the parent node, nil for the root
	Children() []Node          // get the ordered list of children-nodes
	PrevSibling() (Node, bool) // get the sibling immediately preceding the node
	Type() string              // type tag, e.g. "box" or "list"
	ID() string                // optional id; empty if not set
	Class() string             // optional space-separated list of classes
}

// List is implemented by nodes acting as list containers.
type List interface {
	Node
	Items() []Node         // list items, a subset of the children
	Selected() int         // index of the selected item, or -1
	ItemIndex(ch Node) int // index of ch within Items(), or -1
}

// Root is the root of a host tree.
type Root interface {
	Node
	// Subscribe registers a handler for an event type. The handler will be
	// called for events targeting the root or any of its descendants.
	Subscribe(EventType, Handler) Subscription
	// Unsubscribe removes a handler. Unknown subscriptions are ignored.
	Unsubscribe(Subscription)
	// Repaint asks the host to draw the tree. Hosts emit EventPreRender
	// before drawing.
	Repaint() error
	// Post queues a task for the host's event loop. Post may be called from
	// any goroutine; the task has to run on the goroutine delivering events.
	Post(task func())
}

// EventType enumerates the host events the engine listens to.
type EventType uint8

// Host events.
const (
	EventAdopt      EventType = iota // a child has been adopted; target is the parent
	EventRemove                      // a child has been removed; target is the parent
	EventReparent                    // target has been attached to a new parent, or detached
	EventMouseOver                   // pointer entered target
	EventMouseOut                    // pointer left target
	EventFocus                       // target gained focus
	EventBlur                        // target lost focus
	EventSelectItem                  // list selection changed; target is the list
	EventPreRender                   // the root is about to be drawn
)

var eventNames = [...]string{
	"adopt", "remove", "reparent", "mouseover", "mouseout",
	"focus", "blur", "select item", "prerender",
}

func (et EventType) String() string {
	if int(et) < len(eventNames) {
		return eventNames[et]
	}
	return "unknown"
}

// Event is a host event.
type Event struct {
	Type    EventType
	Target  Node
	Related Node // adopted or removed child, new parent for reparent (may be nil)
}

// Handler is a function type for event handlers.
type Handler func(Event)

// Subscription is a token returned for every subscribed handler, to be
// used for unsubscribing it.
type Subscription uint64
