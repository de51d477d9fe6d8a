package widget

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/tree"
)

// Widget is a node of a widget tree.
type Widget struct {
	tree.Node[*Widget] // we build on top of general purpose tree
	kind               string
	id                 string
	class              string
	Content            string // text content
	list               bool   // widget is a list container
	selected           int    // index of the selected item of a list
	Style              Style  // style values, as set by accessors
	Caps               Capabilities
	screen             *Screen // set for the root widget of a screen
}

// Style holds the presentational values of a widget. Zero values mean
// "terminal default".
type Style struct {
	Bold, Underline, Blink, Inverse, Invisible, Transparent bool
	Fg, Bg                                                  string // normalized colors
	Fill                                                    string // background fill character
	Border                                                  Border
	Padding                                                 [4]int // top, right, bottom, left
	Width, Height                                           style.DimenT
	Position                                                [4]style.DimenT // top, right, bottom, left
	Align, VAlign                                           string
	Shadow, Hidden, Shrink                                  bool
}

// Border is the border of a widget.
type Border struct {
	Sides  [4]bool // top, right, bottom, left
	Fg, Bg string
	Fill   string
}

// Capabilities are input capabilities of a widget.
type Capabilities struct {
	Mouse, Keys, Drag bool
}

// Option is an option for creating widgets.
type Option func(*Widget)

// ID sets the id of a widget.
func ID(id string) Option {
	return func(w *Widget) { w.id = id }
}

// Class sets the space-separated classes of a widget.
func Class(class string) Option {
	return func(w *Widget) { w.class = class }
}

// Text sets the content of a widget.
func Text(s string) Option {
	return func(w *Widget) { w.Content = s }
}

// New creates a widget of a given type.
func New(kind string, opts ...Option) *Widget {
	w := &Widget{kind: kind, selected: -1}
	w.Payload = w // Payload will always reference the widget itself
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewList creates a list container. Its children of type "item" are the
// items of the list.
func NewList(opts ...Option) *Widget {
	w := New("list", opts...)
	w.list = true
	return w
}

func (w *Widget) String() string {
	return fmt.Sprintf("%s%s", w.kind, selectorSuffix(w.id, w.class))
}

func selectorSuffix(id, class string) string {
	var sb strings.Builder
	if id != "" {
		sb.WriteString("#" + id)
	}
	for _, c := range strings.Fields(class) {
		sb.WriteString("." + c)
	}
	return sb.String()
}

// node returns the identity of w as seen by clients of package dom.
func (w *Widget) node() dom.Node {
	if w.screen != nil {
		return w.screen
	}
	return w
}

// --- dom.Node --------------------------------------------------------------

// Parent returns the parent widget, or nil.
func (w *Widget) Parent() dom.Node {
	if p := w.Node.Parent(); p != nil {
		return p.Payload.node()
	}
	return nil
}

// Children returns the children of a widget.
func (w *Widget) Children() []dom.Node {
	children := w.Node.Children()
	nodes := make([]dom.Node, len(children))
	for i, ch := range children {
		nodes[i] = ch.Payload.node()
	}
	return nodes
}

// PrevSibling returns the sibling immediately preceding a widget.
func (w *Widget) PrevSibling() (dom.Node, bool) {
	prev, ok := w.Node.PrevSibling()
	if !ok {
		return nil, false
	}
	return prev.Payload.node(), true
}

// Type returns the type of a widget.
func (w *Widget) Type() string {
	return w.kind
}

// ID returns the id of a widget.
func (w *Widget) ID() string {
	return w.id
}

// Class returns the classes of a widget.
func (w *Widget) Class() string {
	return w.class
}

// SetClass replaces the classes of a widget. No event is emitted.
func (w *Widget) SetClass(class string) {
	w.class = class
}

// --- dom.List --------------------------------------------------------------

// Items returns the items of a list, i.e. its children of type "item".
// For other widgets it returns nil.
func (w *Widget) Items() []dom.Node {
	if !w.list {
		return nil
	}
	var items []dom.Node
	for _, ch := range w.Node.Children() {
		if ch.Payload.kind == "item" {
			items = append(items, ch.Payload)
		}
	}
	return items
}

// Selected returns the index of the selected item of a list, or -1.
func (w *Widget) Selected() int {
	if !w.list {
		return -1
	}
	return w.selected
}

// ItemIndex returns the index of ch within the items of a list, or -1.
func (w *Widget) ItemIndex(ch dom.Node) int {
	for i, item := range w.Items() {
		if item == ch {
			return i
		}
	}
	return -1
}

// --- Mutations -------------------------------------------------------------

// Append appends children to a widget. Children which are part of another
// tree are removed from there first.
func (w *Widget) Append(children ...*Widget) *Widget {
	for _, ch := range children {
		w.adopt(-1, ch)
	}
	return w
}

// Insert inserts a child at position i. Children at later positions move
// one position up. Positions out of range append ch.
func (w *Widget) Insert(i int, ch *Widget) *Widget {
	w.adopt(i, ch)
	return w
}

func (w *Widget) adopt(i int, ch *Widget) {
	if ch == nil || ch.screen != nil {
		return
	}
	if p := ch.Node.Parent(); p != nil {
		p.Payload.Remove(ch)
	}
	if i < 0 {
		w.AddChild(&ch.Node)
	} else {
		w.InsertChildAt(i, &ch.Node)
	}
	s := w.screenOf()
	s.emit(dom.EventAdopt, w, ch)
	s.emit(dom.EventReparent, ch, w)
}

// Remove removes a child from a widget.
func (w *Widget) Remove(ch *Widget) {
	if ch == nil || w.IndexOfChild(&ch.Node) < 0 {
		return
	}
	s := w.screenOf()
	ch.Isolate()
	s.emit(dom.EventRemove, w, ch)
	s.emit(dom.EventReparent, ch, nil)
}

// Select selects the item at index i of a list.
func (w *Widget) Select(i int) {
	if !w.list || i == w.selected {
		return
	}
	w.selected = i
	w.screenOf().emit(dom.EventSelectItem, w, nil)
}

// MouseOver signals that the pointer entered a widget.
func (w *Widget) MouseOver() {
	w.screenOf().emit(dom.EventMouseOver, w, nil)
}

// MouseOut signals that the pointer left a widget.
func (w *Widget) MouseOut() {
	w.screenOf().emit(dom.EventMouseOut, w, nil)
}

// Focus moves the focus of the screen to a widget.
func (w *Widget) Focus() {
	s := w.screenOf()
	if s == nil || s.focused == w {
		return
	}
	if old := s.focused; old != nil {
		s.focused = nil
		s.emit(dom.EventBlur, old, nil)
	}
	s.focused = w
	s.emit(dom.EventFocus, w, nil)
}

// Blur removes the focus from a widget.
func (w *Widget) Blur() {
	s := w.screenOf()
	if s == nil || s.focused != w {
		return
	}
	s.focused = nil
	s.emit(dom.EventBlur, w, nil)
}

// screenOf returns the screen a widget belongs to, or nil.
func (w *Widget) screenOf() *Screen {
	return w.Node.Root().Payload.screen
}

// Find returns the first widget in pre-order with a given id, or nil.
func (w *Widget) Find(id string) *Widget {
	var found *Widget
	w.Walk(func(n *tree.Node[*Widget]) bool {
		if found == nil && n.Payload.id == id {
			found = n.Payload
		}
		return found == nil
	})
	return found
}

var _ dom.List = &Widget{}
