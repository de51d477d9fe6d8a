package widget

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorsCoverAllLonghands(t *testing.T) {
	acc := Accessors()
	for _, name := range style.Longhands() {
		assert.Contains(t, acc, name)
	}
	_, err := Registry()
	require.NoError(t, err)
}

func TestAccessorsSetAndReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.widget")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	acc := Accessors()
	w := New("box")
	require.NoError(t, acc["bold"].Set(w, style.Bool(true)))
	require.NoError(t, acc["padding-left"].Set(w, style.Number(3)))
	require.NoError(t, acc["left"].Set(w, style.Dimension(style.Percentage(50, -3))))
	require.NoError(t, acc["border-fill"].Set(w, style.Char("#")))
	require.NoError(t, acc["draggable"].Set(w, style.Bool(true)))
	assert.True(t, w.Style.Bold)
	assert.Equal(t, 3, w.Style.Padding[3])
	assert.Equal(t, 37, w.Style.Position[3].Resolve(80))
	assert.Equal(t, "#", w.Style.Border.Fill)
	assert.True(t, w.Caps.Drag)
	assert.True(t, w.Caps.Mouse, "draggable widgets handle the mouse")
	v, ok := acc["padding-left"].Get(w)
	assert.True(t, ok)
	assert.Equal(t, style.Number(3), v)
	require.NoError(t, acc["bold"].Set(w, style.Unset))
	assert.False(t, w.Style.Bold)
	assert.Error(t, acc["bold"].Set(w, style.Number(1)))
}

func TestEventsAreEmittedToScreenSubscribers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.widget")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := NewScreen(40, 10)
	var events []dom.Event
	record := func(ev dom.Event) { events = append(events, ev) }
	for _, et := range []dom.EventType{dom.EventAdopt, dom.EventRemove, dom.EventReparent, dom.EventFocus, dom.EventBlur} {
		s.Subscribe(et, record)
	}
	box := New("box")
	s.Append(box)
	require.Len(t, events, 2)
	assert.Equal(t, dom.EventAdopt, events[0].Type)
	assert.Equal(t, dom.Node(s), events[0].Target, "events for the root target the screen")
	assert.Equal(t, dom.Node(box), events[0].Related)
	assert.Equal(t, dom.EventReparent, events[1].Type)
	assert.Equal(t, dom.Node(s), box.Parent())
	events = nil
	box.Focus()
	box.Blur()
	require.Len(t, events, 2)
	assert.Equal(t, dom.EventBlur, events[1].Type)
	events = nil
	s.Remove(box)
	require.Len(t, events, 2)
	assert.Nil(t, events[1].Related)
	assert.Nil(t, box.Parent())
}

func TestUnsubscribe(t *testing.T) {
	s := NewScreen(40, 10)
	calls := 0
	sub := s.Subscribe(dom.EventMouseOver, func(dom.Event) { calls++ })
	box := New("box")
	s.Append(box)
	box.MouseOver()
	s.Unsubscribe(sub)
	box.MouseOver()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Subscribers())
}

func TestListItems(t *testing.T) {
	list := NewList()
	a, sep, b := New("item"), New("separator"), New("item")
	list.Append(a, sep, b)
	assert.Len(t, list.Items(), 2)
	assert.Equal(t, 1, list.ItemIndex(b))
	assert.Equal(t, -1, list.ItemIndex(sep))
	assert.Equal(t, -1, list.Selected())
	list.Select(1)
	assert.Equal(t, 1, list.Selected())
	box := New("box")
	assert.Nil(t, box.Items())
	assert.Equal(t, -1, box.Selected())
}

func TestRenderContent(t *testing.T) {
	s := NewScreen(40, 10)
	hello := New("text", Text("hello"))
	hidden := New("text", Text("secret"))
	hidden.Style.Hidden = true
	s.Append(New("box").Append(hello, hidden))
	frame := s.Render()
	assert.True(t, strings.Contains(frame, "hello"))
	assert.False(t, strings.Contains(frame, "secret"))
	assert.Equal(t, "box", hello.Parent().Type())
}

func TestFind(t *testing.T) {
	s := NewScreen(40, 10)
	target := New("text", ID("t"))
	s.Append(New("box").Append(New("box"), target))
	assert.Same(t, target, s.Find("t"))
	assert.Nil(t, s.Find("missing"))
}

func TestInsertAndPrevSibling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.widget")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	s := NewScreen(40, 10)
	a, b, c := New("text", ID("a")), New("text", ID("b")), New("text", ID("c"))
	s.Append(a, c)
	var adopted []dom.Node
	s.Subscribe(dom.EventAdopt, func(ev dom.Event) {
		adopted = append(adopted, ev.Related)
	})
	s.Insert(1, b)
	require.Len(t, adopted, 1)
	assert.Same(t, b, adopted[0])
	assert.Equal(t, []dom.Node{a, b, c}, s.Children())
	prev, ok := c.PrevSibling()
	require.True(t, ok)
	assert.Same(t, b, prev)
	_, ok = a.PrevSibling()
	assert.False(t, ok)
	_, ok = s.PrevSibling()
	assert.False(t, ok, "the screen has no siblings")
	s.Remove(b)
	prev, _ = c.PrevSibling()
	assert.Same(t, a, prev)
	s.Remove(b) // not a child any more
	assert.Len(t, s.Children(), 2)
}

func TestPostRunsTasksOnDispatch(t *testing.T) {
	s := NewScreen(40, 10)
	done := make(chan struct{})
	go func() {
		s.Post(func() { s.Content = "posted" })
		close(done)
	}()
	<-done
	select {
	case <-s.Wake():
	default:
		t.Fatal("expected a wake-up after posting")
	}
	assert.Equal(t, "", s.Content, "tasks must wait for Dispatch")
	assert.Equal(t, 1, s.Dispatch())
	assert.Equal(t, "posted", s.Content)
	assert.Equal(t, 0, s.Dispatch())
}

func TestRenderPosition(t *testing.T) {
	for _, c := range []struct {
		pos    [4]style.DimenT
		prefix string
	}{
		{[4]style.DimenT{3: style.JustDimen(3)}, "   ab"},
		{[4]style.DimenT{3: style.Center()}, "    ab"},
		{[4]style.DimenT{3: style.Percentage(50, -1)}, "    ab"},
		{[4]style.DimenT{1: style.JustDimen(2)}, "      ab"},
		{[4]style.DimenT{3: style.JustDimen(30)}, "        ab"},
		{[4]style.DimenT{}, "ab"},
	} {
		s := NewScreen(10, 4)
		box := New("box", Text("ab"))
		box.Style.Position = c.pos
		s.Append(box)
		frame := s.Render()
		assert.True(t, strings.HasPrefix(frame, c.prefix+"\n") || frame == c.prefix,
			"expected frame to start with %q, is %q", c.prefix, frame)
	}
}
