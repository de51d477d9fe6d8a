package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tcss/cssom"
	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
	"github.com/npillmayer/tcss/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...Option) (*Engine, *ManualScheduler) {
	t.Helper()
	reg, err := widget.Registry()
	require.NoError(t, err)
	sched := NewManualScheduler()
	opts = append([]Option{WithScheduler(sched), WithRegistry(reg)}, opts...)
	return New(opts...), sched
}

func TestAttachStylesSynchronously(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box", widget.Class("a"))
	screen.Append(box)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `box.a { bold: true; padding: 1 2; }`))
	assert.True(t, box.Style.Bold)
	assert.Equal(t, [4]int{1, 2, 1, 2}, box.Style.Padding)
	assert.Equal(t, "left", box.Style.Align, "expected default to be applied")
	assert.Equal(t, 0, sched.Pending(), "attach must not schedule a repaint")
	assert.Equal(t, len(handledEvents), screen.Subscribers())
}

func TestAttachTwiceFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	eng, _ := setup(t)
	require.NoError(t, eng.Attach(screen, `box { bold: true; }`))
	err := eng.Attach(screen, `box { bold: true; }`)
	assert.True(t, errors.Is(err, ErrAlreadyAttached))
	assert.Equal(t, cssom.AttachError, cssom.KindOf(err))
	require.NoError(t, eng.Detach(screen))
	err = eng.Detach(screen)
	assert.True(t, errors.Is(err, ErrNotAttached))
	assert.Equal(t, 0, screen.Subscribers())
	_, err = eng.Resolve(screen)
	assert.True(t, errors.Is(err, ErrNotAttached))
}

func TestAttachFailsOnSelectorErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	eng, _ := setup(t)
	rules := cssom.RuleList{
		{Selectors: []string{"box"}, Declarations: []cssom.Declaration{{Property: "bold", Value: "true"}}},
		{Selectors: []string{"box > > item"}, Declarations: []cssom.Declaration{{Property: "bold", Value: "true"}}},
	}
	err := eng.AttachRules(screen, &rules)
	assert.Equal(t, cssom.SelectorSyntaxError, cssom.KindOf(err))
	assert.Equal(t, 0, screen.Subscribers(), "no subscription may be left after a failed attach")
	_, attached := eng.Attached()
	assert.False(t, attached)
	// the engine is still usable
	require.NoError(t, eng.Attach(screen, `box { bold: true; }`))
}

func TestPropertyErrorsDoNotAbortAttach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, _ := setup(t)
	require.NoError(t, eng.Attach(screen, `box { bold: perhaps; underline: true; colour: red; }`))
	assert.False(t, box.Style.Bold)
	assert.True(t, box.Style.Underline)
	assert.Len(t, eng.Diagnostics(), 2)
}

func TestHoverSchedulesRepaint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `box:hover { color: red; }`))
	assert.Equal(t, "", box.Style.Fg)
	box.MouseOver()
	assert.True(t, eng.Pending())
	assert.Equal(t, "", box.Style.Fg, "values are applied on repaint only")
	assert.Equal(t, 1, sched.Flush())
	assert.Equal(t, "red", box.Style.Fg)
	assert.Equal(t, 1, screen.Paints())
	box.MouseOut()
	sched.Flush()
	assert.Equal(t, "", box.Style.Fg)
}

func TestRepaintsAreCoalesced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	a, b := widget.New("box", widget.ID("a")), widget.New("box", widget.ID("b"))
	screen.Append(a, b)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `box:hover { bold: true; } box:focus { underline: true; }`))
	a.MouseOver()
	b.MouseOver()
	b.Focus()
	assert.Equal(t, 1, sched.Pending())
	assert.Equal(t, 1, eng.Stats().Scheduled)
	sched.Flush()
	assert.True(t, a.Style.Bold)
	assert.True(t, b.Style.Bold)
	assert.True(t, b.Style.Underline)
	a.Focus() // blurs b
	sched.Flush()
	assert.True(t, a.Style.Underline)
	assert.False(t, b.Style.Underline)
}

func TestDetachCancelsPendingRepaint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	applies := 0
	acc := widget.Accessors()
	acc["color"] = style.AccessorFuncs{SetFunc: func(dom.Node, style.Value) error {
		applies++
		return nil
	}}
	reg, err := style.NewRegistry(acc)
	require.NoError(t, err)
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, sched := setup(t, WithRegistry(reg))
	require.NoError(t, eng.Attach(screen, `box:hover { color: red; }`))
	before := applies
	box.MouseOver()
	require.True(t, eng.Pending())
	require.NoError(t, eng.Detach(screen))
	assert.False(t, eng.Pending())
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, 0, sched.Flush())
	box.MouseOut()
	box.MouseOver()
	assert.Equal(t, before, applies, "no applies may occur after detach")
	assert.Equal(t, 0, eng.CacheSize())
}

func TestListSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	list := widget.NewList()
	items := []*widget.Widget{widget.New("item"), widget.New("item"), widget.New("item")}
	list.Append(items...)
	screen.Append(list)
	eng, sched := setup(t)
	rules := cssom.RuleList{
		{Selectors: []string{"item:selected"}, Declarations: []cssom.Declaration{
			{Property: "inverse", Value: "true", Position: cssom.Position{Line: 1, Column: 1}},
		}},
		{Selectors: []string{"list > item:nth-in-list(odd)"}, Declarations: []cssom.Declaration{
			{Property: "background-color", Value: "blue", Position: cssom.Position{Line: 2, Column: 1}},
		}},
	}
	require.NoError(t, eng.AttachRules(screen, &rules))
	assert.Equal(t, "blue", items[0].Style.Bg)
	assert.Equal(t, "", items[1].Style.Bg)
	assert.Equal(t, "blue", items[2].Style.Bg)
	list.Select(1)
	sched.Flush()
	assert.False(t, items[0].Style.Inverse)
	assert.True(t, items[1].Style.Inverse)
	assert.False(t, items[2].Style.Inverse)
	list.Select(2)
	sched.Flush()
	assert.False(t, items[1].Style.Inverse)
	assert.True(t, items[2].Style.Inverse)
}

func TestStructuralChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	a, b := widget.New("text"), widget.New("text")
	box.Append(a, b)
	screen.Append(box)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `text:last-child { underline: true; } box:empty { hidden: true; }`))
	assert.False(t, a.Style.Underline)
	assert.True(t, b.Style.Underline)
	c := widget.New("text")
	box.Append(c)
	assert.Equal(t, 1, sched.Flush())
	assert.False(t, b.Style.Underline)
	assert.True(t, c.Style.Underline)
	cached := eng.CacheSize()
	box.Remove(c)
	assert.Equal(t, cached-1, eng.CacheSize(), "removed nodes must be evicted")
	sched.Flush()
	assert.True(t, b.Style.Underline)
	box.Remove(a)
	box.Remove(b)
	sched.Flush()
	assert.True(t, box.Style.Hidden)
}

func TestChildVersusDescendant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	inner := widget.New("text")
	direct := widget.New("text")
	outer := widget.New("box", widget.Class("Outer"))
	outer.Append(widget.New("panel").Append(inner), direct)
	screen.Append(outer)
	eng, _ := setup(t)
	require.NoError(t, eng.Attach(screen, `.outer > text { bold: true; } .OUTER text { underline: true; }`))
	assert.False(t, inner.Style.Bold)
	assert.True(t, direct.Style.Bold)
	assert.True(t, inner.Style.Underline)
	assert.True(t, direct.Style.Underline)
}

func TestRenderErrorsAreReported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	acc := widget.Accessors()
	acc["bold"] = style.AccessorFuncs{SetFunc: func(dom.Node, style.Value) error {
		return errors.New("no bold font")
	}}
	reg, err := style.NewRegistry(acc)
	require.NoError(t, err)
	var reported []error
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, sched := setup(t, WithRegistry(reg), WithErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	require.NoError(t, eng.Attach(screen, `box { bold: true; color: green; } box:hover { color: red; }`))
	require.Len(t, reported, 1)
	assert.Equal(t, cssom.RenderError, cssom.KindOf(reported[0]))
	assert.Equal(t, "green", box.Style.Fg)
	box.MouseOver()
	sched.Flush()
	assert.Len(t, reported, 2)
	assert.Equal(t, "red", box.Style.Fg, "render errors must not stop repaints")
}

func TestUnchangedValuesAreNotReapplied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, _ := setup(t, WithDefaults(false))
	require.NoError(t, eng.Attach(screen, `box { bold: true; } box:hover { underline: true; }`))
	assert.Equal(t, 1, eng.Stats().Applied)
	require.NoError(t, screen.Repaint())
	assert.Equal(t, 2, eng.Stats().Renders)
	assert.Equal(t, 1, eng.Stats().Applied)
	box.MouseOver()
	require.NoError(t, screen.Repaint())
	assert.Equal(t, 2, eng.Stats().Applied)
}

func TestResolveAndFacts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box", widget.ID("X"), widget.Class("y"))
	screen.Append(widget.New("box"), box)
	eng, _ := setup(t)
	require.NoError(t, eng.Attach(screen, `#x { top: 1; } .y { top: 2; }`))
	props, err := eng.Resolve(box)
	require.NoError(t, err)
	for _, p := range props {
		if p.Name == "top" {
			n, _ := p.Value.Int()
			assert.Equal(t, 1, n)
		}
	}
	facts, ok := eng.Facts(box)
	require.True(t, ok)
	assert.Equal(t, Attrs{Type: "box", ID: "x", Classes: "y"}, facts.Attrs)
	assert.Equal(t, 1, facts.Tree.NodeIndex)
	assert.Equal(t, 2, facts.Tree.TypeTotal)
	rootFacts, _ := eng.Facts(screen)
	assert.True(t, rootFacts.IsRoot())
}

func TestResolveIsAQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `box { bold: true; }`))
	size := eng.CacheSize()
	orphan := widget.New("box")
	orphan.Append(widget.New("text"))
	_, err := eng.Resolve(orphan)
	assert.True(t, errors.Is(err, ErrForeignNode))
	assert.Equal(t, cssom.AttachError, cssom.KindOf(err))
	assert.Equal(t, size, eng.CacheSize(), "foreign nodes must not be cached")
	props, err := eng.Resolve(box)
	require.NoError(t, err)
	assert.NotEmpty(t, props)
	assert.False(t, eng.Pending())
	assert.Equal(t, 0, sched.Pending())
}

func TestInsertInvalidatesFollowingSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	a, b := widget.New("text"), widget.New("text")
	box.Append(a, b)
	screen.Append(box)
	eng, sched := setup(t)
	require.NoError(t, eng.Attach(screen, `text:first-child { bold: true; } text + text { underline: true; }`))
	assert.True(t, a.Style.Bold)
	assert.False(t, a.Style.Underline)
	assert.True(t, b.Style.Underline)
	c := widget.New("text")
	box.Insert(0, c)
	assert.Equal(t, 1, sched.Flush())
	assert.True(t, c.Style.Bold)
	assert.False(t, c.Style.Underline)
	assert.False(t, a.Style.Bold, "a is no longer the first child")
	assert.True(t, a.Style.Underline, "a follows c now")
	assert.True(t, b.Style.Underline)
	facts, _ := eng.Facts(b)
	assert.Equal(t, 2, facts.Tree.NodeIndex)
}

func TestEventsDuringRenderAreNotScheduled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box, other := widget.New("box"), widget.New("text", widget.ID("other"))
	screen.Append(box, other)
	acc := widget.Accessors()
	bold := acc["bold"]
	acc["bold"] = style.AccessorFuncs{
		GetFunc: bold.Get,
		SetFunc: func(n dom.Node, v style.Value) error {
			other.MouseOver()
			if err := screen.Repaint(); err != nil { // emits EventPreRender
				return err
			}
			return bold.Set(n, v)
		},
	}
	reg, err := style.NewRegistry(acc)
	require.NoError(t, err)
	eng, sched := setup(t, WithRegistry(reg))
	require.NoError(t, eng.Attach(screen, `box { bold: true; }`))
	assert.True(t, box.Style.Bold)
	assert.Equal(t, 1, eng.Stats().Renders, "pre-render events during a render pass must be ignored")
	assert.False(t, eng.Pending())
	assert.Equal(t, 0, sched.Pending())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, sched.Flush())
	}
	facts, ok := eng.Facts(other)
	require.True(t, ok)
	assert.True(t, facts.Input.Hover, "facts are recorded during render passes")
}

// Run with -race: repaints are posted to the screen's event loop, so
// timers never touch the widget tree.
func TestDefaultSchedulerRepaintsOnEventLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.engine")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	screen := widget.NewScreen(80, 24)
	box := widget.New("box")
	screen.Append(box)
	reg, err := widget.Registry()
	require.NoError(t, err)
	eng := New(WithRegistry(reg), WithInterval(time.Millisecond))
	require.NoError(t, eng.Attach(screen, `box:hover { bold: true; }`))
	defer eng.Detach(screen)
	for i := 0; i < 20; i++ {
		box.MouseOver()
		time.Sleep(time.Millisecond)
		screen.Dispatch()
		box.MouseOut()
	}
	timeout := time.After(5 * time.Second)
	for eng.Pending() {
		select {
		case <-screen.Wake():
			screen.Dispatch()
		case <-timeout:
			t.Fatal("pending repaint has not been posted")
		}
	}
	assert.Greater(t, screen.Paints(), 0)
	assert.False(t, box.Style.Bold)
}
