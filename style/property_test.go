package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tcss/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, prop, value string) ([]*Property, []error) {
	t.Helper()
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	return reg.Parse(cssom.Declaration{Property: prop, Value: value, Position: cssom.Position{Line: 1, Column: 1}})
}

func byName(props []*Property) map[string]*Property {
	m := make(map[string]*Property, len(props))
	for _, p := range props {
		m[p.Name] = p
	}
	return m
}

func TestParseBackgroundShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tcss.style")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	props, errs := parse(t, "background", "# red")
	require.Empty(t, errs)
	require.Len(t, props, 2)
	m := byName(props)
	assert.Equal(t, Char("#"), m["background-fill"].Value)
	assert.Equal(t, Color("red"), m["background-color"].Value)
}

func TestParseBackgroundColorOnly(t *testing.T) {
	props, errs := parse(t, "background", "blue")
	require.Empty(t, errs)
	require.Len(t, props, 1)
	assert.Equal(t, "background-color", props[0].Name)
}

func TestParseBorderKeepsMatchedPairs(t *testing.T) {
	props, errs := parse(t, "border", "* black white")
	require.Empty(t, errs)
	m := byName(props)
	assert.Equal(t, Char("*"), m["border-fill"].Value)
	assert.Equal(t, Color("black"), m["border-background"].Value)
	assert.Equal(t, Color("white"), m["border-color"].Value)
	//
	props, errs = parse(t, "border", "red #")
	require.Empty(t, errs)
	require.Len(t, props, 1)
	assert.Equal(t, "border-background", props[0].Name)
	assert.Equal(t, Color("red"), props[0].Value)
	//
	props, errs = parse(t, "border", "x")
	require.Empty(t, errs)
	require.Len(t, props, 1)
	assert.Equal(t, "border-fill", props[0].Name)
}

func TestParseBorderFailures(t *testing.T) {
	for _, value := range []string{
		"x y",        // y is no color for required border-background
		"red # blue", // blue arrives after all components are used up
		"red-ish",    // nothing matches
	} {
		props, errs := parse(t, "border", value)
		assert.Empty(t, props, value)
		require.Len(t, errs, 1, value)
		assert.Equal(t, cssom.PropertyError, cssom.KindOf(errs[0]), value)
	}
}

func TestParsePaddingAllocation(t *testing.T) {
	for _, c := range []struct {
		value                    string
		top, right, bottom, left int
	}{
		{"1", 1, 1, 1, 1},
		{"2 5", 2, 5, 2, 5},
		{"1 2 3", 1, 2, 3, 2},
		{"1 2 3 4", 1, 2, 3, 4},
		{"1 2 3 4 5", 1, 2, 3, 4},
	} {
		props, errs := parse(t, "padding", c.value)
		require.Empty(t, errs, c.value)
		m := byName(props)
		want := map[string]int{"padding-top": c.top, "padding-right": c.right,
			"padding-bottom": c.bottom, "padding-left": c.left}
		for name, n := range want {
			assert.Equal(t, Number(n), m[name].Value, "padding: %s -> %s", c.value, name)
		}
	}
}

func TestParsePositionShorthand(t *testing.T) {
	props, errs := parse(t, "position", "1 50%-3")
	require.Empty(t, errs)
	m := byName(props)
	top, ok := m["top"].Value.Int()
	assert.True(t, ok)
	assert.Equal(t, 1, top)
	assert.Equal(t, PositionType, m["right"].Value.Type())
	assert.Equal(t, "50%-3", m["right"].Value.String())
	assert.Equal(t, "50%-3", m["left"].Value.String())
}

func TestParseImportantAndQuotes(t *testing.T) {
	props, errs := parse(t, "background-fill", `"x" !important`)
	require.Empty(t, errs)
	require.Len(t, props, 1)
	assert.True(t, props[0].Important)
	assert.Equal(t, 1, props[0].Weight.Slot(SlotImportant))
	assert.Equal(t, Char("x"), props[0].Value)
}

func TestParseInvalidAndUnknown(t *testing.T) {
	props, errs := parse(t, "padding", "1 x")
	require.Len(t, props, 4)
	assert.Len(t, errs, 2)
	m := byName(props)
	assert.True(t, m["padding-top"].Valid)
	assert.False(t, m["padding-right"].Valid)
	//
	props, errs = parse(t, "colour", "red")
	require.Len(t, props, 1)
	require.Len(t, errs, 1)
	assert.False(t, props[0].Known)
	assert.False(t, props[0].Applicable())
}

func TestParseBooleanValues(t *testing.T) {
	props, _ := parse(t, "bold", "false")
	b, ok := props[0].Value.Bool()
	assert.True(t, ok)
	assert.False(t, b)
	props, _ = parse(t, "Hidden", "TRUE")
	assert.Equal(t, "hidden", props[0].Name)
	assert.Equal(t, Bool(true), props[0].Value)
}

func TestFlatSortUniqDedup(t *testing.T) {
	mk := func(line int, classes int) *Property {
		return &Property{
			Name: "color", Value: Color("red"), Known: true, Valid: true,
			Weight: DeclarationWeight(false, cssom.Position{Line: line}).Sum(SelectorWeight(0, classes, 0)),
		}
	}
	a, b, c := mk(1, 2), mk(2, 1), mk(3, 0)
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	props := FlatSortUniq([][]*Property{{c, a}, {b}}, reg.Defaults())
	var colors []*Property
	for _, p := range props {
		if p.Name == "color" {
			colors = append(colors, p)
		}
	}
	require.Len(t, colors, 1)
	assert.Same(t, a, colors[0])
	assert.Len(t, props, len(Longhands()))
}

func TestFlatSortUniqDefaultsLoseTies(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	explicit := &Property{Name: "align", Value: HAlign("right"), Known: true, Valid: true,
		Weight: DeclarationWeight(false, cssom.Position{Line: 1, Column: 1})}
	props := FlatSortUniq([][]*Property{{explicit}}, reg.Defaults())
	for _, p := range props {
		if p.Name == "align" {
			assert.Equal(t, HAlign("right"), p.Value)
		}
	}
}

func TestExtractIsClone(t *testing.T) {
	props, _ := parse(t, "color", "red")
	p := props[0]
	x := Extract(p, SelectorWeight(1, 0, 0))
	assert.Equal(t, 0, p.Weight.Slot(SlotID))
	assert.Equal(t, 1, x.Weight.Slot(SlotID))
	assert.Equal(t, p.Position, x.Weight.Position())
}

func TestRegistryRejectsUnknownAccessor(t *testing.T) {
	_, err := NewRegistry(map[string]Accessor{"colour": AccessorFuncs{}})
	assert.Error(t, err)
}
