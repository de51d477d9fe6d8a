package widget

import (
	"fmt"

	"github.com/npillmayer/tcss/dom"
	"github.com/npillmayer/tcss/style"
)

// Accessors returns an accessor for every longhand property, binding it to
// a field or capability of a widget.
func Accessors() map[string]style.Accessor {
	acc := map[string]style.Accessor{
		"bold":             flag(func(w *Widget) *bool { return &w.Style.Bold }),
		"underline":        flag(func(w *Widget) *bool { return &w.Style.Underline }),
		"blink":            flag(func(w *Widget) *bool { return &w.Style.Blink }),
		"inverse":          flag(func(w *Widget) *bool { return &w.Style.Inverse }),
		"invisible":        flag(func(w *Widget) *bool { return &w.Style.Invisible }),
		"transparent":      flag(func(w *Widget) *bool { return &w.Style.Transparent }),
		"color":            color(func(w *Widget) *string { return &w.Style.Fg }),
		"background-fill":  char(func(w *Widget) *string { return &w.Style.Fill }),
		"background-color": color(func(w *Widget) *string { return &w.Style.Bg }),
		"border-background": color(func(w *Widget) *string {
			return &w.Style.Border.Bg
		}),
		"border-color": color(func(w *Widget) *string { return &w.Style.Border.Fg }),
		"border-fill":  char(func(w *Widget) *string { return &w.Style.Border.Fill }),
		"width":        dimen(func(w *Widget) *style.DimenT { return &w.Style.Width }),
		"height":       dimen(func(w *Widget) *style.DimenT { return &w.Style.Height }),
		"align":        text(func(w *Widget) *string { return &w.Style.Align }, style.HAlign),
		"vertical-align": text(func(w *Widget) *string {
			return &w.Style.VAlign
		}, style.VAlign),
		"shadow":    flag(func(w *Widget) *bool { return &w.Style.Shadow }),
		"hidden":    flag(func(w *Widget) *bool { return &w.Style.Hidden }),
		"shrink":    flag(func(w *Widget) *bool { return &w.Style.Shrink }),
		"mouseable": capability(func(w *Widget, on bool) { w.EnableMouse(on) }),
		"keyable":   capability(func(w *Widget, on bool) { w.EnableKeys(on) }),
		"draggable": capability(func(w *Widget, on bool) { w.EnableDrag(on) }),
	}
	for i, dir := range []string{"top", "right", "bottom", "left"} {
		i := i
		acc["border-"+dir] = flag(func(w *Widget) *bool { return &w.Style.Border.Sides[i] })
		acc["padding-"+dir] = number(func(w *Widget) *int { return &w.Style.Padding[i] })
		acc[dir] = dimen(func(w *Widget) *style.DimenT { return &w.Style.Position[i] })
	}
	return acc
}

// Registry creates a property registry with all widget accessors bound.
func Registry() (*style.Registry, error) {
	return style.NewRegistry(Accessors())
}

// EnableMouse switches mouse handling of a widget on or off.
func (w *Widget) EnableMouse(on bool) {
	if w.Caps.Mouse != on {
		tracer().Debugf("%s: mouse handling %v", w, on)
		w.Caps.Mouse = on
	}
}

// EnableKeys switches keyboard handling of a widget on or off.
func (w *Widget) EnableKeys(on bool) {
	w.Caps.Keys = on
}

// EnableDrag switches dragging of a widget on or off. Draggable widgets
// handle the mouse.
func (w *Widget) EnableDrag(on bool) {
	w.Caps.Drag = on
	if on {
		w.EnableMouse(true)
	}
}

// --- Accessor construction -------------------------------------------------

// asWidget gets the widget behind a host node.
func asWidget(n dom.Node) (*Widget, error) {
	switch w := n.(type) {
	case *Widget:
		return w, nil
	case *Screen:
		return w.Widget, nil
	}
	return nil, fmt.Errorf("widget: cannot style node of type %T", n)
}

// field creates an accessor for a field of a widget. Unset values reset a
// field to its zero value.
func field[T any](ptr func(*Widget) *T, from func(style.Value) (T, bool), to func(T) style.Value) style.Accessor {
	return style.AccessorFuncs{
		GetFunc: func(n dom.Node) (style.Value, bool) {
			w, err := asWidget(n)
			if err != nil {
				return style.Unset, false
			}
			return to(*ptr(w)), true
		},
		SetFunc: func(n dom.Node, v style.Value) error {
			w, err := asWidget(n)
			if err != nil {
				return err
			}
			if v.IsUnset() {
				var zero T
				*ptr(w) = zero
				return nil
			}
			x, ok := from(v)
			if !ok {
				return fmt.Errorf("widget: value %s of type %s not applicable", v, v.Type())
			}
			*ptr(w) = x
			return nil
		},
	}
}

func flag(ptr func(*Widget) *bool) style.Accessor {
	return field(ptr, style.Value.Bool, style.Bool)
}

func number(ptr func(*Widget) *int) style.Accessor {
	return field(ptr, style.Value.Int, style.Number)
}

func color(ptr func(*Widget) *string) style.Accessor {
	return text(ptr, style.Color)
}

func char(ptr func(*Widget) *string) style.Accessor {
	return text(ptr, style.Char)
}

func text(ptr func(*Widget) *string, to func(string) style.Value) style.Accessor {
	return field(ptr, style.Value.Text, func(s string) style.Value {
		if s == "" {
			return style.Unset
		}
		return to(s)
	})
}

func dimen(ptr func(*Widget) *style.DimenT) style.Accessor {
	return field(ptr, style.Value.Dimen, func(d style.DimenT) style.Value {
		if d.IsNone() {
			return style.Unset
		}
		return style.Dimension(d)
	})
}

func capability(enable func(*Widget, bool)) style.Accessor {
	return style.AccessorFuncs{
		GetFunc: func(n dom.Node) (style.Value, bool) {
			return style.Unset, false
		},
		SetFunc: func(n dom.Node, v style.Value) error {
			w, err := asWidget(n)
			if err != nil {
				return err
			}
			on, _ := v.Bool()
			enable(w, on)
			return nil
		},
	}
}
