package widget

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/tcss/style"
)

// Render draws the widget tree of a screen, without emitting events.
func (s *Screen) Render() string {
	return render(s.Widget, s.Width, s.Height)
}

// render draws a widget with its children stacked vertically below its
// content. Hidden widgets are not drawn.
func render(w *Widget, width, height int) string {
	if w.Style.Hidden {
		return ""
	}
	st := lipglossStyle(w.Style, width, height)
	inner := width - w.Style.Padding[1] - w.Style.Padding[3]
	var blocks []string
	if content := w.Content; content != "" {
		if w.Style.Invisible {
			content = strings.Repeat(" ", lipgloss.Width(content))
		}
		blocks = append(blocks, content)
	}
	for _, ch := range w.Node.Children() {
		if block := render(ch.Payload, inner, height); block != "" {
			blocks = append(blocks, block)
		}
	}
	return place(st.Render(lipgloss.JoinVertical(horizontal(w.Style.Align), blocks...)),
		w.Style.Position, width, height)
}

// place moves a rendered block by its position (top, right, bottom, left)
// within width by height cells. Left and top take precedence over right and
// bottom.
func place(block string, pos [4]style.DimenT, width, height int) string {
	if pos[0].IsNone() && pos[1].IsNone() && pos[2].IsNone() && pos[3].IsNone() {
		return block
	}
	x := offset(pos[3], pos[1], lipgloss.Width(block), width)
	y := offset(pos[0], pos[2], lipgloss.Height(block), height)
	return lipgloss.NewStyle().MarginLeft(x).MarginTop(y).Render(block)
}

// offset calculates the leading space for a block of size n within total
// cells, from a leading and a trailing position.
func offset(lead, trail style.DimenT, n, total int) int {
	free := total - n
	if free < 0 {
		free = 0
	}
	var x int
	if lead.IsNone() {
		x = style.DimenPattern[int](trail).OneOf(style.DimenPatterns[int]{
			Just:    free - trail.Resolve(total),
			Percent: free - trail.Resolve(total),
			Center:  free / 2,
		})
	} else {
		x = style.DimenPattern[int](lead).OneOf(style.DimenPatterns[int]{
			Just:    lead.Resolve(total),
			Percent: lead.Resolve(total),
			Center:  free / 2,
		})
	}
	switch {
	case x < 0:
		return 0
	case x > free:
		return free
	}
	return x
}

// lipglossStyle translates the style of a widget.
func lipglossStyle(ws Style, width, height int) lipgloss.Style {
	st := lipgloss.NewStyle().
		Bold(ws.Bold).
		Underline(ws.Underline).
		Blink(ws.Blink).
		Reverse(ws.Inverse).
		Padding(ws.Padding[0], ws.Padding[1], ws.Padding[2], ws.Padding[3]).
		AlignHorizontal(horizontal(ws.Align)).
		AlignVertical(vertical(ws.VAlign))
	if ws.Fg != "" {
		st = st.Foreground(terminalColor(ws.Fg))
	}
	if ws.Bg != "" && !ws.Transparent {
		st = st.Background(terminalColor(ws.Bg))
	}
	if !ws.Width.IsNone() {
		st = st.Width(ws.Width.Resolve(width))
	}
	if !ws.Height.IsNone() {
		st = st.Height(ws.Height.Resolve(height))
	}
	b := ws.Border
	if b.Sides[0] || b.Sides[1] || b.Sides[2] || b.Sides[3] {
		border := lipgloss.NormalBorder()
		if b.Fill != "" {
			border = fillBorder(b.Fill)
		}
		st = st.Border(border, b.Sides[0], b.Sides[1], b.Sides[2], b.Sides[3])
		if b.Fg != "" {
			st = st.BorderForeground(terminalColor(b.Fg))
		}
		if b.Bg != "" {
			st = st.BorderBackground(terminalColor(b.Bg))
		}
	}
	return st
}

func fillBorder(fill string) lipgloss.Border {
	return lipgloss.Border{
		Top: fill, Bottom: fill, Left: fill, Right: fill,
		TopLeft: fill, TopRight: fill, BottomLeft: fill, BottomRight: fill,
	}
}

// terminalColor maps a normalized color to a lipgloss color.
func terminalColor(c string) lipgloss.TerminalColor {
	index, ok := style.ColorIndex(c)
	switch {
	case !ok || index == style.DefaultColor:
		return lipgloss.NoColor{}
	case index < 0: // hex
		return lipgloss.Color(c)
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func horizontal(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	}
	return lipgloss.Left
}

func vertical(align string) lipgloss.Position {
	switch align {
	case "middle":
		return lipgloss.Center
	case "bottom":
		return lipgloss.Bottom
	}
	return lipgloss.Top
}
