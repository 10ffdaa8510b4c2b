package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/uniterm/internal/view"
)

// focusMarker prefixes the focused action so the viewport can find its line.
const focusMarker = "▸ "

// markdownCache keeps one glamour renderer for the current style and wrap
// width. An empty style means dark.
type markdownCache struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func (c *markdownCache) render(text string, width int, style string) string {
	if c == nil {
		return text
	}
	if style == "" {
		style = styles.DarkStyle
	}
	if c.renderer == nil || c.width != width || c.style != style {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		c.renderer = renderer
		c.width = width
		c.style = style
	}
	out, err := c.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// painter draws a view tree. focus is the index of the focused action in
// document order, or -1 for none.
type painter struct {
	styles   Styles
	width    int
	focus    int
	markdown *markdownCache

	actionIdx int
}

// paint renders n to a string no wider than the painter width.
func (p *painter) paint(n view.Node) string {
	p.actionIdx = 0
	return p.node(n, p.width)
}

func (p *painter) node(n view.Node, width int) string {
	if width < 1 {
		width = 1
	}
	switch n.Kind {
	case view.KindBox:
		return p.box(n, width)
	case view.KindRow:
		return p.row(n, width)
	case view.KindHeading:
		return p.styles.HeadingStyle(n.Style).Width(width).Render(n.Text)
	case view.KindEyebrow:
		return p.styles.Eyebrow.Width(width).Render(strings.ToUpper(n.Text))
	case view.KindText:
		return p.styles.Text.Width(width).Render(n.Text)
	case view.KindMarkdown:
		return p.markdown.render(n.Text, width, p.styles.markdown)
	case view.KindImage:
		return p.image(n, width)
	case view.KindButton:
		return p.button(n)
	case view.KindNotice:
		return p.styles.WarningText.Italic(true).Width(width).Render(n.Text)
	}
	return ""
}

func (p *painter) box(n view.Node, width int) string {
	inner := width
	framed := n.Style == view.StyleHero
	if framed {
		inner = width - 4
	}
	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if out := p.node(child, inner); out != "" {
			parts = append(parts, out)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sep := "\n"
	if framed {
		sep = "\n\n"
	}
	content := strings.Join(parts, sep)
	if framed {
		return p.styles.Box.Padding(0, 1).Width(width - 2).Render(content)
	}
	return content
}

func (p *painter) row(n view.Node, width int) string {
	if len(n.Children) == 0 {
		return ""
	}
	gap := 1
	cell := (width - gap*(len(n.Children)-1)) / len(n.Children)
	if cell < 1 {
		cell = 1
	}
	parts := make([]string, 0, len(n.Children)*2)
	for i, child := range n.Children {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, lipgloss.NewStyle().Width(cell).Render(p.node(child, cell)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p *painter) image(n view.Node, width int) string {
	label := "[image]"
	if n.Text != "" {
		label = "[image: " + n.Text + "]"
	}
	out := p.styles.MutedText.Render(label)
	if n.Action != nil && n.Action.Target != "" {
		out += " " + p.styles.FaintText.Render(truncateMiddle(n.Action.Target, width-lipgloss.Width(label)-1))
	}
	return out
}

func (p *painter) button(n view.Node) string {
	if n.Action == nil {
		return p.styles.Button.Foreground(p.styles.FaintText.GetForeground()).Render(n.Text)
	}
	idx := p.actionIdx
	p.actionIdx++
	label := n.Text
	style := p.styles.Button
	if n.Style == view.StyleTile {
		style = p.styles.Tile
	}
	if idx == p.focus {
		return p.styles.ButtonFocus.Render(focusMarker + label)
	}
	return style.Render(label)
}

// focusLine returns the index of the first painted line holding the focus
// marker, or -1.
func focusLine(painted string) int {
	for i, line := range strings.Split(painted, "\n") {
		if strings.Contains(ansi.Strip(line), strings.TrimSpace(focusMarker)) {
			return i
		}
	}
	return -1
}
