// Package view defines the renderer-independent tree a composition resolves
// to. Renderers build Nodes; the ui package paints them.
package view

// Kind identifies how a node is painted.
type Kind int

const (
	KindBox Kind = iota
	KindRow
	KindHeading
	KindEyebrow
	KindText
	KindMarkdown
	KindImage
	KindButton
	KindNotice
)

var kindNames = [...]string{
	KindBox:      "box",
	KindRow:      "row",
	KindHeading:  "heading",
	KindEyebrow:  "eyebrow",
	KindText:     "text",
	KindMarkdown: "markdown",
	KindImage:    "image",
	KindButton:   "button",
	KindNotice:   "notice",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Style names a palette role. Painters map roles to theme colors.
type Style string

const (
	StyleDefault Style = ""
	StyleBrand   Style = "brand"
	StyleNav     Style = "nav"
	StyleHero    Style = "hero"
	StyleMuted   Style = "muted"
	StyleTile    Style = "tile"
)

// ActionKind says what activating a button does.
type ActionKind int

const (
	// ActionNavigate opens an in-app deep link.
	ActionNavigate ActionKind = iota
	// ActionOpenURL opens an external URL.
	ActionOpenURL
)

// Action is the target of a button.
type Action struct {
	Kind   ActionKind
	Target string
}

// Node is one element of a rendered view tree.
type Node struct {
	Kind     Kind
	Key      string
	Text     string
	Style    Style
	Action   *Action
	Children []Node
}

// Box groups children vertically.
func Box(key string, style Style, children ...Node) Node {
	return Node{Kind: KindBox, Key: key, Style: style, Children: compact(children)}
}

// Row lays out children horizontally.
func Row(key string, style Style, children ...Node) Node {
	return Node{Kind: KindRow, Key: key, Style: style, Children: compact(children)}
}

// Text builds a leaf node of the given kind. Empty text yields the zero
// node, which containers drop.
func Text(kind Kind, text string) Node {
	if text == "" {
		return Node{}
	}
	return Node{Kind: kind, Text: text}
}

// Button builds a focusable node.
func Button(label string, action Action) Node {
	return Node{Kind: KindButton, Text: label, Action: &action}
}

// Notice builds a placeholder for content that could not be rendered.
func Notice(key, text string) Node {
	return Node{Kind: KindNotice, Key: key, Text: text, Style: StyleMuted}
}

// IsZero reports whether n is the empty node renderers return to render
// nothing.
func (n Node) IsZero() bool {
	return n.Kind == KindBox && n.Key == "" && n.Text == "" && n.Action == nil && len(n.Children) == 0
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Actions returns every button in document order.
func Actions(n Node) []Node {
	var out []Node
	Walk(n, func(node Node) bool {
		if node.Kind == KindButton && node.Action != nil {
			out = append(out, node)
		}
		return true
	})
	return out
}

// compact drops zero nodes so optional parts can be passed inline.
func compact(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if n.IsZero() {
			continue
		}
		out = append(out, n)
	}
	return out
}
