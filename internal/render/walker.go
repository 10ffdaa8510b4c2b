package render

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/view"
)

// DefaultMaxDepth bounds how deeply slots may nest.
const DefaultMaxDepth = 64

// Context carries screen-wide values every renderer can read.
type Context struct {
	// Preview is set when draft content is shown; links keep the flag.
	Preview bool
}

// Walker resolves and renders a composition tree.
type Walker struct {
	registry *Registry
	logger   *zap.Logger
	maxDepth int
}

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used to report unknown component types.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// NewWalker builds a Walker. A nil registry uses DefaultRegistry.
func NewWalker(registry *Registry, opts ...Option) *Walker {
	if registry == nil {
		registry = DefaultRegistry()
	}
	w := &Walker{
		registry: registry,
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Registry returns the registry the walker resolves against.
func (w *Walker) Registry() *Registry {
	return w.registry
}

// Render renders the tree rooted at root. A nil root renders the zero node.
func (w *Walker) Render(root *canvas.ComponentInstance, ctx Context) view.Node {
	if root == nil {
		return view.Node{}
	}
	key := root.ID
	if key == "" {
		key = "root"
	}
	return w.renderNode(root, key, ctx, 0)
}

func (w *Walker) renderNode(c *canvas.ComponentInstance, key string, ctx Context, depth int) view.Node {
	if depth >= w.maxDepth {
		w.logger.Warn("composition nested too deeply",
			zap.String("type", c.Type),
			zap.String("key", key),
			zap.Int("max_depth", w.maxDepth),
		)
		return view.Notice(key, fmt.Sprintf("Component %s nested deeper than %d levels", c.Type, w.maxDepth))
	}
	if _, ok := w.registry.Lookup(c.Type); !ok {
		w.logger.Debug("unknown component type", zap.String("type", c.Type), zap.String("key", key))
	}

	props := Props{
		Component: c,
		Context:   ctx,
		key:       key,
		walker:    w,
		depth:     depth,
	}
	node := w.registry.Resolve(c).Render(props)
	if node.IsZero() {
		return node
	}
	node.Key = key
	return node
}

// renderSlot renders the children of one slot, keying each by its id or by
// slot name and position.
func (w *Walker) renderSlot(parent Props, name string) []view.Node {
	children := parent.Component.Slot(name)
	if len(children) == 0 {
		return nil
	}
	out := make([]view.Node, 0, len(children))
	for i := range children {
		child := &children[i]
		node := w.renderNode(child, SlotKey(child, name, i), parent.Context, parent.depth+1)
		if node.IsZero() {
			continue
		}
		out = append(out, node)
	}
	return out
}

// SlotKey returns the stable key of a slot child.
func SlotKey(c *canvas.ComponentInstance, slotName string, index int) string {
	if c != nil && c.ID != "" {
		return c.ID
	}
	return "slot-" + slotName + "-" + strconv.Itoa(index)
}
