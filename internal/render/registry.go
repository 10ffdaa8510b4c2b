package render

import (
	"sort"
	"strings"
	"sync"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/view"
)

// Renderer turns one component into a view node.
type Renderer interface {
	Render(p Props) view.Node
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(p Props) view.Node

// Render implements Renderer.
func (f RendererFunc) Render(p Props) view.Node {
	return f(p)
}

// Registry maps component type tags to renderers. It is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	fallback  Renderer
}

// NewRegistry returns an empty registry that renders every component with
// the unknown-type notice.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		fallback:  RendererFunc(Unknown),
	}
}

// DefaultRegistry returns a registry with every built-in renderer.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("page", RendererFunc(Container))
	r.Register("container", RendererFunc(Container))
	r.Register("hero", RendererFunc(Hero))
	r.Register("header", RendererFunc(Header))
	r.Register("allServices", RendererFunc(AllServices))
	r.Register("richText", RendererFunc(RichText))
	return r
}

// Register binds a renderer to a component type, replacing any previous
// binding. A nil renderer removes the binding.
func (r *Registry) Register(componentType string, renderer Renderer) {
	componentType = strings.TrimSpace(componentType)
	if componentType == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if renderer == nil {
		delete(r.renderers, componentType)
		return
	}
	r.renderers[componentType] = renderer
}

// SetFallback replaces the renderer used for unknown types. Nil restores
// the default notice.
func (r *Registry) SetFallback(renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if renderer == nil {
		renderer = RendererFunc(Unknown)
	}
	r.fallback = renderer
}

// Lookup returns the renderer bound to a type, if any.
func (r *Registry) Lookup(componentType string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[componentType]
	return renderer, ok
}

// Resolve returns the renderer for a component. It never returns nil.
func (r *Registry) Resolve(c *canvas.ComponentInstance) Renderer {
	if c != nil {
		if renderer, ok := r.Lookup(c.Type); ok {
			return renderer
		}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Types returns the registered type tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.renderers))
	for t := range r.renderers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
