package render

import (
	"github.com/tidwall/gjson"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/params"
	"github.com/five82/uniterm/internal/view"
)

// Props is what a renderer receives for one component.
type Props struct {
	Component *canvas.ComponentInstance
	Context   Context

	key    string
	walker *Walker
	depth  int
}

// Key returns the component's key within its parent slot.
func (p Props) Key() string {
	return p.key
}

// Type returns the component's type tag.
func (p Props) Type() string {
	if p.Component == nil {
		return ""
	}
	return p.Component.Type
}

// Parameter returns the raw value of a parameter.
func (p Props) Parameter(id string) gjson.Result {
	return params.Value(p.Component, id)
}

// String returns a string parameter or def.
func (p Props) String(id, def string) string {
	return params.String(p.Component, id, def)
}

// Link returns a link parameter or nil.
func (p Props) Link(id string) *params.LinkValue {
	return params.Link(p.Component, id)
}

// Asset returns an asset parameter or nil.
func (p Props) Asset(id string) *params.AssetValue {
	return params.Asset(p.Component, id)
}

// Slot returns the raw children of a slot.
func (p Props) Slot(name string) []canvas.ComponentInstance {
	return params.Slot(p.Component, name)
}

// RenderSlot resolves and renders every child of a slot.
func (p Props) RenderSlot(name string) []view.Node {
	if p.walker == nil {
		return nil
	}
	return p.walker.renderSlot(p, name)
}

// LinkAction turns a link parameter into a button action. Internal links
// navigate to the composition at the link path; url links open externally.
// A link without a path has no action.
func (p Props) LinkAction(link *params.LinkValue) *view.Action {
	if link == nil || link.Path == "" {
		return nil
	}
	if link.External() {
		return &view.Action{Kind: view.ActionOpenURL, Target: link.Path}
	}
	route := nav.Route{Kind: nav.KindComposition, Path: link.Segments(), Preview: p.Context.Preview}
	return &view.Action{Kind: view.ActionNavigate, Target: route.Link()}
}
