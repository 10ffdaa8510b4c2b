// Package params pulls typed values out of a component's parameter map.
//
// Parameter values arrive as raw JSON whose shape depends on the parameter
// type. The helpers here never fail: a missing or mistyped value yields the
// caller's default or nil.
package params

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/five82/uniterm/internal/canvas"
)

// LinkTypeInternal is assumed when a link value omits its type.
const LinkTypeInternal = "internal"

// LinkTypeURL marks a link that points outside the app.
const LinkTypeURL = "url"

// LinkValue is a decoded link parameter.
type LinkValue struct {
	Path string
	Type string
}

// External reports whether the link leaves the app.
func (l LinkValue) External() bool {
	return l.Type == LinkTypeURL
}

// Segments splits the link path into non-empty route segments.
func (l LinkValue) Segments() []string {
	return splitPath(l.Path)
}

// AssetValue is a decoded image or file parameter.
type AssetValue struct {
	URL   string
	Title string
}

// Value returns the parsed value of a parameter. The result does not exist
// when the parameter is missing or null.
func Value(c *canvas.ComponentInstance, id string) gjson.Result {
	p, ok := c.Parameter(id)
	if !ok || !p.HasValue() {
		return gjson.Result{}
	}
	return gjson.ParseBytes(p.Value)
}

// String returns a non-empty string parameter, or def.
func String(c *canvas.ComponentInstance, id, def string) string {
	v := Value(c, id)
	if v.Type != gjson.String || v.Str == "" {
		return def
	}
	return v.Str
}

// Link returns a link parameter, or nil when the value is not an object.
func Link(c *canvas.ComponentInstance, id string) *LinkValue {
	v := Value(c, id)
	if !v.IsObject() {
		return nil
	}
	link := &LinkValue{
		Path: v.Get("path").String(),
		Type: v.Get("type").String(),
	}
	if link.Type == "" {
		link.Type = LinkTypeInternal
	}
	return link
}

// Asset returns an asset parameter, or nil when no URL can be found. Both the
// flat {url,title} shape and the {fields:{url:{value}}} shape are accepted;
// for list values the first entry is used.
func Asset(c *canvas.ComponentInstance, id string) *AssetValue {
	v := Value(c, id)
	if v.IsArray() {
		v = v.Get("0")
	}
	if !v.IsObject() {
		return nil
	}
	if url := v.Get("url"); url.Type == gjson.String && url.Str != "" {
		return &AssetValue{URL: url.Str, Title: v.Get("title").String()}
	}
	if url := v.Get("fields.url.value"); url.Type == gjson.String && url.Str != "" {
		return &AssetValue{URL: url.Str, Title: v.Get("fields.title.value").String()}
	}
	return nil
}

// Slot returns the children of a named slot. A nil component or missing slot
// yields an empty result.
func Slot(c *canvas.ComponentInstance, name string) []canvas.ComponentInstance {
	return c.Slot(name)
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
