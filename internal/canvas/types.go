package canvas

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// State selects which revision of a composition the API returns.
type State int

const (
	// StateDraft returns the latest saved (preview) revision.
	StateDraft State = 0
	// StatePublished returns the published revision.
	StatePublished State = 64
)

// StateFor maps the preview flag onto a composition state.
func StateFor(preview bool) State {
	if preview {
		return StateDraft
	}
	return StatePublished
}

// String returns a human label for the state.
func (s State) String() string {
	switch s {
	case StateDraft:
		return "draft"
	case StatePublished:
		return "published"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// ComponentInstance is one node of a composition tree.
type ComponentInstance struct {
	ID         string                         `json:"_id,omitempty"`
	Slug       string                         `json:"_slug,omitempty"`
	Name       string                         `json:"_name,omitempty"`
	Type       string                         `json:"type"`
	Variant    string                         `json:"variant,omitempty"`
	Parameters map[string]ComponentParameter  `json:"parameters,omitempty"`
	Slots      map[string][]ComponentInstance `json:"slots,omitempty"`
}

// ComponentParameter holds a parameter's declared type and its raw value.
// Values vary by parameter type (text, link, asset, rich text) so they are
// kept undecoded until a renderer asks for them.
type ComponentParameter struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// HasValue reports whether the parameter carries a non-null value.
func (p ComponentParameter) HasValue() bool {
	v := strings.TrimSpace(string(p.Value))
	return v != "" && v != "null"
}

// Parameter returns the named parameter and whether it exists.
func (c *ComponentInstance) Parameter(id string) (ComponentParameter, bool) {
	if c == nil || c.Parameters == nil {
		return ComponentParameter{}, false
	}
	p, ok := c.Parameters[id]
	return p, ok
}

// Slot returns the children of the named slot. Missing slots yield nil.
func (c *ComponentInstance) Slot(name string) []ComponentInstance {
	if c == nil || c.Slots == nil {
		return nil
	}
	return c.Slots[name]
}

// SlotNames returns slot names in a stable order.
func (c *ComponentInstance) SlotNames() []string {
	if c == nil || len(c.Slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Slots))
	for name := range c.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of nodes in the tree rooted at c.
func (c *ComponentInstance) Count() int {
	if c == nil {
		return 0
	}
	n := 1
	for _, children := range c.Slots {
		for i := range children {
			n += children[i].Count()
		}
	}
	return n
}

// CompositionResponse mirrors the single-composition payload.
type CompositionResponse struct {
	Composition *ComponentInstance `json:"composition"`
	State       State              `json:"state"`
	ProjectID   string             `json:"projectId"`
	Created     string             `json:"created"`
	Modified    string             `json:"modified"`
}

// ListResponse mirrors the composition list payload.
type ListResponse struct {
	Compositions []ListEntry `json:"compositions"`
	TotalCount   int         `json:"totalCount"`
}

// ListEntry is one composition in a list response. Path is the project map
// node the composition is attached to, when there is one.
type ListEntry struct {
	Composition ComponentInstance `json:"composition"`
	Path        string            `json:"path,omitempty"`
	State       State             `json:"state"`
	Created     string            `json:"created"`
	Modified    string            `json:"modified"`
}

// Route returns the route a composition is reachable under: its project map
// path, else its slug, else "".
func (e ListEntry) Route() string {
	if path := strings.TrimSpace(e.Path); path != "" {
		return path
	}
	return strings.TrimSpace(e.Composition.Slug)
}
