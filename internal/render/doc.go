// Package render resolves composition trees into view trees.
//
// A Registry maps component type tags to Renderers. Resolve never returns
// nil: types without a binding get the fallback renderer, which shows an
// "Unknown component type" notice in place of the component.
//
// A Walker starts at the root, resolves each node, and hands the renderer
// Props with parameter helpers and RenderSlot, which recurses into a named
// slot. Slot children are keyed by their _id, or by slot-<name>-<index> when
// the id is missing. Nesting beyond the walker's depth limit renders as a
// notice rather than recursing further.
//
// Built-in bindings:
//
//	page, container  Container (content slot)
//	hero             Hero
//	header           Header
//	allServices      AllServices
//	richText         RichText
package render
