// Package ui provides uniterm's Bubble Tea terminal interface.
//
// # Architecture Overview
//
// Model keeps a navigation stack of screens. The top screen is drawn between
// a one-line header (breadcrumb, draft/published state, load status, route
// poller status) and a one-line command bar. Each deep link followed from a
// composition pushes a screen; esc pops it.
//
// # Screens
//
//   - Composition: fetches a composition through CompositionLoader, walks it
//     with render.Walker and paints the view tree
//   - Routes: the route list kept fresh by the background poller
//   - Service detail: placeholder page for a service tile
//   - Logs: tail of uniterm's own JSON log
//
// # Composition Screen States
//
// Load state lives in state.Screen:
//
//   - Loading with nothing to show: centered spinner
//   - Error with nothing to show: the error text and a retry hint
//   - Error after a refresh: an error banner above the previous content
//   - Content: the painted tree in a scrollable viewport
//
// A not-found result reads "Composition not found for path: /<path>. Make
// sure the composition exists in Uniform and is published." Other errors are
// shown as returned.
//
// A screen reloads in the background when it becomes visible again, when r
// is pressed, when preview is toggled, and every RefreshEvery while idle.
// Failed loads stretch that interval with state.Backoff. Each load carries
// the screen id and a generation, so results for popped screens or older
// loads are dropped.
//
// # Painting
//
// paint.go turns view.Node trees into lipgloss strings. Boxes stack their
// children, rows split the width evenly, hero boxes get a rounded border and
// markdown goes through glamour. Buttons with an action are focusable in
// document order; tab and shift+tab move the focus and enter activates it.
// Navigate actions are parsed with nav.Parse and pushed. URL actions open the
// system browser, falling back to copying the URL to the clipboard.
//
// # Key Bindings
//
//   - tab/shift+tab: Next/previous action
//   - enter: Open focused action (or selected route)
//   - esc/backspace: Back
//   - j/k, g/G, pgup/pgdown: Scroll
//   - r: Refresh
//   - p: Toggle draft/published
//   - o: Routes
//   - l: Logs (space toggles follow)
//   - T: Cycle theme (saved to prefs)
//   - h/?: Help
//   - e/ctrl+c: Quit
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:   ctx,
//		Loader:    fetch.NewService(client, logger),
//		Store:     store,
//		Logger:    logger,
//		StartLink: "/composition/about",
//		LogPath:   cfg.LogPath(),
//	})
package ui
