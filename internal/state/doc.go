// Package state holds the load state shown by uniterm's screens.
//
// # Types
//
//   - Screen: the loading/refreshing/error lifecycle of one composition screen
//   - Store: the route list refreshed by the background poller
//   - Backoff: retry delay after consecutive failures
//
// # Screen Lifecycle
//
// A composition screen moves through these states:
//
//	┌────────┐ Begin(false) ┌─────────┐ Resolve(ok)  ┌─────────┐
//	│  idle  │─────────────>│ loading │─────────────>│ content │
//	└────────┘              └─────────┘              └─────────┘
//	                             │ Resolve(err)        │    ▲
//	                             ▼                     │    │ Resolve(ok)
//	                        ┌─────────┐  Begin(true)   ▼    │
//	                        │  error  │<──────────┌────────────┐
//	                        └─────────┘ Resolve   │ refreshing │
//	                                    (err)     └────────────┘
//
// Loading with nothing to show renders a spinner. Refreshing keeps the
// current composition on screen. An error after a refresh keeps the old
// composition so the user can still read it while the error is reported.
//
// Every Begin bumps a generation counter. Resolve ignores results carrying
// an older generation, so a slow response cannot overwrite a newer one.
//
// # Concurrency
//
// Screen is only touched from the Bubble Tea update loop and has no lock.
// Store is written by the poller goroutine and read by the UI, so it guards
// its snapshot with a sync.RWMutex and hands out copies:
//
//	poller goroutine              UI tick
//	─────────────────             ───────────────
//	client.Routes()
//	store.Update(routes, err) ──> store.Snapshot()
//
// A failed poll keeps the previous routes and records the error. Two
// consecutive failures mark the snapshot offline.
package state
