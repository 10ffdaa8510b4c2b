// Package app provides the orchestration layer for uniterm.
//
// # Overview
//
// This package wires configuration, logging, the Canvas client, the route
// poller and the UI together. It is the composition root where dependencies
// are created and connected.
//
// # Architecture
//
//  1. Load config from ~/.config/uniterm/config.toml plus UNIFORM_* overrides
//  2. Open the JSON log file under the configured log directory
//  3. Build the Canvas client and the composition service
//  4. Create the shared state.Store for the poller and the UI
//  5. Launch the background route poller
//  6. Start the TUI and block until the user quits or the context cancels
//
// Missing credentials are logged as a warning; requests then fail and the
// screens show the API error.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config and env
//	       ├─────> logging.New()       JSON log file
//	       ├─────> NewService()        Canvas client + fetch service
//	       ├─────> StartPoller()       Route list updates
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│                                         │
//	│  timer fires ──> source.Routes()        │
//	│       │               │                 │
//	│       │               └──> store.Update │
//	│       │                                 │
//	│       └── reset to Backoff(failures)    │
//	│                                         │
//	│  ctx.Done() ──> close(done)             │
//	└─────────────────────────────────────────┘
//
// The UI reads the store on every tick. Polling doubles its interval after
// each failure, capped at state.MaxBackoff, and two failures in a row mark
// the routes offline in the header.
//
// # Start Screen
//
// StartLink picks the first screen in this order: --id, the path arguments,
// the last composition opened (saved in prefs), and finally the root.
package app
