// Package config loads uniterm's Uniform project settings.
//
// # Resolution Order
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/uniterm/config.toml (default)
//  3. A missing file is not an error; every field starts empty
//  4. UNIFORM_* environment variables override file values when set
//  5. Remaining empty fields take their defaults
//
// # Fields
//
//	api_key    = "..."                    # UNIFORM_API_KEY
//	project_id = "..."                    # UNIFORM_PROJECT_ID
//	api_host   = "https://api.uniform.app" # UNIFORM_API_HOST
//	preview    = false                    # UNIFORM_PREVIEW
//	log_dir    = "~/.local/state/uniterm" # UNITERM_LOG_DIR
//
// preview selects draft compositions (state 0) instead of published ones
// (state 64). log_dir holds uniterm.log, which the logs screen tails.
//
// # Credentials
//
// Load does not fail when api_key or project_id is empty. The API rejects
// such requests and the screens report that error, so callers log a warning
// using MissingCredentials and carry on.
//
// # Path Expansion
//
// Tilde paths expand to the home directory and relative paths become
// absolute. This applies to the config file location and log_dir.
package config
