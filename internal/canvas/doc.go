// Package canvas provides an HTTP client for the Uniform Canvas API.
//
// # Overview
//
// The Canvas API serves compositions: trees of typed component instances.
// Every node has a type tag, a parameter map and named slots holding child
// nodes. This package mirrors that shape in ComponentInstance and exposes the
// three read endpoints uniterm uses.
//
// # Endpoints
//
//   - GET /api/v1/canvas?projectId&slug&state: composition by route slug
//   - GET /api/v1/canvas?projectId&compositionId&state: composition by id
//   - GET /api/v1/canvas?projectId&state: every composition in the project
//
// The state query selects the revision: StateDraft (0) for preview content,
// StatePublished (64) for published content.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Send the project API key in the x-api-key header
//   - Set Accept: application/json and User-Agent: uniterm/0.1
//   - Have a 10-second timeout
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the endpoint, status and the
// API's error message. A 404 matches ErrNotFound:
//
//	comp, err := client.CompositionBySlug(ctx, "/about", canvas.StatePublished)
//	if errors.Is(err, canvas.ErrNotFound) {
//		// try another slug
//	}
//
// A 200 response without a composition body returns (nil, nil); callers
// treat that the same as not found.
//
// # Parameter Values
//
// ComponentParameter.Value stays raw JSON. The params package decodes it on
// demand so renderers only pay for the values they read.
package canvas
