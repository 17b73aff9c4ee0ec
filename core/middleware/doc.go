// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key guard (X-API-Key). Disabled when no key is configured.
//   - rayid: assigns a request id (ray id) to every request, stores it in
//     the request locals for logger.WithRayID and echoes it in X-Ray-ID.
//
// rayid is registered first so every log line of a request carries the id.
package middleware
