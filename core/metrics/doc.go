// Package metrics exposes Prometheus collectors for reconciliation outcomes.
//
// A Recorder owns its own registry so tests and multiple app instances never
// collide on the default registerer. The HTTP exposition handler is served by
// the start command under the configured metrics path.
package metrics
