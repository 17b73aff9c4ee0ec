// Package endpoint manages endpoints and the spec update flow.
//
// Saving one side's specification loads the endpoint, substitutes the new
// spec for that side, runs the reconciliation engine over both sides and
// writes the new spec together with the resulting status and conflicts in a
// single UPDATE. The other side's column is never part of that statement.
// Concurrent saves to the same endpoint are last-writer-wins.
//
// # Routes
//
//	POST   /endpoints      create an endpoint in a project
//	GET    /endpoints/:id  fetch an endpoint
//	PUT    /endpoints/:id  save one side's spec ({"spec": {...}, "specType": "frontend"})
//	DELETE /endpoints/:id  delete an endpoint
package endpoint
