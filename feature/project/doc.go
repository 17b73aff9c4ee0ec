// Package project manages projects, the containers of endpoints.
//
// # Routes
//
//	GET    /projects              list projects, most recently updated first
//	POST   /projects              create a project
//	GET    /projects/:id          project with its endpoints, newest first
//	DELETE /projects/:id          delete a project and all of its endpoints
//	GET    /projects/:id/summary  endpoint counts by status
//
// Concurrent summary requests for the same project share one query.
package project
