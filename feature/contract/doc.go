// Package contract exports a project's specs as OpenAPI documents and keeps
// snapshots of those documents in object storage.
//
// # Routes
//
//	GET    /projects/:id/openapi?side=&format=     render one side
//	POST   /projects/:id/snapshots?side=&format=   render and upload one side
//	GET    /projects/:id/snapshots                 list stored snapshots
//	GET    /projects/:id/snapshots/:name           download a snapshot
//	DELETE /projects/:id/snapshots/:name           delete a snapshot
//
// Snapshots are stored under <prefix>/<projectID>/<side>-<unix>.<json|yaml>.
// They are exported documents only and are never read back into endpoint state.
package contract
