// Package models defines the persisted records of the service.
//
// A Project owns many Endpoints; deleting a project deletes its endpoints.
// Each Endpoint stores both sides' specifications as JSON documents together
// with the status and conflicts most recently derived from them by the
// reconcile engine. Status and Conflicts are only ever written from a
// reconcile.Result.
package models
