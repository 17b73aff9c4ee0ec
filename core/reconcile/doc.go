// Package reconcile compares the frontend and backend specifications of an
// endpoint and derives its synchronization status and conflict list.
//
// The engine is a pure function: it holds no state, performs no I/O and never
// fails. Running it twice on the same pair of specifications yields identical
// output, including the order of conflicts, so it is safe to call
// concurrently on independent inputs.
//
// # Algorithm
//
//  1. Emptiness gate: if neither side is authored the status is "undefined";
//     if exactly one side is authored the status is "pending". Both results
//     carry no conflicts and stop here.
//  2. Sections parameters, requestBody and responseBody are compared in that
//     order. Fields are matched by name (the last entry wins on duplicate
//     names). A name on one side only yields a "missing" conflict; a common
//     name yields "type_mismatch" and/or "required_mismatch" conflicts.
//     Headers are part of the model but are not compared.
//  3. Status codes: when both sides declare codes and the two sets share
//     none, one "statusCodes" conflict of type "type_mismatch" is emitted.
//  4. The status is "conflict" when any conflict was found, "synced" otherwise.
//
// # Usage
//
//	result := reconcile.Reconcile(endpoint.FrontendSpec, endpoint.BackendSpec)
//	endpoint.Status = result.Status
//	endpoint.Conflicts = result.Conflicts
package reconcile
