// Package openapi renders one side of a project as an OpenAPI 3 document.
//
// Build walks the endpoints of a project and turns the chosen side's
// specification into operations:
//
//   - parameters named in the path ({id} or :id) become path parameters,
//     the others query parameters
//   - headers become header parameters
//   - requestBody and responseBody become JSON object schemas
//   - every status code becomes a response; "default" when none are declared
//
// Endpoints whose side has never been saved are left out. Render encodes the
// document as JSON or YAML.
package openapi
