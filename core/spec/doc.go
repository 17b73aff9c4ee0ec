// Package spec defines the data model of a one-sided endpoint specification.
//
// An endpoint contract is authored twice: once by the frontend team and once by
// the backend team. Each side is an EndpointSpec made of four field lists
// (parameters, requestBody, responseBody, headers), a set of status codes and an
// optional description. DefinedBy records which side authored the spec and is
// empty until that side has saved at least once.
//
// # Validation
//
// ValidateField and ValidateSpec are pure predicates over typed values.
// ValidateJSON checks a raw request payload against the embedded JSON schema
// before it is decoded, so shape errors (a list that is not a list, a
// "required" flag that is not a boolean) are rejected at the boundary.
//
// # Usage
//
//	var s spec.EndpointSpec
//	if err := spec.ValidateJSON(raw); err != nil {
//	    return err
//	}
//	_ = json.Unmarshal(raw, &s)
//	if !spec.ValidateSpec(s) {
//	    return errors.New("invalid spec")
//	}
package spec
