package spec

// MinStatusCode and MaxStatusCode bound valid HTTP status codes (max exclusive).
const (
	MinStatusCode = 100
	MaxStatusCode = 600
)

// ValidateField reports whether f has a non-empty name and a known type.
// The description is not checked.
func ValidateField(f FieldSpec) bool {
	return f.Name != "" && f.Type.IsValid()
}

// ValidateSpec reports whether every field of every section passes
// ValidateField and every status code lies in [100, 600).
// Absent sections are valid and treated as empty.
func ValidateSpec(s EndpointSpec) bool {
	for _, fields := range [][]FieldSpec{s.Parameters, s.RequestBody, s.ResponseBody, s.Headers} {
		for _, f := range fields {
			if !ValidateField(f) {
				return false
			}
		}
	}
	for _, code := range s.StatusCodes {
		if code < MinStatusCode || code >= MaxStatusCode {
			return false
		}
	}
	if s.DefinedBy != SideNone && !s.DefinedBy.IsValid() {
		return false
	}
	return true
}
