package spec

// FieldType is the closed set of value types a field may declare.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeObject  FieldType = "object"
	TypeArray   FieldType = "array"
)

// FieldTypes lists every valid FieldType.
var FieldTypes = []FieldType{TypeString, TypeNumber, TypeBoolean, TypeObject, TypeArray}

// IsValid reports whether t is one of the declared field types.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeObject, TypeArray:
		return true
	default:
		return false
	}
}

// Side identifies which team authored a specification.
type Side string

const (
	// SideNone marks a specification that has never been saved.
	SideNone     Side = ""
	SideFrontend Side = "frontend"
	SideBackend  Side = "backend"
)

// IsValid reports whether s names one of the two authoring sides.
func (s Side) IsValid() bool {
	return s == SideFrontend || s == SideBackend
}

// ParseSide converts a request value into a Side.
func ParseSide(v string) (Side, bool) {
	s := Side(v)
	return s, s.IsValid()
}

// Section names a field list within an EndpointSpec.
type Section string

const (
	SectionParameters   Section = "parameters"
	SectionRequestBody  Section = "requestBody"
	SectionResponseBody Section = "responseBody"
	SectionHeaders      Section = "headers"
)

// FieldSpec describes one named field of a parameter set, body or header set.
type FieldSpec struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
}

// EndpointSpec is one side's view of an endpoint contract.
// A zero EndpointSpec is the never-authored spec and serializes as {}.
type EndpointSpec struct {
	Parameters   []FieldSpec `json:"parameters,omitempty"`
	RequestBody  []FieldSpec `json:"requestBody,omitempty"`
	ResponseBody []FieldSpec `json:"responseBody,omitempty"`
	Headers      []FieldSpec `json:"headers,omitempty"`
	StatusCodes  []int       `json:"statusCodes,omitempty"`
	Description  string      `json:"description,omitempty"`
	DefinedBy    Side        `json:"definedBy,omitempty"`
}

// IsDefined reports whether the owning side has saved this spec at least once.
func (s EndpointSpec) IsDefined() bool {
	return s.DefinedBy != SideNone
}

// Fields returns the field list stored under the given section.
func (s EndpointSpec) Fields(section Section) []FieldSpec {
	switch section {
	case SectionParameters:
		return s.Parameters
	case SectionRequestBody:
		return s.RequestBody
	case SectionResponseBody:
		return s.ResponseBody
	case SectionHeaders:
		return s.Headers
	default:
		return nil
	}
}
