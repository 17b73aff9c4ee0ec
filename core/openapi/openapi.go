package openapi

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"spec-sync/core/models"
	"spec-sync/core/spec"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-yaml"
)

// Version is the OpenAPI version of generated documents.
const Version = "3.0.3"

// SideExtension is the info extension naming the side a document was built from.
const SideExtension = "x-spec-sync-side"

// Format is an output encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a request value into a Format. Empty means JSON.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(v)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", v)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Extension returns the file extension of the format.
func (f Format) Extension() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

var (
	colonParam    = regexp.MustCompile(`:([A-Za-z0-9_]+)`)
	templateParam = regexp.MustCompile(`\{([^{}/]+)\}`)
)

// TemplatePath rewrites :name segments into OpenAPI {name} templates.
func TemplatePath(p string) string {
	return colonParam.ReplaceAllString(p, "{$1}")
}

// Build renders the given side of a project's endpoints as an OpenAPI document.
func Build(project models.Project, endpoints []models.Endpoint, side spec.Side) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       project.Name,
			Description: project.Description,
			Version:     infoVersion(project),
			Extensions:  map[string]any{SideExtension: string(side)},
		},
		Paths: openapi3.NewPaths(),
	}

	for _, ep := range endpoints {
		s := ep.Spec(side)
		if !s.IsDefined() {
			continue
		}

		path := TemplatePath(ep.Path)
		method := strings.ToUpper(string(ep.Method))
		if item := doc.Paths.Value(path); item != nil && item.GetOperation(method) != nil {
			// Duplicate method and path: the first endpoint listed wins.
			continue
		}
		doc.AddOperation(path, method, buildOperation(ep, path, s))
	}
	return doc
}

// Render encodes the document in the requested format.
func Render(doc *openapi3.T, format Format) ([]byte, error) {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if format != FormatYAML {
		return raw, nil
	}
	out, err := yaml.JSONToYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert document to yaml: %w", err)
	}
	return out, nil
}

func infoVersion(p models.Project) string {
	if p.UpdatedAt.IsZero() {
		return "0.0.0"
	}
	return p.UpdatedAt.UTC().Format("2006.01.02-150405")
}

func buildOperation(ep models.Endpoint, path string, s spec.EndpointSpec) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = fmt.Sprintf("%s_%s", strings.ToLower(string(ep.Method)), ep.ID)
	op.Summary = s.Description

	inPath := make(map[string]bool)
	for _, m := range templateParam.FindAllStringSubmatch(path, -1) {
		inPath[m[1]] = false
	}

	for _, f := range uniqueFields(s.Parameters) {
		var p *openapi3.Parameter
		if _, ok := inPath[f.Name]; ok {
			p = openapi3.NewPathParameter(f.Name)
			inPath[f.Name] = true
		} else {
			p = openapi3.NewQueryParameter(f.Name).WithRequired(f.Required)
		}
		p.Description = f.Description
		op.AddParameter(p.WithSchema(fieldSchema(f)))
	}
	// Every template segment needs a declared parameter.
	for _, m := range templateParam.FindAllStringSubmatch(path, -1) {
		if !inPath[m[1]] {
			inPath[m[1]] = true
			op.AddParameter(openapi3.NewPathParameter(m[1]).WithSchema(openapi3.NewStringSchema()))
		}
	}

	for _, f := range uniqueFields(s.Headers) {
		p := openapi3.NewHeaderParameter(f.Name).WithRequired(f.Required).WithSchema(fieldSchema(f))
		p.Description = f.Description
		op.AddParameter(p)
	}

	if len(s.RequestBody) > 0 {
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchema(bodySchema(s.RequestBody)),
		}
	}

	op.Responses = buildResponses(s)
	return op
}

func buildResponses(s spec.EndpointSpec) *openapi3.Responses {
	var body *openapi3.Schema
	if len(s.ResponseBody) > 0 {
		body = bodySchema(s.ResponseBody)
	}

	newResponse := func(description string) *openapi3.Response {
		r := openapi3.NewResponse().WithDescription(description)
		if body != nil {
			r = r.WithJSONSchema(body)
		}
		return r
	}

	var opts []openapi3.NewResponsesOption
	seen := make(map[int]bool)
	for _, code := range s.StatusCodes {
		if seen[code] {
			continue
		}
		seen[code] = true
		text := http.StatusText(code)
		if text == "" {
			text = fmt.Sprintf("Status %d", code)
		}
		opts = append(opts, openapi3.WithStatus(code, &openapi3.ResponseRef{Value: newResponse(text)}))
	}
	if len(opts) == 0 {
		opts = append(opts, openapi3.WithName("default", newResponse("Response")))
	}
	return openapi3.NewResponses(opts...)
}

func bodySchema(fields []spec.FieldSpec) *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	for _, f := range uniqueFields(fields) {
		obj.WithProperty(f.Name, fieldSchema(f))
		if f.Required {
			obj.Required = append(obj.Required, f.Name)
		}
	}
	return obj
}

func fieldSchema(f spec.FieldSpec) *openapi3.Schema {
	var s *openapi3.Schema
	switch f.Type {
	case spec.TypeNumber:
		s = openapi3.NewFloat64Schema()
	case spec.TypeBoolean:
		s = openapi3.NewBoolSchema()
	case spec.TypeObject:
		s = openapi3.NewObjectSchema()
	case spec.TypeArray:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewSchema())
	default:
		s = openapi3.NewStringSchema()
	}
	s.Description = f.Description
	return s
}

// uniqueFields keeps each name at its first position with its last definition.
func uniqueFields(fields []spec.FieldSpec) []spec.FieldSpec {
	pos := make(map[string]int, len(fields))
	out := make([]spec.FieldSpec, 0, len(fields))
	for _, f := range fields {
		if i, ok := pos[f.Name]; ok {
			out[i] = f
			continue
		}
		pos[f.Name] = len(out)
		out = append(out, f)
	}
	return out
}
