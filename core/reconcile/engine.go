package reconcile

import (
	"spec-sync/core/spec"
)

// comparedSections are compared in this order. Headers are intentionally absent.
var comparedSections = []spec.Section{
	spec.SectionParameters,
	spec.SectionRequestBody,
	spec.SectionResponseBody,
}

// Reconcile compares a frontend and a backend specification.
// It is total and deterministic; absent sections and status codes are empty.
func Reconcile(frontend, backend spec.EndpointSpec) Result {
	if !frontend.IsDefined() && !backend.IsDefined() {
		return Result{Status: StatusUndefined, Conflicts: []Conflict{}}
	}
	if !frontend.IsDefined() || !backend.IsDefined() {
		return Result{Status: StatusPending, Conflicts: []Conflict{}}
	}

	conflicts := []Conflict{}
	for _, section := range comparedSections {
		conflicts = append(conflicts, compareFields(section, frontend.Fields(section), backend.Fields(section))...)
	}

	if c, ok := compareStatusCodes(frontend.StatusCodes, backend.StatusCodes); ok {
		conflicts = append(conflicts, c)
	}

	status := StatusSynced
	if len(conflicts) > 0 {
		status = StatusConflict
	}
	return Result{Status: status, Conflicts: conflicts}
}

// fieldIndex maps field names to their last occurrence while keeping the
// position of the first occurrence for iteration.
type fieldIndex struct {
	order  []string
	byName map[string]spec.FieldSpec
}

func buildIndex(fields []spec.FieldSpec) fieldIndex {
	idx := fieldIndex{
		order:  make([]string, 0, len(fields)),
		byName: make(map[string]spec.FieldSpec, len(fields)),
	}
	for _, f := range fields {
		if _, seen := idx.byName[f.Name]; !seen {
			idx.order = append(idx.order, f.Name)
		}
		idx.byName[f.Name] = f
	}
	return idx
}

// compareFields walks frontend names first (emitting missing or mismatch
// conflicts in frontend order), then backend-only names in backend order.
func compareFields(section spec.Section, frontendFields, backendFields []spec.FieldSpec) []Conflict {
	var conflicts []Conflict
	front := buildIndex(frontendFields)
	back := buildIndex(backendFields)
	prefix := string(section) + "."

	for _, name := range front.order {
		f := front.byName[name]
		b, ok := back.byName[name]
		if !ok {
			conflicts = append(conflicts, Conflict{
				Field:         prefix + name,
				FrontendValue: f,
				BackendValue:  nil,
				Type:          ConflictMissing,
			})
			continue
		}

		if f.Type != b.Type {
			conflicts = append(conflicts, Conflict{
				Field:         prefix + name + ".type",
				FrontendValue: f.Type,
				BackendValue:  b.Type,
				Type:          ConflictTypeMismatch,
			})
		}
		if f.Required != b.Required {
			conflicts = append(conflicts, Conflict{
				Field:         prefix + name + ".required",
				FrontendValue: f.Required,
				BackendValue:  b.Required,
				Type:          ConflictRequiredMismatch,
			})
		}
	}

	for _, name := range back.order {
		if _, ok := front.byName[name]; ok {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Field:         prefix + name,
			FrontendValue: nil,
			BackendValue:  back.byName[name],
			Type:          ConflictMissing,
		})
	}

	return conflicts
}

// compareStatusCodes reports a conflict only when both sets are non-empty and
// share no code. Conflict values list each set's codes in first-seen order.
func compareStatusCodes(frontendCodes, backendCodes []int) (Conflict, bool) {
	front := uniqueCodes(frontendCodes)
	back := uniqueCodes(backendCodes)
	if len(front) == 0 || len(back) == 0 {
		return Conflict{}, false
	}

	backSet := make(map[int]struct{}, len(back))
	for _, code := range back {
		backSet[code] = struct{}{}
	}
	for _, code := range front {
		if _, ok := backSet[code]; ok {
			return Conflict{}, false
		}
	}

	return Conflict{
		Field:         StatusCodesField,
		FrontendValue: front,
		BackendValue:  back,
		Type:          ConflictTypeMismatch,
	}, true
}

func uniqueCodes(codes []int) []int {
	seen := make(map[int]struct{}, len(codes))
	out := make([]int, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
