package reconcile

// Status is the derived synchronization state of an endpoint.
type Status string

const (
	// StatusUndefined means neither side has authored a specification.
	StatusUndefined Status = "undefined"
	// StatusPending means exactly one side has authored a specification.
	StatusPending Status = "pending"
	// StatusConflict means both sides are authored and disagree.
	StatusConflict Status = "conflict"
	// StatusSynced means both sides are authored and agree.
	StatusSynced Status = "synced"
)

// Statuses lists every Status in display order.
var Statuses = []Status{StatusSynced, StatusConflict, StatusPending, StatusUndefined}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusUndefined, StatusPending, StatusConflict, StatusSynced:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// ConflictType classifies a detected disagreement.
type ConflictType string

const (
	// ConflictMissing means a field exists on one side only.
	ConflictMissing ConflictType = "missing"
	// ConflictTypeMismatch means the field types differ. Disjoint status code
	// sets are reported with this type as well.
	ConflictTypeMismatch ConflictType = "type_mismatch"
	// ConflictRequiredMismatch means the required flags differ.
	ConflictRequiredMismatch ConflictType = "required_mismatch"
)

// ConflictTypes lists every ConflictType.
var ConflictTypes = []ConflictType{ConflictMissing, ConflictTypeMismatch, ConflictRequiredMismatch}

// StatusCodesField is the conflict path used for disjoint status code sets.
const StatusCodesField = "statusCodes"

// Conflict is one disagreement between the two sides of an endpoint.
type Conflict struct {
	// Field is a dotted path such as "parameters.id.type" or "statusCodes".
	Field string `json:"field"`

	// FrontendValue is the frontend's value at Field, nil when absent.
	FrontendValue any `json:"frontendValue"`

	// BackendValue is the backend's value at Field, nil when absent.
	BackendValue any `json:"backendValue"`

	// Type classifies the conflict.
	Type ConflictType `json:"type"`
}

// Result is the derived state of an endpoint. Status and Conflicts are always
// produced together by Reconcile; Conflicts is never nil.
type Result struct {
	Status    Status     `json:"status"`
	Conflicts []Conflict `json:"conflicts"`
}

// HasConflicts reports whether the result carries at least one conflict.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// CountByType returns the number of conflicts of each type.
func (r Result) CountByType() map[ConflictType]int {
	counts := make(map[ConflictType]int, len(ConflictTypes))
	for _, c := range r.Conflicts {
		counts[c.Type]++
	}
	return counts
}
