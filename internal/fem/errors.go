package fem

import "errors"

// Solve failures. Model-invalidity errors are found before assembly;
// ErrSingularSystem only during factorization. All are recoverable by
// editing the structure and solving again.
var (
	ErrEmptyStructure        = errors.New("fem: structure has no elements")
	ErrNoLoads               = errors.New("fem: structure has no loads")
	ErrNoBoundaryConditions  = errors.New("fem: structure has no fixed degrees of freedom")
	ErrStructureDisconnected = errors.New("fem: structure is not connected")
	ErrSingularSystem        = errors.New("fem: stiffness matrix is singular, structure is unstable")
	ErrInvalidElement        = errors.New("fem: invalid element")
	ErrInvalidNode           = errors.New("fem: invalid node")
)

// Reason classifies a solve failure.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonEmptyStructure
	ReasonNoLoads
	ReasonNoBoundaryConditions
	ReasonStructureDisconnected
	ReasonSingularSystem
	ReasonInvalidElement
	ReasonInvalidNode
	ReasonUnknown
)

var reasonErrors = []struct {
	reason Reason
	err    error
}{
	{ReasonEmptyStructure, ErrEmptyStructure},
	{ReasonNoLoads, ErrNoLoads},
	{ReasonNoBoundaryConditions, ErrNoBoundaryConditions},
	{ReasonStructureDisconnected, ErrStructureDisconnected},
	{ReasonSingularSystem, ErrSingularSystem},
	{ReasonInvalidElement, ErrInvalidElement},
	{ReasonInvalidNode, ErrInvalidNode},
}

// ReasonOf maps an error returned by Solve to its Reason.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, re := range reasonErrors {
		if errors.Is(err, re.err) {
			return re.reason
		}
	}
	return ReasonUnknown
}

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonEmptyStructure:
		return "EmptyStructure"
	case ReasonNoLoads:
		return "NoLoads"
	case ReasonNoBoundaryConditions:
		return "NoBoundaryConditions"
	case ReasonStructureDisconnected:
		return "StructureDisconnected"
	case ReasonSingularSystem:
		return "SingularSystem"
	case ReasonInvalidElement:
		return "InvalidElement"
	case ReasonInvalidNode:
		return "InvalidNode"
	}
	return "Unknown"
}
