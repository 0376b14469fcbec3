package fem

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/goframe/internal/matrix"
)

// State is the position of a Solver in its solve cycle.
type State int

const (
	StateUnsolved State = iota
	StateValidating
	StateAssembling
	StateSolving
	StateSolved
)

func (s State) String() string {
	switch s {
	case StateUnsolved:
		return "Unsolved"
	case StateValidating:
		return "Validating"
	case StateAssembling:
		return "Assembling"
	case StateSolving:
		return "Solving"
	case StateSolved:
		return "Solved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for state transitions and system sizes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithValidation toggles the pre-solve checks. With validation off an
// unconstrained or disconnected model reaches the factorization and fails
// there with ErrSingularSystem.
func WithValidation(enabled bool) Option {
	return func(s *Solver) { s.validate = enabled }
}

// WithConditionEstimate makes every successful solve also compute the
// condition number of the constrained stiffness matrix.
func WithConditionEstimate(enabled bool) Option {
	return func(s *Solver) { s.condition = enabled }
}

// Solver runs the direct stiffness method over a Structure. It is not safe
// for concurrent use, and the structure must not change during Solve.
type Solver struct {
	logger    *slog.Logger
	validate  bool
	condition bool

	state    State
	lastErr  error
	solution *Solution
	fresh    bool
}

// NewSolver returns an unsolved Solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		logger:   slog.New(slog.DiscardHandler),
		validate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve validates, assembles and solves st. On failure the solver returns
// to StateUnsolved, LastError reports the cause and any earlier solution
// is kept but marked stale.
func (s *Solver) Solve(st Structure) (*Solution, error) {
	s.lastErr = nil

	s.enter(StateValidating)
	if s.validate {
		if err := Validate(st); err != nil {
			return nil, s.fail(err)
		}
	}
	snap, err := takeSnapshot(st)
	if err != nil {
		return nil, s.fail(err)
	}

	s.enter(StateAssembling)
	dof := snap.dofMap()
	k, f := assemble(snap, dof)
	k0, f0 := k.Clone(), f.Clone()
	fixed := applySupports(k, f, snap, dof)
	s.logger.Debug("assembled",
		"nodes", dof.Len(),
		"elements", len(snap.elements),
		"equations", dof.Size(),
		"fixed", fixed)

	s.enter(StateSolving)
	d, err := matrix.SolveLU(k, f)
	if err != nil {
		return nil, s.fail(singular(err))
	}

	sol := newSolution(snap, dof, d, k0, f0)
	if s.condition {
		sol.cond, sol.hasCond = ConditionEstimate(k), true
		s.logger.Debug("condition estimate", "cond", sol.cond)
	}

	s.solution, s.fresh = sol, true
	s.enter(StateSolved)
	return sol, nil
}

func singular(err error) error {
	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	return err
}

func (s *Solver) enter(st State) {
	s.logger.Debug("solver state", "from", s.state, "to", st)
	s.state = st
}

func (s *Solver) fail(err error) error {
	s.logger.Debug("solve failed", "state", s.state, "reason", ReasonOf(err), "err", err)
	s.lastErr = err
	s.fresh = false
	s.state = StateUnsolved
	return err
}

// State returns the current state.
func (s *Solver) State() State { return s.state }

// LastError returns the error of the most recent Solve, or nil.
func (s *Solver) LastError() error { return s.lastErr }

// Result returns the most recent successful solution. fresh is false when
// a later Solve failed, in which case the solution describes an earlier
// version of the structure.
func (s *Solver) Result() (sol *Solution, fresh bool) { return s.solution, s.fresh }

// Connected reports whether st is a single connected piece.
func (s *Solver) Connected(st Structure) bool { return Connected(st) }

// Overlaps lists element pairs that cross or overlap geometrically.
func (s *Solver) Overlaps(st Structure) []OverlapPair { return Overlaps(st) }
