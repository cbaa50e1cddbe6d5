package planning

import "sync"

// Session holds the reasoning state for one server process. History is
// append-only: revisions and branches add steps, they never rewrite or
// remove earlier ones.
type Session struct {
	mu          sync.Mutex
	history     []Step
	branches    map[string][]Step
	branchOrder []string
}

// Summary is the structured result returned after each recorded step.
type Summary struct {
	StepNumber     int      `json:"step_number"`
	TotalSteps     int      `json:"total_steps"`
	NextStepNeeded bool     `json:"next_step_needed"`
	Branches       []string `json:"branches"`
	HistoryLength  int      `json:"history_length"`
}

func NewSession() *Session {
	return &Session{branches: make(map[string][]Step)}
}

// Record normalizes and appends the step, files it under its branch if
// it names one, and returns the post-append summary. A validated step
// is always accepted; Record cannot fail.
func (s *Session) Record(step Step) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A step numbered past the estimate proves the estimate wrong, so
	// the estimate rises to match. It never shrinks.
	if step.Number > step.TotalSteps {
		step.TotalSteps = step.Number
	}

	s.history = append(s.history, step)

	if step.Branched() {
		if _, seen := s.branches[step.BranchID]; !seen {
			s.branchOrder = append(s.branchOrder, step.BranchID)
		}
		s.branches[step.BranchID] = append(s.branches[step.BranchID], step)
	}

	return Summary{
		StepNumber:     step.Number,
		TotalSteps:     step.TotalSteps,
		NextStepNeeded: step.NextStepNeeded,
		Branches:       s.branchLabelsLocked(),
		HistoryLength:  len(s.history),
	}
}

// Snapshot reports the current session state without recording
// anything. Before the first step it returns a zero summary with an
// empty branch list.
func (s *Session) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Branches:      s.branchLabelsLocked(),
		HistoryLength: len(s.history),
	}
	if n := len(s.history); n > 0 {
		last := s.history[n-1]
		sum.StepNumber = last.Number
		sum.TotalSteps = last.TotalSteps
		sum.NextStepNeeded = last.NextStepNeeded
	}
	return sum
}

// History returns a copy of every recorded step in arrival order.
func (s *Session) History() []Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Step, len(s.history))
	copy(out, s.history)
	return out
}

// BranchSteps returns a copy of the steps filed under the given branch
// label, in arrival order. Unknown labels yield an empty slice.
func (s *Session) BranchSteps(label string) []Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	steps := s.branches[label]
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// branchLabelsLocked lists branch labels in first-seen order. The
// caller must hold mu. The slice is freshly allocated and never nil so
// it marshals as [].
func (s *Session) branchLabelsLocked() []string {
	return append([]string{}, s.branchOrder...)
}
