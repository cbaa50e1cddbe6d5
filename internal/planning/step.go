// Package planning tracks a sequential-thinking session: an append-only
// history of reasoning steps with optional revisions and named branches.
// All state lives in memory and belongs to a single server process; a
// restart starts the reasoning over.
package planning

import (
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// Step is one recorded unit of reasoning.
type Step struct {
	Text           string `json:"text"`
	Number         int    `json:"step_number"`
	TotalSteps     int    `json:"total_steps"`
	NextStepNeeded bool   `json:"next_step_needed"`
	IsRevision     bool   `json:"is_revision,omitempty"`
	RevisesStep    int    `json:"revises_step,omitempty"`
	BranchFromStep int    `json:"branch_from_step,omitempty"`
	BranchID       string `json:"branch_id,omitempty"`
	NeedsMoreSteps bool   `json:"needs_more_steps,omitempty"`
}

// Branched reports whether the step opens or continues a named branch.
// Both halves of the pair are needed; a step carrying only one of them
// is recorded in the main history but joins no branch.
func (s Step) Branched() bool {
	return s.BranchFromStep > 0 && s.BranchID != ""
}

// StepInput is the wire shape of a step as sent by the client.
// NextStepNeeded is a pointer so a missing flag can be told apart from
// an explicit false.
type StepInput struct {
	Text           string `mapstructure:"text"`
	StepNumber     int    `mapstructure:"step_number"`
	TotalSteps     int    `mapstructure:"total_steps"`
	NextStepNeeded *bool  `mapstructure:"next_step_needed"`
	IsRevision     bool   `mapstructure:"is_revision"`
	RevisesStep    int    `mapstructure:"revises_step"`
	BranchFromStep int    `mapstructure:"branch_from_step"`
	BranchID       string `mapstructure:"branch_id"`
	NeedsMoreSteps bool   `mapstructure:"needs_more_steps"`
}

// Validate checks required fields and ranges in wire order and returns
// the first offending field. Step numbers may arrive out of order or
// repeat; only their sign is policed here.
func (in *StepInput) Validate() error {
	if in.Text == "" {
		return schema.Invalid("text", "must be a non-empty string")
	}
	if in.StepNumber < 1 {
		return schema.Invalid("step_number", "must be a positive integer")
	}
	if in.TotalSteps < 1 {
		return schema.Invalid("total_steps", "must be a positive integer")
	}
	if in.NextStepNeeded == nil {
		return schema.Required("next_step_needed")
	}
	if in.RevisesStep < 0 {
		return schema.Invalid("revises_step", "must be a positive integer")
	}
	if in.BranchFromStep < 0 {
		return schema.Invalid("branch_from_step", "must be a positive integer")
	}
	return nil
}

// Step converts validated input into the recorded form.
func (in *StepInput) Step() Step {
	return Step{
		Text:           in.Text,
		Number:         in.StepNumber,
		TotalSteps:     in.TotalSteps,
		NextStepNeeded: *in.NextStepNeeded,
		IsRevision:     in.IsRevision,
		RevisesStep:    in.RevisesStep,
		BranchFromStep: in.BranchFromStep,
		BranchID:       in.BranchID,
		NeedsMoreSteps: in.NeedsMoreSteps,
	}
}
