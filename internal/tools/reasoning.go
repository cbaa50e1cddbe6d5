package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/planning"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// ReasoningTool handles the sequential_thinking MCP tool: the only
// stateful tool in the server. Each call records one reasoning step in
// the session and returns a JSON summary of the session so far. A
// banner for every step goes to the trace writer, never to stdout,
// which carries the protocol stream.
type ReasoningTool struct {
	session *planning.Session
	trace   io.Writer
}

// NewReasoningTool creates a ReasoningTool recording into session.
// A nil trace defaults to stderr.
func NewReasoningTool(session *planning.Session, trace io.Writer) *ReasoningTool {
	if trace == nil {
		trace = os.Stderr
	}
	return &ReasoningTool{session: session, trace: trace}
}

// Definition returns the MCP tool definition for registration.
func (t *ReasoningTool) Definition() mcp.Tool {
	return mcp.NewTool("sequential_thinking",
		mcp.WithDescription(
			"Work through an emergency care plan step by step. Each call records one "+
				"reasoning step and returns the session state. Steps can revise earlier "+
				"ones (is_revision + revises_step) or fork alternatives onto a named "+
				"branch (branch_from_step + branch_id). The total_steps estimate is "+
				"yours to adjust: going past it simply raises it. Set next_step_needed "+
				"to false only when the plan is complete.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The current reasoning step"),
		),
		mcp.WithNumber("step_number",
			mcp.Required(),
			mcp.Description("Position of this step, starting at 1. May revisit earlier numbers."),
			mcp.Min(1),
		),
		mcp.WithNumber("total_steps",
			mcp.Required(),
			mcp.Description("Current estimate of how many steps the plan needs"),
			mcp.Min(1),
		),
		mcp.WithBoolean("next_step_needed",
			mcp.Required(),
			mcp.Description("Whether another reasoning step follows this one"),
		),
		mcp.WithBoolean("is_revision",
			mcp.Description("Marks this step as revising an earlier one"),
		),
		mcp.WithNumber("revises_step",
			mcp.Description("Step number being revised, when is_revision is set"),
			mcp.Min(1),
		),
		mcp.WithNumber("branch_from_step",
			mcp.Description("Step number this alternative branches from"),
			mcp.Min(1),
		),
		mcp.WithString("branch_id",
			mcp.Description("Label naming the branch, e.g. 'alt-1'. Reuse a label to extend that branch."),
		),
		mcp.WithBoolean("needs_more_steps",
			mcp.Description("Set when the plan will need steps beyond the current estimate"),
		),
	)
}

// Handle processes the sequential_thinking tool call. Validation
// failures leave the session untouched.
func (t *ReasoningTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in planning.StepInput
	if err := schema.Decode(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	step := in.Step()
	summary := t.session.Record(step)

	// The banner shows the estimate as stored, after any lift.
	step.TotalSteps = summary.TotalSteps
	fmt.Fprintln(t.trace, planning.Render(step))

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding session summary: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
