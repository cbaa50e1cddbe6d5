// Package prompts implements the MCP prompt handlers.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// PlanPrompt handles the emergency-plan MCP prompt. It steers the AI
// through the full planning workflow: reason with sequential_thinking,
// then gather facilities, coverage, contacts, and transport.
type PlanPrompt struct{}

// NewPlanPrompt creates a PlanPrompt.
func NewPlanPrompt() *PlanPrompt {
	return &PlanPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PlanPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("emergency-plan",
		mcp.WithPromptDescription(
			"Build an emergency medical care plan for a Medicare patient: "+
				"find suitable facilities, check coverage, line up transport, and "+
				"collect the emergency contacts, reasoning step by step throughout.",
		),
		mcp.WithArgument("situation",
			mcp.ArgumentDescription("Brief description of the medical situation, e.g. 'suspected stroke, stable'"),
		),
		mcp.WithArgument("location",
			mcp.ArgumentDescription("Where the patient is, e.g. 'Baltimore, MD'"),
		),
	)
}

// Handle processes the emergency-plan prompt request.
func (p *PlanPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	situation := "a medical situation needing urgent planning"
	location := "the patient's location"
	if args := req.Params.Arguments; args != nil {
		if s, ok := args["situation"]; ok && s != "" {
			situation = s
		}
		if l, ok := args["location"]; ok && l != "" {
			location = l
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Emergency care plan: %s", situation),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Help me build an emergency Medicare care plan for: %s (location: %s).\n\n"+
						"Work through it with the planning tools:\n"+
						"1. Use `sequential_thinking` to lay out the plan step by step. Revise steps "+
						"as new information arrives and branch with a branch_id when weighing alternatives.\n"+
						"2. Run `find_medicare_facilities` for %s with the treatment needs you identify.\n"+
						"3. Run `check_medicare_coverage` for each treatment under consideration.\n"+
						"4. If the situation calls for transport, run `schedule_emergency_transport` "+
						"with the right urgency level.\n"+
						"5. Finish with `get_emergency_contacts` for %s and summarize the whole plan.\n\n"+
						"If anything sounds immediately life-threatening, tell me to call 911 before anything else.",
					situation, location, location, location,
				)),
			},
		},
	}, nil
}
