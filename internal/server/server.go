// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates the shared session and
// location client and injects them into the tools and resources that
// depend on them. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/config"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/location"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/planning"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/prompts"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/resources"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(cfg *config.Config) (*server.MCPServer, error) {
	// --- Create shared dependencies ---

	loc, err := location.New(cfg.MapsAPIKey)
	if err != nil {
		return nil, fmt.Errorf("configuring location services: %w", err)
	}
	if !loc.Enabled() {
		slog.Warn("location services disabled, facility search uses the built-in directory only",
			"hint", "set "+config.EnvMapsAPIKey+" to enable")
	}

	// One reasoning session per server process. It lives in memory and
	// resets on restart.
	session := planning.NewSession()

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"emergency-medicare-planner",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register planning tools ---

	facilitiesTool := tools.NewFacilitiesTool(loc)
	s.AddTool(facilitiesTool.Definition(), facilitiesTool.Handle)

	coverageTool := tools.NewCoverageTool()
	s.AddTool(coverageTool.Definition(), coverageTool.Handle)

	contactsTool := tools.NewContactsTool()
	s.AddTool(contactsTool.Definition(), contactsTool.Handle)

	transportTool := tools.NewTransportTool()
	s.AddTool(transportTool.Definition(), transportTool.Handle)

	// nil trace writer = step banners go to stderr, away from the
	// stdout protocol stream.
	reasoningTool := tools.NewReasoningTool(session, nil)
	s.AddTool(reasoningTool.Definition(), reasoningTool.Handle)

	// --- Register prompts ---

	planPrompt := prompts.NewPlanPrompt()
	s.AddPrompt(planPrompt.Definition(), planPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(session)
	s.AddResource(resourceHandler.FacilitiesResource(), resourceHandler.HandleFacilities)
	s.AddResource(resourceHandler.ContactsResource(), resourceHandler.HandleContacts)
	s.AddResource(resourceHandler.SessionResource(), resourceHandler.HandleSession)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the planner effectively.
func serverInstructions() string {
	return `You have access to the Emergency Medicare Planner, an MCP server for
building emergency care plans for Medicare patients.

## WHEN TO ACTIVATE the planner

Proactively suggest the planner when the user:
- Describes a medical situation that needs a care plan
- Asks which facilities, specialists, or hospitals fit a condition
- Asks what Medicare covers for a treatment
- Needs medical transport arranged or emergency numbers collected

For an active medical emergency, ALWAYS tell the user to call 911 first.
The planner organizes information; it does not dispatch real services.

## Tools

- sequential_thinking — your reasoning notebook. Record each planning
  step as you work. Revise earlier steps when new information arrives
  (is_revision + revises_step) and fork alternatives onto named branches
  (branch_from_step + branch_id). The session keeps every step; nothing
  is overwritten.
- find_medicare_facilities — search the facility directory by location,
  treatment needs, care quality, price range, facility type, and
  infrastructure. Filters combine; quality grades are minimums, price
  matches exactly.
- check_medicare_coverage — coverage summary for a treatment in a state.
  Treat the result as a planning estimate and verify with 1-800-MEDICARE.
- schedule_emergency_transport — reserve transport with a booking number
  and a dispatch window matching the urgency (critical, urgent, standard).
- get_emergency_contacts — national emergency and Medicare numbers for
  a location.

## Recommended workflow

1. Start a sequential_thinking session: lay out what you know, what you
   need to find out, and the first total_steps estimate. Going past the
   estimate is fine — it adjusts automatically.
2. Search facilities matching the patient's treatment needs, then check
   coverage for each treatment you shortlist.
3. Branch the reasoning when comparing alternatives (e.g. branch_id
   'clinic-route' vs 'hospital-route') and record which branch wins.
4. Schedule transport only when the situation calls for it, with an
   honest urgency level.
5. Close with get_emergency_contacts and a summary of the whole plan,
   ending the session with next_step_needed=false.

## Important rules

- Facility, coverage, and transport results come from built-in planning
  data — present them as planning aids, never as medical advice or a
  benefits guarantee.
- Keep step_number sequenced as you reason, but revisit earlier numbers
  freely when revising.
- One reasoning session per server run; it resets when the server restarts.`
}
