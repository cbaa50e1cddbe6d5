// medicare-planner: Emergency Medicare Planner MCP Server
//
// An MCP server that helps AI assistants build emergency care plans
// for Medicare patients: find suitable facilities, check coverage,
// collect emergency contacts, schedule transport, and track the
// reasoning behind the plan step by step.
//
// Usage:
//
//	medicare-planner serve     # Start MCP server (stdio transport)
//	medicare-planner version   # Print version
package main

import (
	"fmt"
	"os"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
