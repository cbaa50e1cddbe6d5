// Package cli implements the medicare-planner command line interface.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "medicare-planner",
	Short: "MCP server for emergency Medicare care planning",
	Long: `medicare-planner serves Model Context Protocol tools for building
emergency care plans: facility search, coverage checks, emergency
contacts, transport scheduling, and a sequential-thinking tracker.

The server speaks MCP over stdio. Point an MCP host at it:

  {
    "mcpServers": {
      "medicare-planner": {
        "command": "medicare-planner",
        "args": ["serve"]
      }
    }
  }`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns an error; the exit code is
// handled by main.
func Execute() error {
	return rootCmd.Execute()
}
