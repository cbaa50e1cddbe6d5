package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	RunE:  runVersion,
}

func runVersion(_ *cobra.Command, _ []string) error {
	fmt.Println("medicare-planner", server.Version)
	return nil
}
