// Package tools implements the MCP tool handlers for the planner.
//
// Each tool is a struct that receives its dependencies via constructor
// (DIP) and exposes a Definition for registration plus a Handle
// compatible with mcp-go's CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on the session, catalog, and location handle they are given
// - Arguments decode through internal/schema; bad input is a tool error,
//   a non-nil Go error means the server itself failed
package tools

import "fmt"

// formatKm renders a radius in meters as kilometers for reports.
func formatKm(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// orDefault substitutes fallback for an empty string.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
