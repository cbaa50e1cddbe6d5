// Package resources implements the MCP resource handlers.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (medicare://..., planner://...)
// following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/catalog"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/planning"
)

// Handler serves the planner's resource endpoints.
type Handler struct {
	session *planning.Session
}

// NewHandler creates a resource Handler reading from the given session.
func NewHandler(session *planning.Session) *Handler {
	return &Handler{session: session}
}

// FacilitiesResource describes the built-in facility directory.
func (h *Handler) FacilitiesResource() mcp.Resource {
	return mcp.NewResource(
		"medicare://facilities",
		"Medicare Facility Directory",
		mcp.WithResourceDescription("The built-in set of Medicare-participating facilities with quality, price, and service attributes"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleFacilities returns the facility directory as JSON.
func (h *Handler) HandleFacilities(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.Facilities())
}

// ContactsResource describes the emergency contact directory.
func (h *Handler) ContactsResource() mcp.Resource {
	return mcp.NewResource(
		"emergency://contacts",
		"Emergency Contact Directory",
		mcp.WithResourceDescription("National emergency and Medicare contact numbers"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleContacts returns the contact directory as JSON.
func (h *Handler) HandleContacts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, catalog.EmergencyContacts())
}

// SessionResource describes the live reasoning session state.
func (h *Handler) SessionResource() mcp.Resource {
	return mcp.NewResource(
		"planner://session",
		"Planning Session State",
		mcp.WithResourceDescription("Current sequential-thinking session: last step, branch labels, and history length"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleSession returns the session snapshot as JSON.
func (h *Handler) HandleSession(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.session.Snapshot())
}

// jsonResource marshals v into a single JSON resource body.
func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
