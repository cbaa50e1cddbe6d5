package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/catalog"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/config"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/location"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// FacilitiesTool handles the find_medicare_facilities MCP tool.
// It filters the built-in facility directory; the location client is
// carried for the upcoming live-distance lookup and only changes the
// report footer for now.
type FacilitiesTool struct {
	loc *location.Client
}

// NewFacilitiesTool creates a FacilitiesTool with the given location client.
func NewFacilitiesTool(loc *location.Client) *FacilitiesTool {
	return &FacilitiesTool{loc: loc}
}

// Definition returns the MCP tool definition for registration.
func (t *FacilitiesTool) Definition() mcp.Tool {
	return mcp.NewTool("find_medicare_facilities",
		mcp.WithDescription(
			"Find Medicare-participating facilities near a location. "+
				"Filters combine: a facility must satisfy every filter you set. "+
				"Quality and infrastructure are minimums (asking for 'medium' also returns 'high'); "+
				"price is matched exactly.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Patient location: a city and state like 'Baltimore, MD' or a street address"),
		),
		mcp.WithNumber("radius",
			mcp.Description("Search radius in meters"),
			mcp.DefaultNumber(catalog.DefaultRadiusMeters),
			mcp.Min(0),
		),
		mcp.WithArray("treatment_needs",
			mcp.Description("Required treatments or services, e.g. 'oncology', 'emergency care'. A facility matches if it offers any of them."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("care_quality",
			mcp.Description("Minimum care quality rating"),
			mcp.Enum("high", "medium", "any"),
			mcp.DefaultString("any"),
		),
		mcp.WithString("price_range",
			mcp.Description("Expected out-of-pocket price bucket"),
			mcp.Enum("low", "moderate", "high", "any"),
			mcp.DefaultString("any"),
		),
		mcp.WithArray("facility_types",
			mcp.Description("Acceptable facility types; leave empty to accept all"),
			mcp.Items(map[string]any{
				"type": "string",
				"enum": []string{"hospital", "clinic", "specialized_center", "rehabilitation_center"},
			}),
		),
		mcp.WithString("infrastructure",
			mcp.Description("Minimum equipment and infrastructure grade"),
			mcp.Enum("excellent", "good", "any"),
			mcp.DefaultString("any"),
		),
	)
}

// Handle processes the find_medicare_facilities tool call.
func (t *FacilitiesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in catalog.SearchInput
	if err := schema.Decode(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	found := catalog.Search(in)
	return mcp.NewToolResultText(t.render(in, found)), nil
}

func (t *FacilitiesTool) render(in catalog.SearchInput, found []catalog.Facility) string {
	var b strings.Builder

	b.WriteString("# Medicare Facility Search 🏥\n\n")
	fmt.Fprintf(&b, "**Location:** %s (within %s)\n", in.Location, formatKm(in.RadiusMeters))
	if len(in.TreatmentNeeds) > 0 {
		fmt.Fprintf(&b, "**Treatment needs:** %s\n", strings.Join(in.TreatmentNeeds, ", "))
	}
	fmt.Fprintf(&b, "**Matches:** %d of %d facilities\n", len(found), len(catalog.Facilities()))

	if len(found) == 0 {
		b.WriteString("\nNo facility satisfied every filter. Widen the price range or drop a filter and search again.\n")
		return b.String()
	}

	for i, f := range found {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, f.Name)
		fmt.Fprintf(&b, "- **Type:** %s\n", f.Kind)
		fmt.Fprintf(&b, "- **Address:** %s\n", f.Address)
		fmt.Fprintf(&b, "- **Phone:** %s\n", f.Phone)
		fmt.Fprintf(&b, "- **Services:** %s\n", strings.Join(f.Services, ", "))
		fmt.Fprintf(&b, "- **Care quality:** %s\n", f.Quality)
		fmt.Fprintf(&b, "- **Price range:** %s\n", f.Price)
		fmt.Fprintf(&b, "- **Infrastructure:** %s\n", f.Infrastructure)
	}

	if !t.loc.Enabled() {
		fmt.Fprintf(&b, "\n_Results come from the built-in directory. Set %s to enable live distance data._\n", config.EnvMapsAPIKey)
	}
	return b.String()
}
