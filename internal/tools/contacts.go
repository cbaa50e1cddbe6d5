package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/catalog"
	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// ContactsTool handles the get_emergency_contacts MCP tool. The
// directory is national and ships with the binary; the location scopes
// the report heading, not the numbers.
type ContactsTool struct{}

// NewContactsTool creates a ContactsTool.
func NewContactsTool() *ContactsTool {
	return &ContactsTool{}
}

type contactsInput struct {
	Location     string   `mapstructure:"location"`
	ServiceTypes []string `mapstructure:"service_types"`
}

func (in *contactsInput) Validate() error {
	if in.Location == "" {
		return schema.Required("location")
	}
	return nil
}

// Definition returns the MCP tool definition for registration.
func (t *ContactsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_emergency_contacts",
		mcp.WithDescription(
			"Get emergency and Medicare contact numbers for a location: "+
				"911 guidance, poison control, crisis lines, Medicare helplines, and transport referrals.",
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Location the contacts are needed for, e.g. 'Austin, TX'"),
		),
		mcp.WithArray("service_types",
			mcp.Description("Services of interest, e.g. 'ambulance', 'poison control'. Echoed in the report to focus it."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the get_emergency_contacts tool call.
func (t *ContactsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in contactsInput
	if err := schema.Decode(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Emergency Contacts — %s 📞\n\n", in.Location)
	if len(in.ServiceTypes) > 0 {
		fmt.Fprintf(&b, "**Requested services:** %s\n\n", strings.Join(in.ServiceTypes, ", "))
	}
	b.WriteString("For life-threatening emergencies, call **911** first.\n")

	for _, group := range catalog.EmergencyContacts() {
		fmt.Fprintf(&b, "\n## %s\n\n", group.Title)
		for _, c := range group.Contacts {
			fmt.Fprintf(&b, "- **%s:** %s", c.Service, c.Number)
			if c.Note != "" {
				fmt.Fprintf(&b, " (%s)", c.Note)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n_National numbers; your local area may list additional services under 211._")
	return mcp.NewToolResultText(b.String()), nil
}
