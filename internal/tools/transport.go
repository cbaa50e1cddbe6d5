package tools

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/manolaz/emergency-medicare-planner-mcp-server/internal/schema"
)

// newBookingID returns a fresh six-digit booking number. Variable so
// tests can pin it.
var newBookingID = func() int {
	return 100000 + rand.IntN(900000)
}

// Urgency levels accepted by schedule_emergency_transport.
const (
	UrgencyCritical = "critical"
	UrgencyUrgent   = "urgent"
	UrgencyStandard = "standard"
)

// transportETAs maps each urgency level to its dispatch window.
var transportETAs = map[string]string{
	UrgencyCritical: "8-12 minutes",
	UrgencyUrgent:   "15-25 minutes",
	UrgencyStandard: "30-60 minutes",
}

// TransportTool handles the schedule_emergency_transport MCP tool. It
// issues a planning reservation: a booking number plus the dispatch
// window for the requested urgency. No dispatcher is contacted.
type TransportTool struct{}

// NewTransportTool creates a TransportTool.
func NewTransportTool() *TransportTool {
	return &TransportTool{}
}

type transportInput struct {
	PatientLocation     string `mapstructure:"patient_location"`
	DestinationFacility string `mapstructure:"destination_facility"`
	MedicalCondition    string `mapstructure:"medical_condition"`
	Urgency             string `mapstructure:"urgency"`
}

func (in *transportInput) Validate() error {
	if in.PatientLocation == "" {
		return schema.Required("patient_location")
	}
	if in.MedicalCondition == "" {
		return schema.Required("medical_condition")
	}
	if in.Urgency == "" {
		return schema.Required("urgency")
	}
	if _, ok := transportETAs[in.Urgency]; !ok {
		return schema.Invalid("urgency", fmt.Sprintf("must be one of: %s, %s, %s",
			UrgencyCritical, UrgencyUrgent, UrgencyStandard))
	}
	return nil
}

// Definition returns the MCP tool definition for registration.
func (t *TransportTool) Definition() mcp.Tool {
	return mcp.NewTool("schedule_emergency_transport",
		mcp.WithDescription(
			"Schedule medical transport for a patient: pickup location, destination, "+
				"condition, and urgency. Returns a booking number and the expected "+
				"dispatch window. For life-threatening emergencies call 911 directly.",
		),
		mcp.WithString("patient_location",
			mcp.Required(),
			mcp.Description("Pickup address or location of the patient"),
		),
		mcp.WithString("destination_facility",
			mcp.Description("Destination facility name; leave empty for the nearest appropriate facility"),
		),
		mcp.WithString("medical_condition",
			mcp.Required(),
			mcp.Description("Short description of the patient's condition, e.g. 'chest pain, conscious'"),
		),
		mcp.WithString("urgency",
			mcp.Required(),
			mcp.Description("Dispatch priority: critical (life-threatening), urgent (needs care soon), standard (scheduled transfer)"),
			mcp.Enum(UrgencyCritical, UrgencyUrgent, UrgencyStandard),
		),
	)
}

// Handle processes the schedule_emergency_transport tool call.
func (t *TransportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in transportInput
	if err := schema.Decode(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf(
		"# Emergency Transport Scheduled 🚑\n\n"+
			"**Booking number:** %d\n"+
			"**Pickup:** %s\n"+
			"**Destination:** %s\n"+
			"**Condition:** %s\n"+
			"**Urgency:** %s\n"+
			"**Dispatch window:** %s\n\n"+
			"Keep the phone line open and the pickup point accessible. "+
			"Quote the booking number when transport arrives.\n\n"+
			"_Planning reservation only. If the condition worsens, call 911._",
		newBookingID(),
		in.PatientLocation,
		orDefault(in.DestinationFacility, "nearest appropriate facility"),
		in.MedicalCondition,
		in.Urgency,
		transportETAs[in.Urgency],
	)

	return mcp.NewToolResultText(response), nil
}
