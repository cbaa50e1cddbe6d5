package tools

import (
	"context"
	"strings"
	"testing"
)

// pinBookingID makes booking numbers deterministic for a test.
func pinBookingID(t *testing.T, id int) {
	t.Helper()
	orig := newBookingID
	newBookingID = func() int { return id }
	t.Cleanup(func() { newBookingID = orig })
}

func TestTransportTool_Definition(t *testing.T) {
	def := NewTransportTool().Definition()

	if def.Name != "schedule_emergency_transport" {
		t.Errorf("tool name = %q, want %q", def.Name, "schedule_emergency_transport")
	}
	requireParam(t, def, "patient_location")
	requireParam(t, def, "medical_condition")
	requireParam(t, def, "urgency")
	if _, ok := def.InputSchema.Properties["destination_facility"]; !ok {
		t.Error("missing 'destination_facility' parameter")
	}
}

func TestTransportTool_Schedule(t *testing.T) {
	pinBookingID(t, 483920)
	tool := NewTransportTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"patient_location":     "48 Elm Avenue",
		"destination_facility": "City General Hospital",
		"medical_condition":    "chest pain, conscious",
		"urgency":              "critical",
	}))
	mustNotError(t, result, err)

	text := resultText(result)
	if !strings.Contains(text, "483920") {
		t.Errorf("response missing the booking number:\n%s", text)
	}
	if !strings.Contains(text, "48 Elm Avenue") || !strings.Contains(text, "City General Hospital") {
		t.Errorf("response should echo pickup and destination:\n%s", text)
	}
	if !strings.Contains(text, "8-12 minutes") {
		t.Errorf("critical urgency should quote the 8-12 minute window:\n%s", text)
	}
}

func TestTransportTool_DispatchWindows(t *testing.T) {
	tool := NewTransportTool()
	cases := map[string]string{
		"critical": "8-12 minutes",
		"urgent":   "15-25 minutes",
		"standard": "30-60 minutes",
	}
	for urgency, window := range cases {
		result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
			"patient_location":  "somewhere",
			"medical_condition": "stable",
			"urgency":           urgency,
		}))
		mustNotError(t, result, err)
		if text := resultText(result); !strings.Contains(text, window) {
			t.Errorf("urgency %s: response missing %q:\n%s", urgency, window, text)
		}
	}
}

func TestTransportTool_DefaultDestination(t *testing.T) {
	tool := NewTransportTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"patient_location":  "48 Elm Avenue",
		"medical_condition": "fall, hip pain",
		"urgency":           "urgent",
	}))
	mustNotError(t, result, err)

	if text := resultText(result); !strings.Contains(text, "nearest appropriate facility") {
		t.Errorf("empty destination should fall back:\n%s", text)
	}
}

func TestTransportTool_MissingArguments(t *testing.T) {
	tool := NewTransportTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"medical_condition": "stable",
		"urgency":           "standard",
	}))
	mustBeToolError(t, result, err, "'patient_location' is required")

	result, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"patient_location": "somewhere",
		"urgency":          "standard",
	}))
	mustBeToolError(t, result, err, "'medical_condition' is required")

	result, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"patient_location":  "somewhere",
		"medical_condition": "stable",
	}))
	mustBeToolError(t, result, err, "'urgency' is required")
}

func TestTransportTool_InvalidUrgency(t *testing.T) {
	tool := NewTransportTool()

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"patient_location":  "somewhere",
		"medical_condition": "stable",
		"urgency":           "immediately",
	}))
	mustBeToolError(t, result, err, "'urgency' must be one of")
}

func TestTransportTool_BookingIDRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		id := newBookingID()
		if id < 100000 || id > 999999 {
			t.Fatalf("booking ID %d is not six digits", id)
		}
	}
}
