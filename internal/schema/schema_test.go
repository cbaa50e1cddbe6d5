package schema

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Name  string   `mapstructure:"name"`
	Count int      `mapstructure:"count"`
	Tags  []string `mapstructure:"tags"`
	Loud  bool     `mapstructure:"loud"`
}

func (in *sampleInput) Validate() error {
	if in.Name == "" {
		return Required("name")
	}
	if in.Count < 0 {
		return Invalid("count", "must not be negative")
	}
	return nil
}

func TestDecodeFillsTypedStruct(t *testing.T) {
	in := &sampleInput{}
	args := map[string]any{
		"name":  "triage",
		"count": float64(3), // JSON numbers always arrive as float64
		"tags":  []any{"a", "b"},
		"loud":  true,
	}
	if err := Decode(args, in); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if in.Name != "triage" || in.Count != 3 || !in.Loud {
		t.Errorf("decoded struct = %+v", in)
	}
	if len(in.Tags) != 2 || in.Tags[0] != "a" {
		t.Errorf("tags = %v, want [a b]", in.Tags)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	in := &sampleInput{}
	args := map[string]any{"name": "x", "unrelated": "ignored"}
	if err := Decode(args, in); err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if in.Name != "x" {
		t.Errorf("Name = %q, want %q", in.Name, "x")
	}
}

func TestDecodeRejectsWrongType(t *testing.T) {
	in := &sampleInput{}
	err := Decode(map[string]any{"name": "x", "count": "three"}, in)
	if err == nil {
		t.Fatal("expected error for string count")
	}
	fe, ok := err.(*FieldError)
	if !ok {
		t.Fatalf("error type = %T, want *FieldError", err)
	}
	if fe.Field != "count" {
		t.Errorf("Field = %q, want %q", fe.Field, "count")
	}
	if !strings.Contains(fe.Error(), "'count'") {
		t.Errorf("message %q does not name the field", fe.Error())
	}
}

func TestDecodeRejectsWrongElementType(t *testing.T) {
	in := &sampleInput{}
	err := Decode(map[string]any{"name": "x", "tags": "not-a-list"}, in)
	if err == nil {
		t.Fatal("expected error for scalar tags")
	}
	if fe, ok := err.(*FieldError); !ok || fe.Field != "tags" {
		t.Errorf("error = %v, want FieldError on tags", err)
	}
}

func TestDecodeRunsValidate(t *testing.T) {
	in := &sampleInput{}
	err := Decode(map[string]any{"count": float64(1)}, in)
	if err == nil {
		t.Fatal("expected required-field error")
	}
	if got := err.Error(); got != "'name' is required" {
		t.Errorf("error = %q, want %q", got, "'name' is required")
	}
}

func TestFieldErrorWithoutField(t *testing.T) {
	e := &FieldError{Reason: "arguments must be an object"}
	if got := e.Error(); got != "arguments must be an object" {
		t.Errorf("Error() = %q", got)
	}
}
