package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func explanationTestSchema() *Schema {
	return &Schema{
		Name:        "word-card",
		Description: "A word study card",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":     map[string]any{"type": "string"},
				"grade":    map[string]any{"type": "integer", "minimum": 1},
				"cefr":     map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1"}},
				"examples": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"word", "grade"},
		},
	}
}

func TestValidateResponseValid(t *testing.T) {
	raw := json.RawMessage(`{"word":"apple","grade":1,"cefr":"A1","examples":["I ate an apple."]}`)
	if err := validateResponse(explanationTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseOptionalOmitted(t *testing.T) {
	raw := json.RawMessage(`{"word":"dog","grade":2}`)
	if err := validateResponse(explanationTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"word":"cat"}`)
	err := validateResponse(explanationTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"word":"fish","grade":"one"}`)
	err := validateResponse(explanationTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseBadEnum(t *testing.T) {
	raw := json.RawMessage(`{"word":"bird","grade":3,"cefr":"C2"}`)
	if err := validateResponse(explanationTestSchema(), raw); err == nil {
		t.Fatal("expected error for out-of-enum value")
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(explanationTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
