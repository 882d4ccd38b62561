package validation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Summary joins errors as "field: message" pairs.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// Schema is a compiled JSON schema safe for concurrent use.
type Schema struct {
	def      map[string]interface{}
	once     sync.Once
	compiled *gojsonschema.Schema
	err      error
}

func NewSchema(def map[string]interface{}) *Schema {
	return &Schema{def: def}
}

// Definition exposes the raw schema, e.g. for the activity registry.
func (s *Schema) Definition() map[string]interface{} {
	return s.def
}

func (s *Schema) compile() (*gojsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.def))
	})
	return s.compiled, s.err
}

// ValidateJSON validates a raw JSON document.
func (s *Schema) ValidateJSON(raw []byte) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewBytesLoader(raw))
}

// ValidateValue validates an already decoded value (map, struct, slice).
func (s *Schema) ValidateValue(v interface{}) (*ValidationResult, error) {
	return s.validate(gojsonschema.NewGoLoader(v))
}

func (s *Schema) validate(doc gojsonschema.JSONLoader) (*ValidationResult, error) {
	compiled, err := s.compile()
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	result, err := compiled.Validate(doc)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			if prop, ok := e.Details()["property"].(string); ok {
				field = prop
			}
		}
		out.Errors = append(out.Errors, ValidationError{
			Field:   field,
			Message: e.Description(),
			Code:    strings.ToUpper(e.Type()),
		})
	}
	sort.SliceStable(out.Errors, func(i, j int) bool { return out.Errors[i].Field < out.Errors[j].Field })
	return out, nil
}

func nonNegativeNumber(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "minimum": 0, "description": desc}
}

func stringList(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": desc,
	}
}

// ProfileSchema describes a career profile at the intake boundary.
var ProfileSchema = NewSchema(map[string]interface{}{
	"$schema":  "http://json-schema.org/draft-07/schema#",
	"type":     "object",
	"required": []interface{}{"currentTitle", "dreamRole"},
	"properties": map[string]interface{}{
		"currentTitle":        map[string]interface{}{"type": "string", "minLength": 1},
		"yearsExperience":     map[string]interface{}{"type": "integer", "minimum": 0},
		"industry":            map[string]interface{}{"type": "string"},
		"location":            map[string]interface{}{"type": "string"},
		"skills":              stringList("Skills the user already has"),
		"monthlySalary":       nonNegativeNumber("Take-home salary per month"),
		"monthlyExpenses":     nonNegativeNumber("Living expenses per month"),
		"savings":             nonNegativeNumber("Liquid savings"),
		"monthlyDebtPayments": nonNegativeNumber("EMIs and other debt per month"),
		"dreamRole":           map[string]interface{}{"type": "string", "minLength": 1},
		"pivotReason":         map[string]interface{}{"type": "string"},
		"riskTolerance":       map[string]interface{}{"type": "integer", "minimum": 1, "maximum": 5},
		"weeklyLearningHours": nonNegativeNumber("Hours per week available for upskilling"),
		"constraints":         stringList("family, location, education, age, health, visa"),
	},
})
