// internal/workers/career/analyze-career-transition/models.go
package analyzecareertransition

import (
	"encoding/json"

	"career-pivot/internal/models"
)

type Input struct {
	UserID  string          `json:"userId"`
	Profile json.RawMessage `json:"profile"`
	// Permissions come from check-analysis-quota. When present, gated
	// coaching sections the plan does not grant are removed.
	Permissions []string `json:"permissions,omitempty"`
}

type Output struct {
	Analysis *models.Analysis `json:"analysis"`
	Cached   bool             `json:"cached"`
}
