// internal/workers/career/check-analysis-quota/models.go
package checkanalysisquota

type Input struct {
	UserID string `json:"userId"`
}

// Output is returned when the user may run another analysis.
type Output struct {
	Allowed           bool     `json:"allowed"`
	Plan              string   `json:"plan"`
	AnalysesUsed      int      `json:"analysesUsed"`
	AnalysesRemaining int      `json:"analysesRemaining"`
	Permissions       []string `json:"permissions"`
}
