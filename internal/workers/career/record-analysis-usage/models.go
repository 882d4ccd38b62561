// internal/workers/career/record-analysis-usage/models.go
package recordanalysisusage

type Input struct {
	UserID           string `json:"userId"`
	AnalysisID       string `json:"analysisId"`
	FeasibilityScore int    `json:"feasibilityScore"`
}

type Output struct {
	Recorded     bool `json:"recorded"`
	AnalysesUsed int  `json:"analysesUsed"`
}
