// internal/engine/alternatives/config.go
package alternatives

type Config struct {
	Limit    int
	MaxScore int

	BaseScore     float64
	OverlapWeight float64
	JitterRange   float64

	LowDifficultyOverlap    float64
	MediumDifficultyOverlap float64

	// Pattern timelines shrink by PatternFastFactor when hours reach FastHours.
	FastHours         float64
	PatternFastFactor float64
	DefaultTimeline   string

	PopularRoles     []string
	BackfillBase     float64
	BackfillJitter   float64
	BackfillTimeline string
	BackfillSalary   string
	BackfillReason   string
	UnknownDemand    string
	Reasons          map[string]string
	DefaultWhy       string
}

func LoadConfig() *Config {
	return &Config{
		Limit:                   4,
		MaxScore:                95,
		BaseScore:               50,
		OverlapWeight:           40,
		JitterRange:             10,
		LowDifficultyOverlap:    0.6,
		MediumDifficultyOverlap: 0.3,
		FastHours:               15,
		PatternFastFactor:       0.8,
		DefaultTimeline:         "12-18 months",
		PopularRoles:            []string{"product manager", "data scientist", "ux designer", "consultant"},
		BackfillBase:            40,
		BackfillJitter:          30,
		BackfillTimeline:        "12-18 months",
		BackfillSalary:          "+15-30%",
		BackfillReason:          "High demand role with good growth prospects",
		UnknownDemand:           "medium",
		Reasons: map[string]string{
			"product manager":     "High demand, combines technical and business skills",
			"data scientist":      "Excellent growth, high salaries, intellectually stimulating",
			"ux designer":         "Creative + analytical, strong remote opportunities",
			"startup founder":     "Ultimate autonomy, unlimited upside potential",
			"consultant":          "Variety of projects, accelerated learning, prestigious",
			"engineering manager": "Natural progression, leadership opportunity",
			"tech lead":           "Stay technical while leading, high impact",
			"devops engineer":     "Critical role, excellent compensation, always in demand",
		},
		DefaultWhy: "Growing field with good opportunities",
	}
}
