// internal/engine/matcher/config.go
package matcher

type Config struct {
	// UnknownOverlap is the skill overlap assumed when either role is unmatched.
	UnknownOverlap float64
	Synonyms       []SynonymCluster
}

type SynonymCluster struct {
	Head    string
	Members []string
}

func LoadConfig() *Config {
	return &Config{
		UnknownOverlap: 0.3,
		Synonyms: []SynonymCluster{
			{Head: "programming", Members: []string{"coding", "development", "software"}},
			{Head: "communication", Members: []string{"writing", "speaking", "presentation"}},
			{Head: "data analysis", Members: []string{"analytics", "data", "analysis"}},
			{Head: "leadership", Members: []string{"management", "team lead", "leading"}},
			{Head: "problem solving", Members: []string{"analytical", "critical thinking", "debugging"}},
		},
	}
}
