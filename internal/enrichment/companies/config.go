// internal/enrichment/companies/config.go
package companies

import "time"

// CityAlias maps a lowercase fragment of free-text location to a directory city.
type CityAlias struct {
	Fragment string
	City     string
}

// CategoryRule maps role keywords to a directory category.
type CategoryRule struct {
	Keywords []string
	Category string
}

type Config struct {
	Aliases         []CityAlias
	DefaultCity     string
	CategoryRules   []CategoryRule
	DefaultCategory string
	MinCompanies    int

	Index      string
	SearchSize int
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		// Checked in order; the first fragment contained in the location wins.
		Aliases: []CityAlias{
			{"bangalore", "Bengaluru"},
			{"bengaluru", "Bengaluru"},
			{"mumbai", "Mumbai"},
			{"delhi", "Delhi NCR"},
			{"ncr", "Delhi NCR"},
			{"gurgaon", "Delhi NCR"},
			{"noida", "Delhi NCR"},
			{"hyderabad", "Hyderabad"},
			{"pune", "Pune"},
			{"chennai", "Chennai"},
			{"sf", "San Francisco"},
			{"san francisco", "San Francisco"},
			{"new york", "New York"},
			{"nyc", "New York"},
			{"london", "London"},
			{"remote", "Remote"},
			{"wfh", "Remote"},
		},
		DefaultCity: "Remote",
		CategoryRules: []CategoryRule{
			{Keywords: []string{"product", "manager"}, Category: "Product Manager"},
			{Keywords: []string{"data", "scientist", "analyst"}, Category: "Data Scientist"},
			{Keywords: []string{"design", "ux"}, Category: "Product Manager"},
		},
		DefaultCategory: "Software Engineer",
		MinCompanies:    3,
		Index:           "career_companies",
		SearchSize:      20,
		Timeout:         2 * time.Second,
	}
}
