// internal/enrichment/resources/config.go
package resources

import "career-pivot/internal/models"

type Config struct {
	MaxCourses  int
	MaxBooks    int
	Communities []models.Community
}

func LoadConfig() *Config {
	return &Config{
		MaxCourses: 12,
		MaxBooks:   6,
		// The first description is formatted with the target role.
		Communities: []models.Community{
			{Name: "LinkedIn Groups", Description: "Join groups for %s", URL: "https://linkedin.com/groups"},
			{Name: "Reddit Communities", Description: "r/careerguidance, r/cscareerquestions, r/ProductManagement", URL: "https://reddit.com"},
			{Name: "Slack/Discord Communities", Description: "Industry-specific communities for networking"},
			{Name: "Product Hunt", Description: "Discover new tools and connect with makers", URL: "https://producthunt.com"},
		},
	}
}
