// internal/enrichment/companies/directory.go
package companies

import (
	"context"
	"strings"

	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

// Directory answers company lookups from the knowledge base tables.
type Directory struct {
	config *Config
	kb     *knowledge.KnowledgeBase
}

func NewDirectory(config *Config, kb *knowledge.KnowledgeBase) *Directory {
	if config == nil {
		config = LoadConfig()
	}
	return &Directory{config: config, kb: kb}
}

func (d *Directory) Find(_ context.Context, location, role string) (*models.CompanyMatch, error) {
	m := d.Match(location, role)
	return &m, nil
}

// Match resolves location and role to a directory city and category and
// returns the companies listed there, topped up with remote-first employers
// when the list is short.
func (d *Directory) Match(location, role string) models.CompanyMatch {
	city := d.City(location)
	category := d.Category(city, role)

	listed := d.kb.Companies(city)
	if listed == nil {
		listed = d.kb.Companies(knowledge.CityRemote)
	}

	var found []models.Company
	if list, ok := listed[category]; ok {
		found = list
	} else if list, ok := listed[knowledge.CategoryAny]; ok {
		found = list
	}
	return d.assemble(city, category, found)
}

func (d *Directory) assemble(city, category string, found []models.Company) models.CompanyMatch {
	out := make([]models.Company, 0, len(found)+5)
	out = append(out, found...)
	if len(out) < d.config.MinCompanies {
		out = append(out, d.kb.Companies(knowledge.CityRemote)[knowledge.CategoryAny]...)
	}
	return models.CompanyMatch{
		City:         city,
		RoleCategory: category,
		Companies:    out,
		IsGeneric:    len(out) == 0,
	}
}

// City maps free-text location to a directory city.
func (d *Directory) City(location string) string {
	loc := strings.ToLower(location)
	for _, a := range d.config.Aliases {
		if strings.Contains(loc, a.Fragment) {
			return a.City
		}
	}
	return d.config.DefaultCity
}

// Category maps a target role to a directory category. A role spelled exactly
// like a category the city lists is used as is.
func (d *Directory) Category(city, role string) string {
	r := strings.ToLower(role)
	for _, rule := range d.config.CategoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(r, kw) {
				return rule.Category
			}
		}
	}
	if _, ok := d.kb.Companies(city)[role]; ok {
		return role
	}
	return d.config.DefaultCategory
}
