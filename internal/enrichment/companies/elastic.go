// internal/enrichment/companies/elastic.go
package companies

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"career-pivot/internal/common/logger"
	"career-pivot/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

var ErrSearchFailed = errors.New("COMPANY_SEARCH_FAILED")

// Document is the shape of one company in the search index.
type Document struct {
	models.Company
	City         string `json:"city"`
	RoleCategory string `json:"roleCategory"`
}

// ElasticDirectory looks companies up in Elasticsearch and falls back to the
// static directory when the cluster errors or has nothing for the pair.
type ElasticDirectory struct {
	config   *Config
	client   *elasticsearch.Client
	fallback *Directory
	logger   logger.Logger
}

func NewElasticDirectory(config *Config, client *elasticsearch.Client, fallback *Directory, log logger.Logger) *ElasticDirectory {
	if config == nil {
		config = LoadConfig()
	}
	return &ElasticDirectory{
		config:   config,
		client:   client,
		fallback: fallback,
		logger:   log.WithFields(map[string]interface{}{"provider": "companies", "index": config.Index}),
	}
}

func (d *ElasticDirectory) Find(ctx context.Context, location, role string) (*models.CompanyMatch, error) {
	city := d.fallback.City(location)
	category := d.fallback.Category(city, role)

	found, err := d.search(ctx, city, category)
	if err != nil {
		d.logger.Warn("company search failed, using static directory", map[string]interface{}{
			"city":     city,
			"category": category,
			"error":    err.Error(),
		})
		return d.fallback.Find(ctx, location, role)
	}
	if len(found) == 0 {
		d.logger.Debug("no indexed companies, using static directory", map[string]interface{}{
			"city":     city,
			"category": category,
		})
		return d.fallback.Find(ctx, location, role)
	}

	m := d.fallback.assemble(city, category, found)
	return &m, nil
}

func (d *ElasticDirectory) search(ctx context.Context, city, category string) ([]models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	body, err := json.Marshal(searchQuery(city, category))
	if err != nil {
		return nil, fmt.Errorf("%w: encode query: %v", ErrSearchFailed, err)
	}

	res, err := d.client.Search(
		d.client.Search.WithContext(ctx),
		d.client.Search.WithIndex(d.config.Index),
		d.client.Search.WithBody(bytes.NewReader(body)),
		d.client.Search.WithSize(d.config.SearchSize),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source Document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchFailed, err)
	}

	out := make([]models.Company, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		out = append(out, h.Source.Company)
	}
	return out, nil
}

// searchQuery matches the city with either the category or the city's
// catch-all list, preferring exact category hits.
func searchQuery(city, category string) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"city": city}},
					map[string]interface{}{"terms": map[string]interface{}{"roleCategory": []string{category, "Any"}}},
				},
				"should": []interface{}{
					map[string]interface{}{"term": map[string]interface{}{"roleCategory": map[string]interface{}{"value": category, "boost": 2}}},
				},
			},
		},
		"sort": []interface{}{"_score", map[string]interface{}{"name": "asc"}},
	}
}
