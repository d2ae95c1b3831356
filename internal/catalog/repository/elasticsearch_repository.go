package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/goccy/go-json"

	"github.com/tair/shopfront/internal/catalog/domain"
	"github.com/tair/shopfront/pkg/apperror"
	"github.com/tair/shopfront/pkg/logger"
)

const (
	// DefaultIndex is the index products are seeded into
	DefaultIndex = "products"
	// DefaultSearchSize caps the number of hits returned per search
	DefaultSearchSize = 50
)

var searchFields = []string{"title^2", "description"}

// ElasticsearchProductRepository implements domain.ProductSearchRepository
type ElasticsearchProductRepository struct {
	client *elasticsearch.Client
	index  string
	size   int
}

// NewElasticsearchProductRepository creates a search repository over index
func NewElasticsearchProductRepository(client *elasticsearch.Client, index string, size int) *ElasticsearchProductRepository {
	if index == "" {
		index = DefaultIndex
	}
	if size <= 0 {
		size = DefaultSearchSize
	}
	return &ElasticsearchProductRepository{client: client, index: index, size: size}
}

// Search runs a single query against the index. Transport failures and
// error responses are reported as apperror.KindUnavailable; nothing is
// retried.
func (r *ElasticsearchProductRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.ProductSearchResult, error) {
	body, err := json.Marshal(map[string]any{"query": BuildQuery(filter)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
		r.client.Search.WithSize(r.size),
	)
	if err != nil {
		return nil, apperror.Unavailable(apperror.ResourceSearch, fmt.Errorf("failed to execute search: %w", err))
	}
	defer res.Body.Close()

	if res.IsError() {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		logger.Warn(ctx).
			Int("status", res.StatusCode).
			Str("index", r.index).
			Str("body", string(snippet)).
			Msg("Search index returned an error")
		return nil, apperror.Unavailable(apperror.ResourceSearch, fmt.Errorf("search returned status %d", res.StatusCode))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperror.Unavailable(apperror.ResourceSearch, fmt.Errorf("failed to decode search response: %w", err))
	}

	return MapHits(parsed.Hits.Hits), nil
}

// BuildQuery translates a filter into an Elasticsearch bool query. Text
// matching goes in must so it scores; range constraints go in filter so they
// never affect relevance. With no constraints at all it matches everything.
func BuildQuery(filter domain.SearchFilter) map[string]any {
	if !filter.HasConstraints() {
		return map[string]any{"match_all": map[string]any{}}
	}

	var must, filters []any
	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  filter.Query,
				"fields": searchFields,
				"type":   "best_fields",
			},
		})
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		bounds := map[string]any{}
		if filter.MinPrice != nil {
			bounds["gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			bounds["lte"] = *filter.MaxPrice
		}
		filters = append(filters, map[string]any{"range": map[string]any{"price": bounds}})
	}

	if filter.MinRating != nil {
		filters = append(filters, map[string]any{
			"range": map[string]any{"rating.rate": map[string]any{"gte": *filter.MinRating}},
		})
	}

	boolQuery := map[string]any{}
	if len(must) > 0 {
		boolQuery["must"] = must
	}
	if len(filters) > 0 {
		boolQuery["filter"] = filters
	}
	return map[string]any{"bool": boolQuery}
}

type searchResponse struct {
	Hits struct {
		Hits []SearchHit `json:"hits"`
	} `json:"hits"`
}

// SearchHit is the subset of a hit the repository reads
type SearchHit struct {
	ID     string          `json:"_id"`
	Source productDocument `json:"_source"`
}

type productDocument struct {
	ID          json.RawMessage `json:"id"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Price       json.RawMessage `json:"price"`
	Rating      json.RawMessage `json:"rating"`
	Image       *string         `json:"image"`
}

// MapHits converts raw hits into results, applying defaults for missing
// fields
func MapHits(hits []SearchHit) []domain.ProductSearchResult {
	results := make([]domain.ProductSearchResult, 0, len(hits))
	for _, hit := range hits {
		src := hit.Source

		result := domain.ProductSearchResult{
			ID:    hitID(hit),
			Image: src.Image,
		}
		if src.Title != nil {
			result.Title = *src.Title
		}
		if src.Description != nil {
			result.Description = *src.Description
		}
		if price, ok := number(src.Price); ok {
			result.Price = price
		}
		if rating, ok := ratingValue(src.Rating); ok {
			result.Rating = &rating
		}

		results = append(results, result)
	}
	return results
}

// hitID prefers the document _id, then _source.id, then zero
func hitID(hit SearchHit) int64 {
	if id, err := strconv.ParseInt(hit.ID, 10, 64); err == nil {
		return id
	}
	if id, ok := number(hit.Source.ID); ok {
		return int64(id)
	}
	return 0
}

// ratingValue accepts either a bare number or an object with a rate field
func ratingValue(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			Rate json.RawMessage `json:"rate"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return 0, false
		}
		return number(obj.Rate)
	}
	return number(trimmed)
}

// number parses a JSON number or a numeric string; null, empty and
// non-numeric values report false
func number(raw json.RawMessage) (float64, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0, false
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
