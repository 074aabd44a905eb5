package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/aishwaryaxerox/print_shop/internal/models"
)

// IndexOrder writes (or overwrites) the order document, keyed by order_id.
func IndexOrder(ctx context.Context, es *elasticsearch.Client, index string, order models.Order) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(order); err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	res, err := es.Index(
		index,
		&buf,
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(order.OrderID),
	)
	if err != nil {
		return fmt.Errorf("index order: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index order: %s", res.Status())
	}
	return nil
}

// ClearIndex drops every order document, mirroring a delete-all on the store.
func ClearIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	res, err := es.DeleteByQuery(
		[]string{index},
		strings.NewReader(`{"query":{"match_all":{}}}`),
		es.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("clear index: %s", res.Status())
	}
	return nil
}

// Search runs a fuzzy multi-field query over the order documents.
func Search(ctx context.Context, es *elasticsearch.Client, index, query string, from, size int) (int64, []models.Order, error) {
	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"order_id^2", "full_name^2", "phone_number", "special_instructions"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode query: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search orders: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search orders: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Order `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("decode search response: %w", err)
	}

	orders := make([]models.Order, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		orders[i] = hit.Source
	}
	return r.Hits.Total.Value, orders, nil
}
