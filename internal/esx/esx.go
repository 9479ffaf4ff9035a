// Package esx indexes resolved leads into Elasticsearch for merchant lead
// search. Indexing is best-effort: the store remains the source of truth.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"visitor-iq/internal/config"
)

// Client is an alias for an Elasticsearch client.
type Client = es8.Client

// LeadsIndex is the index holding lead documents.
const LeadsIndex = "leads"

// Open creates an ES client from config. An empty address list is not an
// error; the caller gets a nil client and all esx operations degrade to
// no-ops.
func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// LeadDoc is the searchable projection of an identity link.
type LeadDoc struct {
	ID              string  `json:"id"`
	MerchantID      string  `json:"merchant_id"`
	FingerprintID   string  `json:"fingerprint_id"`
	Email           string  `json:"email,omitempty"`
	MatchType       string  `json:"match_type"`
	MatchConfidence float64 `json:"match_confidence"`
	EngagementScore int     `json:"engagement_score"`
	BuyerIntent     string  `json:"buyer_intent"`
	Segment         string  `json:"segment"`
	TotalOrders     int     `json:"total_orders"`
	LastPageURL     string  `json:"last_page_url,omitempty"`
	UpdatedAt       string  `json:"updated_at"`
}

// IndexLead upserts a lead document keyed by the identity link id.
func IndexLead(ctx context.Context, es *Client, doc LeadDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(LeadsIndex, bytes.NewReader(b),
		es.Index.WithDocumentID(doc.ID),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchLeads runs a merchant-scoped text search over email and page URL.
func SearchLeads(ctx context.Context, es *Client, merchantID, query string, from, size int) (map[string]any, error) {
	if es == nil {
		return map[string]any{"hits": []any{}}, nil
	}
	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{"term": map[string]any{"merchant_id": merchantID}},
				},
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  query,
						"fields": []string{"email^2", "last_page_url", "segment", "buyer_intent"},
					},
				},
			},
		},
		"sort": []any{map[string]any{"engagement_score": "desc"}},
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(LeadsIndex),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out map[string]any
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
