// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed implements the search, fetch, and parse stages against
// the NCBI E-utilities API: PMID search, bulk record retrieval, and record
// parsing with the commercial-affiliation filter.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// esearchBase is the E-utilities search endpoint. Declared as a var so
// tests can substitute an httptest server.
var esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"

// ESearchClient queries the esearch endpoint for PMIDs matching a term.
type ESearchClient struct {
	Client *http.Client
}

// SearchIDs runs a single bounded esearch query and returns the matching
// PMIDs. An absent idlist in the response means zero matches and returns
// an empty list; an absent esearchresult container is a malformed response.
func (c *ESearchClient) SearchIDs(ctx context.Context, query string, cfg types.PubMedConfig) ([]string, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
		"tool":    {cfg.Tool},
		"email":   {cfg.Email},
	}

	if cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.SearchTimeout)
		defer cancel()
	}

	reqURL := esearchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: "esearch", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Endpoint: "esearch", StatusCode: resp.StatusCode}
	}

	var envelope esearchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &MalformedResponseError{Endpoint: "esearch", Reason: "undecodable JSON body", Cause: err}
	}
	if envelope.Result == nil {
		return nil, &MalformedResponseError{Endpoint: "esearch", Reason: "missing esearchresult container"}
	}

	return envelope.Result.IDList, nil
}

// E-utilities esearch JSON structures.
type esearchEnvelope struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
