// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// efetchBase is the E-utilities fetch endpoint. Declared as a var so
// tests can substitute an httptest server.
var efetchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// EFetchClient retrieves full article records in bulk.
type EFetchClient struct {
	Client *http.Client
}

// FetchDetails retrieves the raw XML record set for ids in one request and
// returns the body verbatim. The ID list travels comma-joined in a POST
// body rather than the URL, so batch size is not limited by URL length.
// An empty ids slice returns an empty payload without touching the network.
func (c *EFetchClient) FetchDetails(ctx context.Context, ids []string, cfg types.PubMedConfig) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}

	form := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
		"tool":    {cfg.Tool},
		"email":   {cfg.Email},
	}

	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, efetchBase, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", &TransportError{Endpoint: "efetch", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{Endpoint: "efetch", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Endpoint: "efetch", Cause: err}
	}
	return string(body), nil
}
