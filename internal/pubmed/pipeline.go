// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// IDSearcher finds PMIDs matching a free-text query.
type IDSearcher interface {
	SearchIDs(ctx context.Context, query string, cfg types.PubMedConfig) ([]string, error)
}

// DetailFetcher retrieves the raw record payload for a PMID batch.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, ids []string, cfg types.PubMedConfig) (string, error)
}

// FindQualifyingPapers runs the search, fetch, and parse stages and returns
// the papers that have at least one commercially affiliated author, in
// record document order. An empty search result or an empty fetch payload
// short-circuits with an empty list. Errors from either client or the
// parser propagate to the caller untouched. Progress messages go to w.
func FindQualifyingPapers(ctx context.Context, searcher IDSearcher, fetcher DetailFetcher, query string, cfg types.PubMedConfig, w io.Writer) ([]types.PaperRecord, error) {
	fmt.Fprintf(w, "searching PubMed for %q\n", query)

	ids, err := searcher.SearchIDs(ctx, query, cfg)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		fmt.Fprintln(w, "no PMIDs matched the query")
		return nil, nil
	}
	fmt.Fprintf(w, "found %d PMID(s), fetching records\n", len(ids))

	payload, err := fetcher.FetchDetails(ctx, ids, cfg)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		// Unexpected for a non-empty ID list, but not fatal.
		fmt.Fprintln(w, "warning: efetch returned an empty payload")
		return nil, nil
	}

	records, err := ParseRecords(payload)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "%d paper(s) have a non-academic author\n", len(records))
	return records, nil
}
