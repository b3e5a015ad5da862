// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PubMedConfig holds settings for the E-utilities clients.
type PubMedConfig struct {
	// SearchTimeout bounds the esearch request (default 15s).
	SearchTimeout time.Duration `json:"search_timeout" yaml:"search_timeout"`

	// FetchTimeout bounds the efetch request (default 30s). Full-record
	// payloads are larger, so this deadline is longer than the search one.
	FetchTimeout time.Duration `json:"fetch_timeout" yaml:"fetch_timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pharma-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// Tool is the identifier sent as the E-utilities tool parameter.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the contact identity NCBI asks API users to provide.
	Email string `json:"email" yaml:"email"`

	// MaxResults caps the number of PMIDs requested from esearch (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
