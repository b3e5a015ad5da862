// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestFetchDetailsEmptyIDs(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &EFetchClient{Client: ts.Client()}
	payload, err := c.FetchDetails(context.Background(), nil, testCfg())
	if err != nil {
		t.Fatalf("FetchDetails: %v", err)
	}
	if payload != "" {
		t.Errorf("payload = %q, want empty", payload)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("server received %d call(s), want 0", n)
	}
}

func TestFetchDetails(t *testing.T) {
	const body = `<?xml version="1.0"?><PubmedArticleSet></PubmedArticleSet>`

	var gotMethod, gotID, gotDB, gotRetmode string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotID = r.PostFormValue("id")
		gotDB = r.PostFormValue("db")
		gotRetmode = r.PostFormValue("retmode")
		fmt.Fprint(w, body)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &EFetchClient{Client: ts.Client()}
	payload, err := c.FetchDetails(context.Background(), []string{"111", "222", "333"}, testCfg())
	if err != nil {
		t.Fatalf("FetchDetails: %v", err)
	}

	if payload != body {
		t.Errorf("payload = %q, want the response body verbatim", payload)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotID != "111,222,333" {
		t.Errorf("id form value = %q, want comma-joined list", gotID)
	}
	if gotDB != "pubmed" {
		t.Errorf("db form value = %q, want pubmed", gotDB)
	}
	if gotRetmode != "xml" {
		t.Errorf("retmode form value = %q, want xml", gotRetmode)
	}
}

func TestFetchDetailsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &EFetchClient{Client: ts.Client()}
	_, err := c.FetchDetails(context.Background(), []string{"111"}, testCfg())

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("want TransportError, got: %v", err)
	}
	if transport.Endpoint != "efetch" {
		t.Errorf("Endpoint = %q, want efetch", transport.Endpoint)
	}
	if transport.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", transport.StatusCode)
	}
}

func TestFetchDetailsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := ts.Client()
	ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &EFetchClient{Client: client}
	_, err := c.FetchDetails(context.Background(), []string{"111"}, testCfg())

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("want TransportError, got: %v", err)
	}
}
