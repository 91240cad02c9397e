package crossref

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func worksServer(t *testing.T, doi, title string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("rows") != "1" {
			t.Errorf("rows = %q, want 1", r.URL.Query().Get("rows"))
		}
		fmt.Fprintf(w, `{"message":{"items":[{"DOI":%q,"title":[%q]}]}}`, doi, title)
	}))
}

func TestLookupDOIMatch(t *testing.T) {
	srv := worksServer(t, "10.1016/j.lingua.2013.01.001", "Agreement in Embedded Clauses")
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	doi, err := c.LookupDOI(context.Background(), "Agreement in embedded clauses", "Doe")
	if err != nil {
		t.Fatal(err)
	}
	if doi != "10.1016/j.lingua.2013.01.001" {
		t.Errorf("doi = %q", doi)
	}
}

func TestLookupDOIRejectsTitleMismatch(t *testing.T) {
	srv := worksServer(t, "10.9999/other", "A completely different paper")
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	doi, err := c.LookupDOI(context.Background(), "Agreement in embedded clauses", "Doe")
	if err != nil {
		t.Fatal(err)
	}
	if doi != "" {
		t.Errorf("doi = %q, want rejection of mismatched title", doi)
	}
}

func TestLookupDOIToleratesPunctuation(t *testing.T) {
	srv := worksServer(t, "10.1162/li.2010.1", "Wh-movement: a reappraisal")
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	doi, err := c.LookupDOI(context.Background(), "Wh movement — a reappraisal", "Doe")
	if err != nil {
		t.Fatal(err)
	}
	if doi != "10.1162/li.2010.1" {
		t.Errorf("doi = %q", doi)
	}
}

func TestLookupDOIEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"message":{"items":[]}}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	doi, err := c.LookupDOI(context.Background(), "Anything", "Doe")
	if err != nil {
		t.Fatal(err)
	}
	if doi != "" {
		t.Errorf("doi = %q, want empty", doi)
	}
}

func TestLookupDOIServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := c.LookupDOI(context.Background(), "Anything", "Doe"); err == nil {
		t.Error("want error on 500, got nil")
	}
}
