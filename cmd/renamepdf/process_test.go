package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/matsen/renamepdf/internal/config"
	"github.com/matsen/renamepdf/internal/textsource"
)

func linguaDocument(path string) *textsource.Document {
	return &textsource.Document{
		Path: path,
		Meta: map[string]string{"Subject": "Lingua 123 (2013) 45–67"},
		PageLines: []string{
			"Lingua 123 (2013) 45–67",
			"",
			"Contents lists available at ScienceDirect",
			"",
			"The syntax of focus particles",
			"",
			"Jane Doe*, John Smith1",
			"",
			"http://dx.doi.org/10.1016/j.lingua.2013.01.001",
		},
	}
}

// A document that fails must not stop the ones after it.
func TestBatchContinuesPastFailure(t *testing.T) {
	var attempted []string
	orig := readDocument
	readDocument = func(path string) (*textsource.Document, error) {
		attempted = append(attempted, path)
		if path == "good.pdf" {
			return linguaDocument(path), nil
		}
		return nil, fmt.Errorf("opening %s: not a PDF", path)
	}
	defer func() { readDocument = orig }()

	failed := processBatch(context.Background(),
		[]string{"broken.pdf", "good.pdf", "also-broken.pdf"},
		&config.Global{}, nil, nil)

	if failed != 2 {
		t.Errorf("failed = %d, want 2", failed)
	}
	if len(attempted) != 3 {
		t.Errorf("attempted %v, want all three paths tried", attempted)
	}
}

func TestBatchAllSucceed(t *testing.T) {
	orig := readDocument
	readDocument = func(path string) (*textsource.Document, error) {
		return linguaDocument(path), nil
	}
	defer func() { readDocument = orig }()

	failed := processBatch(context.Background(),
		[]string{"a.pdf", "b.pdf"}, &config.Global{}, nil, nil)
	if failed != 0 {
		t.Errorf("failed = %d, want 0", failed)
	}
}
