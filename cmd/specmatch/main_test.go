package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/HerbHall/specmatch/internal/catalog"
	pkgcatalog "github.com/HerbHall/specmatch/pkg/catalog"
)

func TestPrintRecommendation_Table(t *testing.T) {
	rec := catalog.Recommendation{
		Status:  catalog.StatusSuccess,
		Message: "1 product(s) found",
		Count:   1,
		Products: []pkgcatalog.Product{{
			Name: "OnePlus Nord 3", Brand: "oneplus", Category: "mobile",
			Price: 29999, RAM: 8, Storage: 128, UseCase: pkgcatalog.UseCaseGaming,
		}},
	}

	var buf bytes.Buffer
	if err := printRecommendation(&buf, rec, false); err != nil {
		t.Fatalf("printRecommendation() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "success: 1 product(s) found" {
		t.Errorf("status line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "NAME") {
		t.Errorf("header line = %q, want NAME prefix", lines[1])
	}
	for _, want := range []string{"OnePlus Nord 3", "29999", "8GB", "128GB", "gaming"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row %q missing %q", lines[2], want)
		}
	}
}

func TestPrintRecommendation_NoProducts(t *testing.T) {
	rec := catalog.Recommendation{
		Status:   catalog.StatusWarning,
		Message:  catalog.MessageNoMatch,
		Products: []pkgcatalog.Product{},
	}

	var buf bytes.Buffer
	if err := printRecommendation(&buf, rec, false); err != nil {
		t.Fatalf("printRecommendation() error = %v", err)
	}
	if got, want := buf.String(), "warning: "+catalog.MessageNoMatch+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunQuery(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStatus catalog.Status
	}{
		{"match", []string{"-json", "oneplus", "under", "30000"}, 0, catalog.StatusSuccess},
		{"no match", []string{"-json", "camera"}, 0, catalog.StatusWarning},
		{"no requirement", []string{"-json", "apple", "iphone"}, 1, catalog.StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if code := runQuery(tt.args, &buf); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			var rec catalog.Recommendation
			if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
				t.Fatalf("decode output: %v\n%s", err, buf.String())
			}
			if rec.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", rec.Status, tt.wantStatus)
			}
		})
	}
}
