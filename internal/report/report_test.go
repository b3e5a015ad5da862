// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			PMID:                     "12345678",
			Title:                    "Role of BRCA1 in targeted therapy",
			PublicationDate:          "2023-MM-DD",
			NonAcademicAuthors:       []string{"Bob Jones", "Jane Doe"},
			CompanyAffiliations:      []string{"Genentech Inc, South San Francisco, CA, USA."},
			CorrespondingAuthorEmail: "jane.doe@acme-pharma.com",
		},
		{
			PMID:                "87654321",
			Title:               "A very long article title that certainly exceeds the fifty character table column",
			PublicationDate:     "No Date Found",
			NonAcademicAuthors:  []string{"Carl Zimmer"},
			CompanyAffiliations: []string{"Acme Pharmaceuticals Inc, Basel."},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(sampleRecords(), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2 records", len(rows))
	}

	wantHeader := []string{
		"PubmedID", "Title", "Publication Date",
		"Non-academic Author(s)", "Company Affiliation(s)", "Corresponding Author Email",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	if rows[1][0] != "12345678" {
		t.Errorf("PubmedID cell = %q", rows[1][0])
	}
	if rows[1][3] != "Bob Jones, Jane Doe" {
		t.Errorf("authors cell = %q, want comma-joined list", rows[1][3])
	}
	if rows[2][5] != "" {
		t.Errorf("email cell = %q, want empty for a record without one", rows[2][5])
	}
}

func TestWriteCSVNoRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(nil, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading produced CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleRecords(), &buf)
	s := buf.String()

	if !strings.Contains(s, "12345678") {
		t.Error("table should contain the first PMID")
	}
	if !strings.Contains(s, "jane.doe@acme-pharma.com") {
		t.Error("table should contain the corresponding email")
	}
	if !strings.Contains(s, "...") {
		t.Error("over-long titles should be truncated with an ellipsis")
	}
	if !strings.Contains(s, "2 paper(s)") {
		t.Error("table should end with a record count")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No papers with non-academic authors were found.") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleRecords(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.PaperRecord
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[0].PMID != "12345678" {
		t.Errorf("PMID = %q", parsed[0].PMID)
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatYAML(sampleRecords(), &buf); err != nil {
		t.Fatalf("FormatYAML: %v", err)
	}

	var parsed []types.PaperRecord
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid YAML output: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[1].CompanyAffiliations[0] != "Acme Pharmaceuticals Inc, Basel." {
		t.Errorf("CompanyAffiliations = %v", parsed[1].CompanyAffiliations)
	}
}
