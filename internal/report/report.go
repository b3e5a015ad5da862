// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders qualifying-paper records as a console table,
// CSV, JSON, or YAML.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// csvHeader is the column set consumers of the CSV report expect.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes records as CSV with a header row. Multi-valued cells
// are joined with ", ".
func WriteCSV(records []types.PaperRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.PMID,
			r.Title,
			r.PublicationDate,
			strings.Join(r.NonAcademicAuthors, ", "),
			strings.Join(r.CompanyAffiliations, ", "),
			r.CorrespondingAuthorEmail,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers with non-academic authors were found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-13s  %-28s  %-36s  %s\n",
		"PubmedID", "Title", "Date", "Non-academic Author(s)", "Company Affiliation(s)", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 160))

	for _, r := range records {
		fmt.Fprintf(w, "%-10s  %-50s  %-13s  %-28s  %-36s  %s\n",
			r.PMID,
			truncate(r.Title, 50),
			r.PublicationDate,
			truncate(strings.Join(r.NonAcademicAuthors, ", "), 28),
			truncate(strings.Join(r.CompanyAffiliations, ", "), 36),
			r.CorrespondingAuthorEmail)
	}

	fmt.Fprintf(w, "\n%d paper(s)\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// FormatYAML writes records as a YAML list to w.
func FormatYAML(records []types.PaperRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(records)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
