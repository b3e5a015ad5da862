// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
package types

// PaperRecord describes a PubMed paper that has at least one author
// affiliated with a commercial (non-academic) organization. Records are
// built once by the parser and never mutated afterwards.
type PaperRecord struct {
	// PMID is the PubMed identifier, or "N/A" when the record carries none.
	PMID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title with inline markup flattened to plain text.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is assembled positionally as "year-month-day".
	// A missing component keeps its placeholder token (YYYY, MM, DD); a
	// record with no PubDate element at all gets "No Date Found". The
	// value is not validated as a calendar date.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists the qualifying author display names,
	// deduplicated and sorted.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the qualifying affiliation strings,
	// deduplicated and sorted.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingAuthorEmail is the first email-shaped substring found
	// while scanning affiliation texts in author order, or empty when no
	// affiliation contains one.
	CorrespondingAuthorEmail string `json:"corresponding_author_email,omitempty" yaml:"corresponding_author_email,omitempty"`
}
