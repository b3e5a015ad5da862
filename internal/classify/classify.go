// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a free-text author affiliation belongs
// to a commercial organization rather than an academic one. The decision
// is a keyword heuristic, not NLP: affiliations without a recognizable
// keyword default to academic.
package classify

import "strings"

// academicKeywords veto a match: an affiliation mentioning any of these is
// academic even when a corporate keyword appears in the same string.
var academicKeywords = []string{
	"university", "college", "institute", "hospital", "school", "academic", "univerzita",
}

// nonAcademicKeywords mark an affiliation as commercial.
var nonAcademicKeywords = []string{
	"inc", "ltd", "llc", "corp", "pharmaceuticals", "pharma", "biotech",
	"therapeutics", "diagnostics", "labs", "laboratories",
}

// IsNonAcademic reports whether affiliation looks like a commercial
// organization. The scan is strictly two-pass with academic keywords
// first, so a hospital researcher with a pharma co-affiliation listed in
// the same string stays classified as academic.
func IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}

	lower := strings.ToLower(affiliation)

	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, kw := range nonAcademicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
