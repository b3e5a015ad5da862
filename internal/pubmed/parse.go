// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"encoding/xml"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Sentinel values for fields absent from the source record.
const (
	missingPMID  = "N/A"
	missingTitle = "No Title Found"
	missingDate  = "No Date Found"
)

// emailPattern matches an email-shaped substring inside affiliation text.
// PubMed has no dedicated email field; corresponding-author addresses are
// conventionally appended to the affiliation.
var emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)

// ParseRecords converts a raw efetch payload into PaperRecords, keeping
// only papers with at least one commercially affiliated author. Records
// come back in document order; an empty payload yields an empty list.
func ParseRecords(payload string) ([]types.PaperRecord, error) {
	if payload == "" {
		return nil, nil
	}

	var set articleSet
	if err := xml.Unmarshal([]byte(payload), &set); err != nil {
		return nil, &MalformedResponseError{Endpoint: "efetch", Reason: "unparseable record XML", Cause: err}
	}

	var records []types.PaperRecord
	for _, article := range set.Articles {
		if rec, ok := buildRecord(article); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// buildRecord extracts one PaperRecord from an article node. The second
// return value is false when the paper has no non-academic author and is
// filtered out.
func buildRecord(article pubmedArticle) (types.PaperRecord, bool) {
	rec := types.PaperRecord{
		PMID:            missingPMID,
		Title:           missingTitle,
		PublicationDate: missingDate,
	}

	if article.Citation.PMID != "" {
		rec.PMID = article.Citation.PMID
	}
	if t := article.Citation.Article.Title; t != nil {
		rec.Title = t.Text
	}
	if pd := article.Citation.Article.Journal.PubDate; pd != nil {
		rec.PublicationDate = composeDate(pd)
	}

	authors := make(map[string]struct{})
	affiliations := make(map[string]struct{})

	if list := article.Citation.Article.AuthorList; list != nil {
		for _, author := range list.Authors {
			if len(author.Affiliations) == 0 {
				continue
			}
			text := author.Affiliations[0].Text
			if text == "" {
				continue
			}

			if classify.IsNonAcademic(text) {
				if name := displayName(author); name != "" {
					authors[name] = struct{}{}
				}
				affiliations[strings.TrimSpace(text)] = struct{}{}
			}

			// First email found in author document order wins.
			if rec.CorrespondingAuthorEmail == "" {
				if m := emailPattern.FindString(text); m != "" {
					rec.CorrespondingAuthorEmail = m
				}
			}
		}
	}

	if len(authors) == 0 {
		return types.PaperRecord{}, false
	}
	rec.NonAcademicAuthors = sortedKeys(authors)
	rec.CompanyAffiliations = sortedKeys(affiliations)
	return rec, true
}

// displayName prefers a collective/group name, falling back to the
// composed "forename lastname" with incidental whitespace trimmed.
func displayName(author authorXML) string {
	if author.CollectiveName != "" {
		return author.CollectiveName
	}
	return strings.TrimSpace(author.ForeName + " " + author.LastName)
}

// composeDate assembles the date positionally; absent sub-fields keep
// their placeholder token. No calendar validation happens here.
func composeDate(pd *pubDateXML) string {
	year, month, day := pd.Year, pd.Month, pd.Day
	if year == "" {
		year = "YYYY"
	}
	if month == "" {
		month = "MM"
	}
	if day == "" {
		day = "DD"
	}
	return year + "-" + month + "-" + day
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flatText collects every character-data fragment below an element,
// flattening inline markup such as <i> or <sub> in titles and affiliations.
type flatText struct {
	Text string
}

// UnmarshalXML implements xml.Unmarshaler.
func (f *flatText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(t)
		}
	}
	f.Text = b.String()
	return nil
}

// E-utilities efetch XML structures (PubMed DTD subset).
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string     `xml:"PMID"`
	Article articleXML `xml:"Article"`
}

type articleXML struct {
	Title      *flatText   `xml:"ArticleTitle"`
	Journal    journalXML  `xml:"Journal"`
	AuthorList *authorList `xml:"AuthorList"`
}

type journalXML struct {
	PubDate *pubDateXML `xml:"JournalIssue>PubDate"`
}

type pubDateXML struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type authorList struct {
	Authors []authorXML `xml:"Author"`
}

type authorXML struct {
	CollectiveName string     `xml:"CollectiveName"`
	LastName       string     `xml:"LastName"`
	ForeName       string     `xml:"ForeName"`
	Affiliations   []flatText `xml:"AffiliationInfo>Affiliation"`
}
