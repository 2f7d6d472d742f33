package thesis

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KristoR/andmed-et-en/internal/oai"
)

// Descriptions shorter than this are degree programme labels or rights
// notes, not abstracts.
const minAbstractLen = 50

var (
	estonianCharPattern = regexp.MustCompile(`[õäöüÕÄÖÜ]`)
	yearPattern         = regexp.MustCompile(`\b(\d{4})\b`)
)

// thesisTypeKeywords identify dc:type values describing a thesis.
var thesisTypeKeywords = []string{"thesis", "lõputöö", "magistri", "bakalaure", "doktori"}

// detectLanguage classifies text as Estonian or English by the density of
// Estonian-specific characters (õ, ä, ö, ü). Above 0.5 % the text is
// almost certainly Estonian.
func detectLanguage(text string) string {
	if text == "" {
		return "unknown"
	}
	count := len(estonianCharPattern.FindAllString(text, -1))
	if float64(count)/float64(len(text)) > 0.005 {
		return "et"
	}
	return "en"
}

// elementLang returns the element's language tag, lowercased, falling
// back to character-based detection when the attribute is absent.
func elementLang(el oai.Element) string {
	if el.Lang != "" {
		return strings.ToLower(el.Lang)
	}
	return detectLanguage(el.Value)
}

// ParseRecord converts one OAI-PMH record into a thesis Record. Returns
// nil for deleted records and records without Dublin Core metadata.
func ParseRecord(rec oai.Record, university string) *Record {
	if rec.Deleted() {
		return nil
	}
	dc := rec.Metadata.DublinCore
	if dc == nil {
		return nil
	}

	record := &Record{
		Identifier: strings.TrimSpace(rec.Header.Identifier),
		University: university,
	}

	for _, el := range dc.Titles {
		text := strings.TrimSpace(el.Value)
		if text == "" {
			continue
		}
		record.Titles = append(record.Titles, text)
		switch {
		case strings.HasPrefix(elementLang(el), "et") && record.TitleET == "":
			record.TitleET = text
		case record.TitleEN == "":
			record.TitleEN = text
		}
	}

	for _, el := range dc.Creators {
		if text := strings.TrimSpace(el.Value); text != "" {
			record.Authors = append(record.Authors, text)
		}
	}

	// Descriptions become abstracts, split by language. A record may carry
	// several description elements per language; join them.
	var enParts, etParts []string
	for _, el := range dc.Descriptions {
		text := strings.TrimSpace(el.Value)
		if len(text) < minAbstractLen {
			continue
		}
		if strings.HasPrefix(elementLang(el), "et") {
			etParts = append(etParts, text)
		} else {
			enParts = append(enParts, text)
		}
	}
	record.AbstractEN = strings.Join(enParts, " ")
	record.AbstractET = strings.Join(etParts, " ")

	// Some repositories pack multiple comma-separated keywords into a
	// single subject element.
	for _, el := range dc.Subjects {
		for _, part := range strings.Split(el.Value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				record.Subjects = append(record.Subjects, part)
			}
		}
	}

	for _, el := range dc.Dates {
		if text := strings.TrimSpace(el.Value); text != "" {
			record.Date = text
			if m := yearPattern.FindString(text); m != "" {
				record.Year, _ = strconv.Atoi(m)
			}
			break
		}
	}

	for _, el := range dc.Types {
		text := strings.ToLower(strings.TrimSpace(el.Value))
		if text == "" {
			continue
		}
		for _, kw := range thesisTypeKeywords {
			if strings.Contains(text, kw) {
				record.ThesisType = text
				break
			}
		}
		if record.ThesisType != "" {
			break
		}
	}

	for _, el := range dc.Identifiers {
		if text := strings.TrimSpace(el.Value); strings.HasPrefix(text, "http") {
			record.URL = text
			break
		}
	}

	return record
}

// ParseRecords converts harvested OAI-PMH records into thesis Records,
// dropping deleted records and records without any abstract.
func ParseRecords(raw []oai.Record, university string) []Record {
	var records []Record
	skipped := 0

	for _, rec := range raw {
		parsed := ParseRecord(rec, university)
		if parsed == nil || !parsed.HasAbstract() {
			skipped++
			continue
		}
		records = append(records, *parsed)
	}

	slog.Info("Parsed thesis records",
		"university", university, "with_abstracts", len(records), "skipped", skipped)
	return records
}
