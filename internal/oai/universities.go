package oai

import "strings"

// University describes a single university's OAI-PMH endpoint.
type University struct {
	Key     string
	Name    string
	BaseURL string
}

// Universities lists the supported Estonian university repositories,
// keyed by their short code.
var Universities = map[string]University{
	"ut": {
		Key:     "ut",
		Name:    "University of Tartu",
		BaseURL: "https://dspace.ut.ee/oai/request",
	},
	"taltech": {
		Key:     "taltech",
		Name:    "TalTech",
		BaseURL: "https://digikogu.taltech.ee/oai/request",
	},
	"tlu": {
		Key:     "tlu",
		Name:    "Tallinn University",
		BaseURL: "https://www.etera.ee/oai",
	},
}

// UniversityKeys returns the supported university codes in a fixed order.
func UniversityKeys() []string {
	return []string{"ut", "taltech", "tlu"}
}

// csDataKeywords mark set names belonging to computer science or data
// science programmes, in both languages.
var csDataKeywords = []string{
	"informaatika",
	"informatics",
	"computer science",
	"arvutiteadus",
	"data science",
	"andmeteadus",
	"tarkvaratehnika",
	"software engineering",
	"infotehnoloogia",
	"information technology",
	"matemaatika",
	"mathematics",
	"statistika",
	"statistics",
	"küberneetika",
	"cybernetics",
	"tehisintellekt",
	"artificial intelligence",
	"masinõpe",
	"machine learning",
}

// FilterDataScienceSets keeps the sets whose names mention a CS or data
// science keyword.
func FilterDataScienceSets(sets []Set) []Set {
	var matched []Set
	for _, set := range sets {
		name := strings.ToLower(set.Name)
		if name == "" {
			name = strings.ToLower(set.Spec)
		}
		for _, kw := range csDataKeywords {
			if strings.Contains(name, kw) {
				matched = append(matched, set)
				break
			}
		}
	}
	return matched
}
