package thesis

// Record is the normalized unit of harvested thesis metadata. Abstracts
// use the empty string as the absence sentinel; a record with both
// abstracts empty is dropped during parsing.
type Record struct {
	Identifier string   `json:"identifier" parquet:"identifier"`
	Titles     []string `json:"titles" parquet:"titles,list"`
	TitleEN    string   `json:"title_en" parquet:"title_en"`
	TitleET    string   `json:"title_et" parquet:"title_et"`
	Authors    []string `json:"authors" parquet:"authors,list"`
	AbstractEN string   `json:"abstract_en" parquet:"abstract_en"`
	AbstractET string   `json:"abstract_et" parquet:"abstract_et"`
	Subjects   []string `json:"subjects" parquet:"subjects,list"`
	Date       string   `json:"date" parquet:"date"`
	Year       int      `json:"year" parquet:"year"`
	ThesisType string   `json:"thesis_type" parquet:"thesis_type"`
	URL        string   `json:"url" parquet:"url"`
	University string   `json:"university" parquet:"university"`
}

// Title returns the record's display title, or a placeholder when the
// source metadata carried none.
func (r *Record) Title() string {
	if len(r.Titles) == 0 {
		return "(untitled)"
	}
	return r.Titles[0]
}

// HasAbstract reports whether at least one abstract is present.
func (r *Record) HasAbstract() bool {
	return r.AbstractEN != "" || r.AbstractET != ""
}
