package extract

// Source says which strategy produced a match.
const (
	SourceCurated = "curated"
	SourceNLP     = "nlp"
)

// Confidence levels attached to matches. Curated matches are high
// confidence; frequency-discovered phrases are medium.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

// ThesisRef is one evidence citation attached to a term match.
type ThesisRef struct {
	Title      string `yaml:"title" json:"title"`
	URL        string `yaml:"url" json:"url"`
	University string `yaml:"university" json:"university"`
}

// maxThesisRefs caps the evidence samples kept per match.
const maxThesisRefs = 3

// TermMatch is a term found in thesis abstracts, with its frequency and
// up to three sample citations in first-seen order. Frequency counts
// distinct records; a term never counts twice within one record.
type TermMatch struct {
	EN         string      `yaml:"en" json:"en"`
	ETHints    []string    `yaml:"et_hints,omitempty" json:"et_hints,omitempty"`
	Source     string      `yaml:"source" json:"source"`
	Confidence string      `yaml:"confidence" json:"confidence"`
	Frequency  int         `yaml:"frequency" json:"frequency"`
	ThesisRefs []ThesisRef `yaml:"theses,omitempty" json:"theses,omitempty"`
	Category   string      `yaml:"category,omitempty" json:"category,omitempty"`
}

// addRef appends an evidence sample unless the cap is already reached.
func (m *TermMatch) addRef(ref ThesisRef) {
	if len(m.ThesisRefs) < maxThesisRefs {
		m.ThesisRefs = append(m.ThesisRefs, ref)
	}
}
