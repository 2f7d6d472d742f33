package oai

// XML namespaces used in OAI-PMH responses:
//
//	oai    http://www.openarchives.org/OAI/2.0/
//	oai_dc http://www.openarchives.org/OAI/2.0/oai_dc/
//	dc     http://purl.org/dc/elements/1.1/

// Response is the envelope of an OAI-PMH response.
type Response struct {
	Error       *Error       `xml:"error"`
	ListSets    *ListSets    `xml:"ListSets"`
	ListRecords *ListRecords `xml:"ListRecords"`
}

// Error is an OAI-PMH protocol error (e.g. noRecordsMatch, badResumptionToken).
type Error struct {
	Code    string `xml:"code,attr"`
	Message string `xml:",chardata"`
}

// ListSets is the payload of a ListSets response.
type ListSets struct {
	Sets            []Set           `xml:"set"`
	ResumptionToken ResumptionToken `xml:"resumptionToken"`
}

// Set describes one OAI-PMH set.
type Set struct {
	Spec string `xml:"setSpec"`
	Name string `xml:"setName"`
}

// ListRecords is the payload of a ListRecords response.
type ListRecords struct {
	Records         []Record        `xml:"record"`
	ResumptionToken ResumptionToken `xml:"resumptionToken"`
}

// ResumptionToken carries pagination state between requests.
type ResumptionToken struct {
	Value string `xml:",chardata"`
}

// Record is a single harvested OAI-PMH record with its Dublin Core payload.
type Record struct {
	Header   Header   `xml:"header"`
	Metadata Metadata `xml:"metadata"`
}

// Deleted reports whether the record carries a deleted-status header.
func (r *Record) Deleted() bool {
	return r.Header.Status == "deleted"
}

// Header is the OAI-PMH record header.
type Header struct {
	Status     string `xml:"status,attr"`
	Identifier string `xml:"identifier"`
	Datestamp  string `xml:"datestamp"`
}

// Metadata wraps the oai_dc container element.
type Metadata struct {
	DublinCore *DublinCore `xml:"http://www.openarchives.org/OAI/2.0/oai_dc/ dc"`
}

// DublinCore holds the simple Dublin Core elements repositories expose
// through the oai_dc metadata prefix.
type DublinCore struct {
	Titles       []Element `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators     []Element `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Descriptions []Element `xml:"http://purl.org/dc/elements/1.1/ description"`
	Subjects     []Element `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Dates        []Element `xml:"http://purl.org/dc/elements/1.1/ date"`
	Types        []Element `xml:"http://purl.org/dc/elements/1.1/ type"`
	Identifiers  []Element `xml:"http://purl.org/dc/elements/1.1/ identifier"`
	Languages    []Element `xml:"http://purl.org/dc/elements/1.1/ language"`
}

// Element is a Dublin Core text element with its optional xml:lang attribute.
type Element struct {
	Lang  string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
	Value string `xml:",chardata"`
}
