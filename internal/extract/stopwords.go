package extract

// englishStopwords are words too generic to carry a candidate phrase on
// their own. A phrase must contain at least one word outside this set.
var englishStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "can": {}, "shall": {},
	"of": {}, "in": {}, "to": {}, "for": {}, "with": {}, "on": {}, "at": {}, "from": {}, "by": {}, "about": {},
	"as": {}, "into": {}, "through": {}, "during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"between": {}, "under": {}, "over": {}, "then": {}, "than": {}, "but": {}, "and": {}, "or": {}, "not": {},
	"no": {}, "nor": {}, "so": {}, "too": {}, "very": {}, "just": {}, "also": {}, "more": {}, "most": {}, "much": {},
	"many": {}, "such": {}, "own": {}, "same": {}, "other": {}, "each": {}, "every": {}, "both": {}, "few": {},
	"all": {}, "any": {}, "some": {}, "which": {}, "who": {}, "whom": {}, "what": {}, "where": {}, "when": {},
	"how": {}, "why": {}, "it": {}, "its": {}, "we": {}, "our": {}, "they": {}, "their": {}, "them": {},
	"he": {}, "she": {}, "his": {}, "her": {}, "him": {}, "i": {}, "me": {}, "my": {}, "you": {}, "your": {},
	"one": {}, "two": {}, "three": {}, "first": {}, "second": {}, "third": {}, "new": {}, "used": {},
	"based": {}, "using": {}, "use": {}, "different": {}, "well": {}, "however": {},
	"proposed": {}, "paper": {}, "work": {}, "study": {}, "results": {}, "approach": {}, "method": {},
	"research": {}, "thesis": {}, "chapter": {}, "section": {}, "figure": {}, "table": {},
	"present": {}, "show": {}, "provide": {}, "main": {}, "order": {}, "case": {}, "number": {},
	"given": {}, "part": {}, "found": {}, "made": {}, "several": {}, "important": {},
}

// genericPhrases are noun phrases that appear in nearly every abstract
// and never make useful glossary candidates.
var genericPhrases = map[string]struct{}{
	"this thesis": {}, "this work": {}, "this paper": {}, "this study": {}, "this research": {},
	"the results": {}, "the method": {}, "the approach": {}, "the system": {}, "the model": {},
	"the data": {}, "the process": {}, "the problem": {}, "the author": {}, "the user": {},
	"previous work": {}, "related work": {}, "future work": {}, "main goal": {},
	"master thesis": {}, "bachelor thesis": {}, "doctoral thesis": {},
}

// leadingArticles are stripped from the front of a candidate phrase.
var leadingArticles = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "this": {}, "that": {}, "these": {}, "those": {},
}

func isStopword(word string) bool {
	_, ok := englishStopwords[word]
	return ok
}
