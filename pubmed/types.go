package pubmed

// esearchResponse is the JSON envelope returned by esearch.fcgi with
// retmode=json.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// articleSet mirrors the subset of the efetch.fcgi XML payload this package
// consumes. Fields absent from a record decode to zero values; normalization
// decides what to do with them.
type articleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	ArticleTitle string        `xml:"ArticleTitle"`
	Abstract     abstractBody  `xml:"Abstract"`
	ArticleDates []articleDate `xml:"ArticleDate"`
}

type abstractBody struct {
	// AbstractText may appear multiple times when the abstract is split
	// into labeled sections (Background, Methods, ...).
	Sections []string `xml:"AbstractText"`
}

type articleDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}
