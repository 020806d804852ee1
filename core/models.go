package core

// PaperRecord represents a single bibliographic record fetched from the
// literature source. It is transient: records are normalized by the fetcher,
// validated, and then handed to the ingestion loader for embedding and
// persistence.
type PaperRecord struct {
	PMID            string // External identifier assigned by the source
	Title           string
	Abstract        string
	PublicationDate string // "YYYY-MM-DD" when the source supplies a structured date, else empty
}

// HasRequiredFields reports whether the record carries both a title and an
// abstract body. Records missing either are dropped during fetching.
func (r *PaperRecord) HasRequiredFields() bool {
	return r.Title != "" && r.Abstract != ""
}
